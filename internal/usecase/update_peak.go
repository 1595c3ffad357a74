package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// UpdatePeakBalance checkpoints a campaign's live balance on-chain. Once
// recorded the checkpoint is immutable and becomes the authoritative
// "amount raised" for campaigns that received direct transfers.
type UpdatePeakBalance struct {
	wallet Wallet
	log    *slog.Logger
}

// NewUpdatePeakBalance creates a new UpdatePeakBalance use case.
func NewUpdatePeakBalance(wallet Wallet, log *slog.Logger) *UpdatePeakBalance {
	return &UpdatePeakBalance{wallet: wallet, log: log}
}

// Run submits the checkpoint and waits for confirmation.
func (uc *UpdatePeakBalance) Run(ctx context.Context, campaign common.Address) (common.Hash, error) {
	if !uc.wallet.Connected() {
		return common.Hash{}, domain.ErrWalletNotConnected
	}
	txHash, err := uc.wallet.UpdatePeakBalance(ctx, campaign)
	if err != nil {
		return common.Hash{}, err
	}
	uc.log.Info("peak balance checkpointed", "campaign", campaign, "tx", txHash)
	return txHash, nil
}
