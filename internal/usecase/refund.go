package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// Refund submits a donor refund claim against a failed campaign.
type Refund struct {
	wallet Wallet
	log    *slog.Logger
}

// NewRefund creates a new Refund use case.
func NewRefund(wallet Wallet, log *slog.Logger) *Refund {
	return &Refund{wallet: wallet, log: log}
}

// Run submits the refund and waits for confirmation.
func (uc *Refund) Run(ctx context.Context, campaign common.Address) (common.Hash, error) {
	if !uc.wallet.Connected() {
		return common.Hash{}, domain.ErrWalletNotConnected
	}
	txHash, err := uc.wallet.Refund(ctx, campaign)
	if err != nil {
		return common.Hash{}, err
	}
	uc.log.Info("refund confirmed", "campaign", campaign, "tx", txHash)
	return txHash, nil
}
