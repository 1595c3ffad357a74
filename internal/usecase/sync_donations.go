package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// SyncDonations triggers the campaign's owner-initiated reconciliation of
// fiat-rail mints that landed as direct token transfers.
type SyncDonations struct {
	wallet Wallet
	log    *slog.Logger
}

// NewSyncDonations creates a new SyncDonations use case.
func NewSyncDonations(wallet Wallet, log *slog.Logger) *SyncDonations {
	return &SyncDonations{wallet: wallet, log: log}
}

// Run submits the sync call and waits for confirmation.
func (uc *SyncDonations) Run(ctx context.Context, campaign common.Address) (common.Hash, error) {
	if !uc.wallet.Connected() {
		return common.Hash{}, domain.ErrWalletNotConnected
	}
	txHash, err := uc.wallet.SyncIDRXDonations(ctx, campaign)
	if err != nil {
		return common.Hash{}, err
	}
	uc.log.Info("donation sync confirmed", "campaign", campaign, "tx", txHash)
	return txHash, nil
}
