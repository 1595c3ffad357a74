package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// Withdraw submits the owner withdrawal call. Eligibility booleans from the
// read model are advisory UI gates only; the contract is the final arbiter
// and a stale guard surfaces as a revert reason.
type Withdraw struct {
	wallet Wallet
	log    *slog.Logger
}

// NewWithdraw creates a new Withdraw use case.
func NewWithdraw(wallet Wallet, log *slog.Logger) *Withdraw {
	return &Withdraw{wallet: wallet, log: log}
}

// Run submits the withdrawal and waits for confirmation.
func (uc *Withdraw) Run(ctx context.Context, campaign common.Address) (common.Hash, error) {
	if !uc.wallet.Connected() {
		return common.Hash{}, domain.ErrWalletNotConnected
	}
	txHash, err := uc.wallet.Withdraw(ctx, campaign)
	if err != nil {
		return common.Hash{}, err
	}
	uc.log.Info("withdrawal confirmed", "campaign", campaign, "tx", txHash)
	return txHash, nil
}
