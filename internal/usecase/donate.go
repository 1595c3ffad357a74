package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DonateParams identifies the campaign and the human-entered amount.
type DonateParams struct {
	Campaign common.Address
	Amount   string
}

// DonateResult carries the donation transaction hash.
type DonateResult struct {
	TxHash common.Hash
	Amount *big.Int
}

// Donate performs the guarded donation flow: pre-flight balance and gas
// checks, allowance reconciliation, then the donate call. Each submitted
// transaction is awaited before the next dependent step; nothing here is
// fire-and-forget.
type Donate struct {
	reader    ChainReader
	wallet    Wallet
	sink      ProgressSink
	minGasWei *big.Int
	log       *slog.Logger
}

// NewDonate creates a new Donate use case.
func NewDonate(reader ChainReader, wallet Wallet, sink ProgressSink, minGasWei *big.Int, log *slog.Logger) *Donate {
	return &Donate{reader: reader, wallet: wallet, sink: sink, minGasWei: minGasWei, log: log}
}

// Run executes the donation. Pre-flight failures are raised before any
// transaction is submitted: no partial state changes.
func (uc *Donate) Run(ctx context.Context, params DonateParams) (*DonateResult, error) {
	if !uc.wallet.Connected() {
		return nil, domain.ErrWalletNotConnected
	}
	donor, err := uc.wallet.Address()
	if err != nil {
		return nil, err
	}

	decimals, err := uc.reader.TokenDecimals(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ToBaseUnits(params.Amount, decimals)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}

	// Balance and gas checks are independent reads and may run together.
	var tokenBalance, gasBalance *big.Int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tokenBalance, err = uc.reader.TokenBalance(gctx, donor)
		return err
	})
	g.Go(func() (err error) {
		gasBalance, err = uc.reader.NativeBalance(gctx, donor)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if tokenBalance.Cmp(amount) < 0 {
		return nil, fmt.Errorf("%w: have %s, need %s",
			domain.ErrInsufficientFunds,
			domain.FormatBaseUnits(tokenBalance, decimals),
			domain.FormatBaseUnits(amount, decimals))
	}
	if gasBalance.Cmp(uc.minGasWei) < 0 {
		return nil, domain.ErrInsufficientGas
	}

	if err := uc.ensureAllowance(ctx, donor, params.Campaign, amount); err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "donate", Message: "Submitting donation", Spinner: true})
	txHash, err := uc.wallet.Donate(ctx, params.Campaign, amount)
	if err != nil {
		return nil, err
	}

	uc.log.Info("donation confirmed", "campaign", params.Campaign, "tx", txHash)
	return &DonateResult{TxHash: txHash, Amount: amount}, nil
}

// ensureAllowance reconciles the spending allowance granted to the campaign
// contract. An existing non-zero allowance below the requested amount is
// reset to zero first: some tokens reject a nonzero-to-nonzero approval
// change.
func (uc *Donate) ensureAllowance(ctx context.Context, donor, campaign common.Address, amount *big.Int) error {
	current, err := uc.reader.Allowance(ctx, donor, campaign)
	if err != nil {
		return err
	}

	if current.Cmp(amount) >= 0 {
		uc.log.Debug("sufficient allowance exists, skipping approve", "allowance", current)
		return nil
	}

	if current.Sign() > 0 {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "approve", Message: "Resetting existing allowance", Spinner: true})
		if _, err := uc.wallet.Approve(ctx, campaign, big.NewInt(0)); err != nil {
			return fmt.Errorf("failed to reset allowance: %w", err)
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "approve", Message: "Approving tokens", Spinner: true})
	if _, err := uc.wallet.Approve(ctx, campaign, amount); err != nil {
		return fmt.Errorf("failed to approve tokens: %w", err)
	}
	return nil
}
