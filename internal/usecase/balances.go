package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// BalancesResult holds an account's token and native balances, plus the
// token precision used to render them.
type BalancesResult struct {
	Token    *big.Int
	Native   *big.Int
	Decimals uint8
}

// Balances reads an account's token and gas balances.
type Balances struct {
	reader ChainReader
}

// NewBalances creates a new Balances use case.
func NewBalances(reader ChainReader) *Balances {
	return &Balances{reader: reader}
}

// Run fetches both balances concurrently.
func (uc *Balances) Run(ctx context.Context, account common.Address) (*BalancesResult, error) {
	result := &BalancesResult{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Token, err = uc.reader.TokenBalance(gctx, account)
		return err
	})
	g.Go(func() (err error) {
		result.Native, err = uc.reader.NativeBalance(gctx, account)
		return err
	})
	g.Go(func() (err error) {
		result.Decimals, err = uc.reader.TokenDecimals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
