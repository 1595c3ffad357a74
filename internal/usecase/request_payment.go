package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// RequestPaymentParams describes a fiat-rail payment request. The token
// amount string is passed to the gateway untouched; the gateway mints
// directly to the campaign address, so this path never touches the signer.
type RequestPaymentParams struct {
	Amount   string
	Campaign common.Address
	TTLHours int
}

// RequestPayment creates an off-chain mint request against the payment
// gateway.
type RequestPayment struct {
	gateway PaymentGateway
	log     *slog.Logger
}

// NewRequestPayment creates a new RequestPayment use case.
func NewRequestPayment(gateway PaymentGateway, log *slog.Logger) *RequestPayment {
	return &RequestPayment{gateway: gateway, log: log}
}

// Run creates the mint request and returns the hosted payment URL plus the
// correlation reference.
func (uc *RequestPayment) Run(ctx context.Context, params RequestPaymentParams) (*domain.MintRequestResult, error) {
	if params.Amount == "" {
		return nil, fmt.Errorf("%w: amount is required", domain.ErrInvalidAmount)
	}
	ttl := params.TTLHours
	if ttl <= 0 {
		ttl = 24
	}

	result, err := uc.gateway.CreateMintRequest(ctx, params.Amount, params.Campaign, ttl)
	if err != nil {
		return nil, err
	}

	uc.log.Info("mint request created", "campaign", params.Campaign, "reference", result.Reference)
	return result, nil
}
