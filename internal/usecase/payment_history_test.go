package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

func TestPaymentHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("reference lookup fetches exactly one record", func(t *testing.T) {
		gateway := &MockPaymentGateway{}
		gateway.On("TransactionHistory", mock.Anything, usecase.HistoryParams{
			TransactionType: "MINT",
			Page:            1,
			Take:            1,
			Reference:       "INV-1",
		}).Return([]domain.PaymentRequest{{Reference: "INV-1"}}, nil)

		result, err := usecase.NewPaymentHistory(gateway, testLogger()).
			Run(ctx, usecase.PaymentHistoryParams{Reference: "INV-1"})
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "INV-1", result.Records[0].Reference)
	})

	t.Run("campaign filter matches case-insensitively", func(t *testing.T) {
		gateway := &MockPaymentGateway{}
		gateway.On("TransactionHistory", mock.Anything, mock.Anything).Return([]domain.PaymentRequest{
			{Reference: "INV-1", DestinationWalletAddress: testCampaign.Hex()},
			{Reference: "INV-2", DestinationWalletAddress: "0x9999999999999999999999999999999999999999"},
		}, nil)

		result, err := usecase.NewPaymentHistory(gateway, testLogger()).
			Run(ctx, usecase.PaymentHistoryParams{Campaign: &testCampaign})
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "INV-1", result.Records[0].Reference)
	})

	t.Run("defaults page and take", func(t *testing.T) {
		gateway := &MockPaymentGateway{}
		gateway.On("TransactionHistory", mock.Anything, usecase.HistoryParams{
			TransactionType: "MINT",
			Page:            1,
			Take:            10,
			OrderByDate:     "DESC",
		}).Return([]domain.PaymentRequest{}, nil)

		_, err := usecase.NewPaymentHistory(gateway, testLogger()).
			Run(ctx, usecase.PaymentHistoryParams{})
		require.NoError(t, err)
		gateway.AssertExpectations(t)
	})
}
