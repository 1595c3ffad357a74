package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

var testOwner = common.HexToAddress("0x3333333333333333333333333333333333333333")

func snapshotReader(info *usecase.CampaignInfo) *MockChainReader {
	reader := &MockChainReader{}
	reader.On("CampaignInfo", mock.Anything, testCampaign).Return(info, nil)
	reader.On("CampaignIPFSHash", mock.Anything, testCampaign).Return("QmTest", nil)
	reader.On("PeakBalance", mock.Anything, testCampaign).Return(big.NewInt(0), nil)
	reader.On("IsPeakBalanceUpdated", mock.Anything, testCampaign).Return(false, nil)
	reader.On("IsWithdrawn", mock.Anything, testCampaign).Return(false, nil)
	reader.On("TokenDecimals", mock.Anything).Return(uint8(2), nil)
	reader.On("IsVerified", mock.Anything, testOwner).Return(false, nil)
	return reader
}

func TestGetCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("status is recomputed, not trusted from the chain", func(t *testing.T) {
		// Deadline passed with the target met, but the chain still says
		// Active because nothing poked the contract.
		reader := snapshotReader(&usecase.CampaignInfo{
			Owner:            testOwner,
			Name:             "Well Fund",
			Target:           big.NewInt(10000),
			Raised:           big.NewInt(10000),
			ActualBalance:    big.NewInt(10000),
			TimeRemainingSec: 0,
			RawStatus:        0,
		})

		result, err := usecase.NewGetCampaign(reader, &MockMetadataStore{}, testLogger()).
			Run(ctx, usecase.GetCampaignParams{Address: testCampaign})
		require.NoError(t, err)

		assert.Equal(t, domain.StatusActive, result.Campaign.RawStatus)
		assert.Equal(t, domain.StatusSuccessful, result.Campaign.Status)
		assert.Equal(t, "QmTest", result.Campaign.IPFSHash)
	})

	t.Run("caller gets donation breakdown and eligibility", func(t *testing.T) {
		reader := snapshotReader(&usecase.CampaignInfo{
			Owner:            testOwner,
			Name:             "Well Fund",
			Target:           big.NewInt(10000),
			Raised:           big.NewInt(500),
			ActualBalance:    big.NewInt(500),
			TimeRemainingSec: 0,
		})
		reader.On("DonationOf", mock.Anything, testCampaign, testDonor).Return(big.NewInt(300), nil)
		reader.On("DirectTransfers", mock.Anything, testCampaign, testDonor).Return(&usecase.TransferScan{
			Amount:        big.NewInt(200),
			ScannedBlocks: 50_000,
			Capped:        true,
		}, nil)

		result, err := usecase.NewGetCampaign(reader, &MockMetadataStore{}, testLogger()).
			Run(ctx, usecase.GetCampaignParams{Address: testCampaign, Caller: &testDonor})
		require.NoError(t, err)

		require.NotNil(t, result.Donation)
		assert.Equal(t, big.NewInt(300), result.Donation.Recorded)
		assert.Equal(t, big.NewInt(500), result.Donation.Total())
		assert.True(t, result.Donation.LookbackCapped)

		// Failed campaign, unverified owner, caller donated: refund is open.
		assert.Equal(t, domain.StatusFailed, result.Campaign.Status)
		assert.True(t, result.Eligibility.CanRefund)
		assert.False(t, result.IsOwner)
	})

	t.Run("metadata failure does not sink the snapshot", func(t *testing.T) {
		reader := snapshotReader(&usecase.CampaignInfo{
			Owner:            testOwner,
			Name:             "Well Fund",
			Target:           big.NewInt(10000),
			Raised:           big.NewInt(0),
			ActualBalance:    big.NewInt(0),
			TimeRemainingSec: 3600,
		})
		store := &MockMetadataStore{}
		store.On("FetchMetadata", mock.Anything, "QmTest").Return(nil, errors.New("gateway down"))

		result, err := usecase.NewGetCampaign(reader, store, testLogger()).
			Run(ctx, usecase.GetCampaignParams{Address: testCampaign, WithMetadata: true})
		require.NoError(t, err)
		assert.Nil(t, result.Metadata)
		assert.Equal(t, domain.StatusActive, result.Campaign.Status)
	})

	t.Run("read failure fails the whole snapshot", func(t *testing.T) {
		reader := &MockChainReader{}
		reader.On("CampaignInfo", mock.Anything, testCampaign).Return(nil, errors.New("rpc timeout"))
		reader.On("CampaignIPFSHash", mock.Anything, testCampaign).Return("", nil)
		reader.On("PeakBalance", mock.Anything, testCampaign).Return(big.NewInt(0), nil)
		reader.On("IsPeakBalanceUpdated", mock.Anything, testCampaign).Return(false, nil)
		reader.On("IsWithdrawn", mock.Anything, testCampaign).Return(false, nil)
		reader.On("TokenDecimals", mock.Anything).Return(uint8(2), nil)

		_, err := usecase.NewGetCampaign(reader, &MockMetadataStore{}, testLogger()).
			Run(ctx, usecase.GetCampaignParams{Address: testCampaign})
		assert.Error(t, err)
	})
}
