package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockChainReader is a mock implementation of ChainReader
type MockChainReader struct {
	mock.Mock
}

func (m *MockChainReader) DeployedCampaigns(ctx context.Context) ([]common.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockChainReader) CampaignInfo(ctx context.Context, campaign common.Address) (*usecase.CampaignInfo, error) {
	args := m.Called(ctx, campaign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CampaignInfo), args.Error(1)
}

func (m *MockChainReader) CampaignIPFSHash(ctx context.Context, campaign common.Address) (string, error) {
	args := m.Called(ctx, campaign)
	return args.String(0), args.Error(1)
}

func (m *MockChainReader) PeakBalance(ctx context.Context, campaign common.Address) (*big.Int, error) {
	args := m.Called(ctx, campaign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainReader) IsPeakBalanceUpdated(ctx context.Context, campaign common.Address) (bool, error) {
	args := m.Called(ctx, campaign)
	return args.Bool(0), args.Error(1)
}

func (m *MockChainReader) IsWithdrawn(ctx context.Context, campaign common.Address) (bool, error) {
	args := m.Called(ctx, campaign)
	return args.Bool(0), args.Error(1)
}

func (m *MockChainReader) DonationOf(ctx context.Context, campaign, donor common.Address) (*big.Int, error) {
	args := m.Called(ctx, campaign, donor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainReader) TokenDecimals(ctx context.Context) (uint8, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint8), args.Error(1)
}

func (m *MockChainReader) TokenBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainReader) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	args := m.Called(ctx, owner, spender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainReader) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainReader) DirectTransfers(ctx context.Context, campaign, donor common.Address) (*usecase.TransferScan, error) {
	args := m.Called(ctx, campaign, donor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TransferScan), args.Error(1)
}

func (m *MockChainReader) IsVerified(ctx context.Context, owner common.Address) (bool, error) {
	args := m.Called(ctx, owner)
	return args.Bool(0), args.Error(1)
}

func (m *MockChainReader) BadgeInfo(ctx context.Context, owner common.Address) (*domain.BadgeInfo, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BadgeInfo), args.Error(1)
}

// MockWallet is a mock implementation of Wallet
type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) Connected() bool {
	return m.Called().Bool(0)
}

func (m *MockWallet) Address() (common.Address, error) {
	args := m.Called()
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockWallet) CreateCampaign(ctx context.Context, name string, target *big.Int, durationSec uint64, ipfsHash string) (common.Hash, error) {
	args := m.Called(ctx, name, target, durationSec, ipfsHash)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockWallet) Approve(ctx context.Context, spender common.Address, amount *big.Int) (common.Hash, error) {
	args := m.Called(ctx, spender, amount)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockWallet) Donate(ctx context.Context, campaign common.Address, amount *big.Int) (common.Hash, error) {
	args := m.Called(ctx, campaign, amount)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockWallet) Withdraw(ctx context.Context, campaign common.Address) (common.Hash, error) {
	args := m.Called(ctx, campaign)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockWallet) Refund(ctx context.Context, campaign common.Address) (common.Hash, error) {
	args := m.Called(ctx, campaign)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockWallet) UpdatePeakBalance(ctx context.Context, campaign common.Address) (common.Hash, error) {
	args := m.Called(ctx, campaign)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockWallet) SyncIDRXDonations(ctx context.Context, campaign common.Address) (common.Hash, error) {
	args := m.Called(ctx, campaign)
	return args.Get(0).(common.Hash), args.Error(1)
}

// MockMetadataStore is a mock implementation of MetadataStore
type MockMetadataStore struct {
	mock.Mock
}

func (m *MockMetadataStore) PinJSON(ctx context.Context, metadata *domain.CampaignMetadata) (string, error) {
	args := m.Called(ctx, metadata)
	return args.String(0), args.Error(1)
}

func (m *MockMetadataStore) PinFile(ctx context.Context, name string, r io.Reader) (string, string, error) {
	args := m.Called(ctx, name, r)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockMetadataStore) FetchMetadata(ctx context.Context, hash string) (*domain.CampaignMetadata, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CampaignMetadata), args.Error(1)
}

// MockPaymentGateway is a mock implementation of PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateMintRequest(ctx context.Context, amount string, destination common.Address, ttlHours int) (*domain.MintRequestResult, error) {
	args := m.Called(ctx, amount, destination, ttlHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MintRequestResult), args.Error(1)
}

func (m *MockPaymentGateway) TransactionHistory(ctx context.Context, params usecase.HistoryParams) ([]domain.PaymentRequest, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRequest), args.Error(1)
}
