package usecase

import (
	"context"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// CampaignInfo is the raw core tuple returned by the campaign contract's
// getCampaignInfo view, before any client-side normalization.
type CampaignInfo struct {
	Owner            common.Address
	Name             string
	Target           *big.Int
	Raised           *big.Int
	ActualBalance    *big.Int
	TimeRemainingSec uint64
	RawStatus        uint8
}

// TransferScan is the result of a bounded direct-transfer event scan.
type TransferScan struct {
	Amount        *big.Int
	ScannedBlocks uint64
	// Capped is set when the lookback window did not reach the chain's
	// genesis, i.e. older transfers may exist but were not scanned.
	Capped bool
}

// ChainReader is the read boundary against the campaign factory, campaign
// escrow, token, and verification registry contracts. Implementations must
// not cache: time-derived fields invalidate continuously and every snapshot
// re-derives from current chain state.
type ChainReader interface {
	// Factory
	DeployedCampaigns(ctx context.Context) ([]common.Address, error)

	// Campaign escrow
	CampaignInfo(ctx context.Context, campaign common.Address) (*CampaignInfo, error)
	CampaignIPFSHash(ctx context.Context, campaign common.Address) (string, error)
	PeakBalance(ctx context.Context, campaign common.Address) (*big.Int, error)
	IsPeakBalanceUpdated(ctx context.Context, campaign common.Address) (bool, error)
	IsWithdrawn(ctx context.Context, campaign common.Address) (bool, error)
	DonationOf(ctx context.Context, campaign, donor common.Address) (*big.Int, error)

	// Token
	TokenDecimals(ctx context.Context) (uint8, error)
	TokenBalance(ctx context.Context, account common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)

	// DirectTransfers sums Transfer events from donor to campaign over a
	// bounded recent block range. The lookback window is a documented
	// precision boundary: older transfers are not counted.
	DirectTransfers(ctx context.Context, campaign, donor common.Address) (*TransferScan, error)

	// Verification registry
	IsVerified(ctx context.Context, owner common.Address) (bool, error)
	BadgeInfo(ctx context.Context, owner common.Address) (*domain.BadgeInfo, error)
}

// Wallet is the write boundary: a signer for the connected account plus the
// guarded state-changing contract calls. Every method submits one
// transaction and blocks until it is mined; dependent steps (reset
// allowance, then approve, then donate) must therefore be sequenced by the
// caller, never fired concurrently.
type Wallet interface {
	// Connected reports whether a signer is available.
	Connected() bool
	// Address returns the connected account, or ErrWalletNotConnected.
	Address() (common.Address, error)

	CreateCampaign(ctx context.Context, name string, target *big.Int, durationSec uint64, ipfsHash string) (common.Hash, error)
	Approve(ctx context.Context, spender common.Address, amount *big.Int) (common.Hash, error)
	Donate(ctx context.Context, campaign common.Address, amount *big.Int) (common.Hash, error)
	Withdraw(ctx context.Context, campaign common.Address) (common.Hash, error)
	Refund(ctx context.Context, campaign common.Address) (common.Hash, error)
	UpdatePeakBalance(ctx context.Context, campaign common.Address) (common.Hash, error)
	SyncIDRXDonations(ctx context.Context, campaign common.Address) (common.Hash, error)
}

// MetadataStore pins and resolves content-addressed campaign metadata.
// Failures are domain.ErrStorage and fatal to the calling flow; there is no
// retry or backoff.
type MetadataStore interface {
	PinJSON(ctx context.Context, metadata *domain.CampaignMetadata) (string, error)
	PinFile(ctx context.Context, name string, r io.Reader) (hash string, url string, err error)
	FetchMetadata(ctx context.Context, hash string) (*domain.CampaignMetadata, error)
}

// RiskAnalyzer scores a free-text campaign description. Malformed scorer
// output is normalized into a fixed neutral fallback inside the
// implementation; Analyze only errors on transport failure.
type RiskAnalyzer interface {
	Analyze(ctx context.Context, description string) (*domain.GuardianAnalysis, error)
}

// HistoryParams filters a payment-gateway transaction history query.
type HistoryParams struct {
	TransactionType string // MINT, BURN, BRIDGE, DEPOSIT_REDEEM
	Page            int
	Take            int
	UserMintStatus  domain.MintStatus
	PaymentStatus   domain.PaymentStatus
	MerchantOrderID string
	Reference       string
	TxHash          string
	OrderByDate     string // ASC or DESC
}

// PaymentGateway is the off-chain fiat-rail boundary. It creates and reads
// mint requests; it never transitions them.
type PaymentGateway interface {
	CreateMintRequest(ctx context.Context, amount string, destination common.Address, ttlHours int) (*domain.MintRequestResult, error)
	TransactionHistory(ctx context.Context, params HistoryParams) ([]domain.PaymentRequest, error)
}

// TxApprover asks the user to confirm a transaction before it is signed.
// Declining yields domain.ErrTransactionRejected. Non-interactive runs use
// an auto-approving implementation.
type TxApprover interface {
	ApproveTransaction(summary string) error
}

// CampaignSelector interactively picks a campaign when a command needs an
// address and none was supplied.
type CampaignSelector interface {
	SelectCampaign(ctx context.Context, campaigns []*domain.Campaign, prompt string) (*domain.Campaign, error)
}

// ProgressEvent represents a progress update during a long operation.
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events.
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
}

// NopProgress is a no-op implementation of ProgressSink.
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
