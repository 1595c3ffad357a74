package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CampaignStatus is the tri-state lifecycle of a campaign. The chain stores
// a status field but never pushes transitions autonomously, so the stored
// value can be stale; DeriveStatus recomputes it from time and funding.
type CampaignStatus uint8

const (
	StatusActive CampaignStatus = iota
	StatusSuccessful
	StatusFailed
)

func (s CampaignStatus) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusSuccessful:
		return "Successful"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Campaign is one normalized snapshot of a campaign as read from the chain.
// Every amount is in token base units; decimals carries the token precision
// used to normalize them. Snapshots are never cached across render cycles.
type Campaign struct {
	Address common.Address
	Owner   common.Address
	Name    string

	Target        *big.Int
	Raised        *big.Int
	ActualBalance *big.Int
	PeakBalance   *big.Int

	TimeRemaining        time.Duration
	RawStatus            CampaignStatus // advisory only, as reported by the chain
	Status               CampaignStatus // recomputed client-side
	IsPeakBalanceUpdated bool
	IsWithdrawn          bool

	IPFSHash        string
	IsOwnerVerified bool

	Decimals uint8
}

// HasExternalTransfers reports whether tokens arrived outside the donate
// path (live balance above the donate ledger).
func (c *Campaign) HasExternalTransfers() bool {
	return c.ActualBalance != nil && c.Raised != nil && c.ActualBalance.Cmp(c.Raised) > 0
}

// Ended reports whether the campaign's funding window is over.
func (c *Campaign) Ended() bool {
	return c.TimeRemaining <= 0
}

// CampaignMetadata is the off-chain descriptive content, content-addressed
// and immutable once pinned.
type CampaignMetadata struct {
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	CreatorName      string            `json:"creatorName"`
	Image            string            `json:"image,omitempty"`
	GuardianAnalysis *GuardianAnalysis `json:"guardianAnalysis,omitempty"`
}

// RiskLevel classifies a campaign description's risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// GuardianAnalysis is the normalized risk-scorer output, produced once per
// creation flow and embedded immutably into the metadata.
type GuardianAnalysis struct {
	CredibilityScore int       `json:"credibilityScore"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	Summary          string    `json:"summary"`
	Suggestions      []string  `json:"suggestions"`
}

// DonationBreakdown is the per-user, per-campaign derived donation pair:
// the amount the contract's donate ledger attributes to the user, plus the
// amount inferred from direct token transfers to the campaign address.
// The direct figure is bounded by the scanned block range and is a known
// undercount for older campaigns.
type DonationBreakdown struct {
	Recorded       *big.Int
	Direct         *big.Int
	ScannedBlocks  uint64
	LookbackCapped bool
}

// Total returns recorded plus direct transfers.
func (d *DonationBreakdown) Total() *big.Int {
	return new(big.Int).Add(d.Recorded, d.Direct)
}

// PaymentStatus is the gateway-side payment leg of a mint request.
type PaymentStatus string

const (
	PaymentWaiting PaymentStatus = "WAITING_FOR_PAYMENT"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentExpired PaymentStatus = "EXPIRED"
)

// MintStatus is the gateway-side on-chain mint leg of a mint request.
type MintStatus string

const (
	MintNotAvailable MintStatus = "NOT_AVAILABLE"
	MintProcessing   MintStatus = "PROCESSING"
	MintMinted       MintStatus = "MINTED"
	MintFailed       MintStatus = "FAILED"
	MintRejected     MintStatus = "REJECTED"
	MintRefund       MintStatus = "REFUND"
)

// PaymentRequest is one fiat-rail mint request as reported by the gateway.
// This client only creates and reads these records; the gateway owns every
// transition.
type PaymentRequest struct {
	Reference                string        `json:"reference"`
	MerchantOrderID          string        `json:"merchantOrderId"`
	DestinationWalletAddress string        `json:"destinationWalletAddress"`
	ToBeMinted               string        `json:"toBeMinted"`
	PaymentAmount            float64       `json:"paymentAmount"`
	PaymentStatus            PaymentStatus `json:"paymentStatus"`
	UserMintStatus           MintStatus    `json:"userMintStatus"`
	TxHash                   string        `json:"txHash"`
	ChainID                  int64         `json:"chainId"`
	CreatedAt                string        `json:"createdAt"`
	UpdatedAt                string        `json:"updatedAt"`
	ExpiryTimestamp          string        `json:"expiryTimestamp"`
}

// MintRequestResult is what a successful mint-request creation returns.
type MintRequestResult struct {
	PaymentURL string
	Reference  string
	Amount     string
}

// BadgeInfo describes a verification badge held by a campaign owner.
type BadgeInfo struct {
	Verified bool
	TokenID  *big.Int
	IssuedAt time.Time
}
