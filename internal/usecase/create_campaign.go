package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// CreateCampaignParams describes a new campaign. Duration is expressed in
// seconds on-chain; any coarser unit is a presentation concern.
type CreateCampaignParams struct {
	Name        string
	Target      string
	Duration    time.Duration
	Description string
	Category    string
	CreatorName string

	// Image, when set, is pinned first and referenced from the metadata.
	Image     io.Reader
	ImageName string

	// SkipAnalysis publishes without a guardian risk analysis.
	SkipAnalysis bool
}

// CreateCampaignResult carries the creation transaction hash and the pinned
// metadata handle.
type CreateCampaignResult struct {
	TxHash   common.Hash
	IPFSHash string
	Analysis *domain.GuardianAnalysis
}

// CreateCampaign builds the metadata (optionally enriched with a risk
// analysis), pins it, and calls the factory's create entry point.
type CreateCampaign struct {
	reader   ChainReader
	wallet   Wallet
	store    MetadataStore
	analyzer RiskAnalyzer
	sink     ProgressSink
	log      *slog.Logger
}

// NewCreateCampaign creates a new CreateCampaign use case.
func NewCreateCampaign(reader ChainReader, wallet Wallet, store MetadataStore, analyzer RiskAnalyzer, sink ProgressSink, log *slog.Logger) *CreateCampaign {
	return &CreateCampaign{reader: reader, wallet: wallet, store: store, analyzer: analyzer, sink: sink, log: log}
}

// Run executes the creation flow: analyze, pin, create.
func (uc *CreateCampaign) Run(ctx context.Context, params CreateCampaignParams) (*CreateCampaignResult, error) {
	if !uc.wallet.Connected() {
		return nil, domain.ErrWalletNotConnected
	}
	if params.Name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if params.Duration <= 0 {
		return nil, fmt.Errorf("campaign duration must be positive")
	}

	decimals, err := uc.reader.TokenDecimals(ctx)
	if err != nil {
		return nil, err
	}
	target, err := domain.ToBaseUnits(params.Target, decimals)
	if err != nil {
		return nil, err
	}
	if target.Sign() <= 0 {
		return nil, fmt.Errorf("%w: target must be positive", domain.ErrInvalidAmount)
	}

	metadata := &domain.CampaignMetadata{
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		CreatorName: params.CreatorName,
	}

	if params.Image != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "pin", Message: "Pinning campaign image", Spinner: true})
		_, url, err := uc.store.PinFile(ctx, params.ImageName, params.Image)
		if err != nil {
			return nil, err
		}
		metadata.Image = url
	}

	result := &CreateCampaignResult{}

	if !params.SkipAnalysis && params.Description != "" {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "analyze", Message: "Running guardian analysis", Spinner: true})
		analysis, err := uc.analyzer.Analyze(ctx, params.Description)
		if err != nil {
			// Analysis is an enrichment; a transport failure must not
			// block publishing the campaign.
			uc.log.Warn("guardian analysis unavailable", "err", err)
		} else {
			metadata.GuardianAnalysis = analysis
			result.Analysis = analysis
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "pin", Message: "Pinning campaign metadata", Spinner: true})
	ipfsHash, err := uc.store.PinJSON(ctx, metadata)
	if err != nil {
		return nil, err
	}
	result.IPFSHash = ipfsHash

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "create", Message: "Creating campaign on-chain", Spinner: true})
	txHash, err := uc.wallet.CreateCampaign(ctx, params.Name, target, uint64(params.Duration.Seconds()), ipfsHash)
	if err != nil {
		return nil, err
	}
	result.TxHash = txHash

	uc.log.Info("campaign created", "name", params.Name, "tx", txHash, "ipfs", ipfsHash)
	return result, nil
}
