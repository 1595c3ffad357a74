package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"golang.org/x/sync/errgroup"
)

// GetCampaignParams selects a campaign and what to resolve alongside it.
type GetCampaignParams struct {
	Address common.Address

	// Caller, when set, scopes eligibility and donation lookups to that
	// account.
	Caller *common.Address

	// WithMetadata also resolves the pinned off-chain metadata.
	WithMetadata bool
}

// GetCampaignResult is one assembled view of a campaign. The snapshot is
// only valid once every underlying read completed; partial snapshots are
// never returned.
type GetCampaignResult struct {
	Campaign    *domain.Campaign
	Metadata    *domain.CampaignMetadata
	Donation    *domain.DonationBreakdown
	Eligibility domain.Eligibility
	IsOwner     bool
}

// GetCampaign builds the normalized read model for a single campaign. It is
// the reconciliation point for the contract's donate ledger, its live token
// balance, the checkpointed peak balance, and the owner's verification
// status.
type GetCampaign struct {
	reader ChainReader
	store  MetadataStore
	log    *slog.Logger
}

// NewGetCampaign creates a new GetCampaign use case.
func NewGetCampaign(reader ChainReader, store MetadataStore, log *slog.Logger) *GetCampaign {
	return &GetCampaign{reader: reader, store: store, log: log}
}

// Run fetches a fresh snapshot. Nothing is cached between calls: the
// time-derived fields invalidate continuously, so every view re-queries.
func (uc *GetCampaign) Run(ctx context.Context, params GetCampaignParams) (*GetCampaignResult, error) {
	campaign, err := uc.snapshot(ctx, params.Address)
	if err != nil {
		return nil, err
	}

	result := &GetCampaignResult{Campaign: campaign}

	if params.Caller != nil {
		result.IsOwner = *params.Caller == campaign.Owner

		donation, err := uc.donationBreakdown(ctx, campaign.Address, *params.Caller)
		if err != nil {
			return nil, err
		}
		result.Donation = donation
		result.Eligibility = domain.DeriveEligibility(campaign, result.IsOwner, donation.Total())
	} else {
		result.Eligibility = domain.DeriveEligibility(campaign, false, nil)
	}

	if params.WithMetadata && campaign.IPFSHash != "" {
		meta, err := uc.store.FetchMetadata(ctx, campaign.IPFSHash)
		if err != nil {
			// Metadata resolution failing must not hide the chain state;
			// the snapshot stays authoritative without it.
			uc.log.Warn("failed to resolve campaign metadata",
				"campaign", campaign.Address, "hash", campaign.IPFSHash, "err", err)
		} else {
			result.Metadata = meta
		}
	}

	return result, nil
}

// snapshot issues all reads for one campaign concurrently and assembles the
// normalized view once every read has completed.
func (uc *GetCampaign) snapshot(ctx context.Context, address common.Address) (*domain.Campaign, error) {
	var (
		info        *CampaignInfo
		ipfsHash    string
		peak        *big.Int
		peakUpdated bool
		withdrawn   bool
		decimals    uint8
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		info, err = uc.reader.CampaignInfo(gctx, address)
		return err
	})
	g.Go(func() (err error) {
		ipfsHash, err = uc.reader.CampaignIPFSHash(gctx, address)
		return err
	})
	g.Go(func() (err error) {
		peak, err = uc.reader.PeakBalance(gctx, address)
		return err
	})
	g.Go(func() (err error) {
		peakUpdated, err = uc.reader.IsPeakBalanceUpdated(gctx, address)
		return err
	})
	g.Go(func() (err error) {
		withdrawn, err = uc.reader.IsWithdrawn(gctx, address)
		return err
	})
	g.Go(func() (err error) {
		decimals, err = uc.reader.TokenDecimals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	timeRemaining := time.Duration(info.TimeRemainingSec) * time.Second

	campaign := &domain.Campaign{
		Address:              address,
		Owner:                info.Owner,
		Name:                 info.Name,
		Target:               info.Target,
		Raised:               info.Raised,
		ActualBalance:        info.ActualBalance,
		PeakBalance:          peak,
		TimeRemaining:        timeRemaining,
		RawStatus:            domain.CampaignStatus(info.RawStatus),
		Status:               domain.DeriveStatus(timeRemaining, info.Raised, info.Target),
		IsPeakBalanceUpdated: peakUpdated,
		IsWithdrawn:          withdrawn,
		IPFSHash:             ipfsHash,
		Decimals:             decimals,
	}

	// Verification is keyed by the owner, which we only know after the info
	// tuple resolves.
	verified, err := uc.reader.IsVerified(ctx, campaign.Owner)
	if err != nil {
		return nil, err
	}
	campaign.IsOwnerVerified = verified

	return campaign, nil
}

func (uc *GetCampaign) donationBreakdown(ctx context.Context, campaign, donor common.Address) (*domain.DonationBreakdown, error) {
	var (
		recorded *big.Int
		scan     *TransferScan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recorded, err = uc.reader.DonationOf(gctx, campaign, donor)
		return err
	})
	g.Go(func() (err error) {
		scan, err = uc.reader.DirectTransfers(gctx, campaign, donor)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DonationBreakdown{
		Recorded:       recorded,
		Direct:         scan.Amount,
		ScannedBlocks:  scan.ScannedBlocks,
		LookbackCapped: scan.Capped,
	}, nil
}
