package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"golang.org/x/sync/errgroup"
)

// listConcurrency caps the snapshot fan-out against the RPC endpoint.
const listConcurrency = 8

// ListCampaignsParams filters the campaign listing.
type ListCampaignsParams struct {
	// Status, when set, keeps only campaigns whose recomputed status
	// matches.
	Status *domain.CampaignStatus
	// Owner, when set, keeps only campaigns created by that account.
	Owner *common.Address
}

// ListCampaignsResult contains the assembled snapshots.
type ListCampaignsResult struct {
	Campaigns []*domain.Campaign
}

// ListCampaigns fans the factory's address list out into full snapshots.
type ListCampaigns struct {
	reader ChainReader
	sink   ProgressSink
	log    *slog.Logger
}

// NewListCampaigns creates a new ListCampaigns use case.
func NewListCampaigns(reader ChainReader, sink ProgressSink, log *slog.Logger) *ListCampaigns {
	return &ListCampaigns{reader: reader, sink: sink, log: log}
}

// Run lists all deployed campaigns. Snapshot reads run concurrently;
// verification lookups are memoized per owner within this single pass,
// which does not change observable behavior because badge status does not
// move on the timescale of one listing.
func (uc *ListCampaigns) Run(ctx context.Context, params ListCampaignsParams) (*ListCampaignsResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Fetching deployed campaigns",
		Spinner: true,
	})

	addresses, err := uc.reader.DeployedCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	decimals, err := uc.reader.TokenDecimals(ctx)
	if err != nil {
		return nil, err
	}

	verification := newOwnerVerificationCache(uc.reader)

	campaigns := make([]*domain.Campaign, len(addresses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)

	for i, address := range addresses {
		g.Go(func() error {
			c, err := uc.assemble(gctx, address, decimals, verification)
			if err != nil {
				return err
			}
			campaigns[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := campaigns[:0]
	for _, c := range campaigns {
		if params.Status != nil && c.Status != *params.Status {
			continue
		}
		if params.Owner != nil && c.Owner != *params.Owner {
			continue
		}
		filtered = append(filtered, c)
	}

	// Active campaigns first, then by time remaining ascending so the ones
	// closing soonest lead the list.
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Status != filtered[j].Status {
			return filtered[i].Status < filtered[j].Status
		}
		return filtered[i].TimeRemaining < filtered[j].TimeRemaining
	})

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(filtered),
		Total:   len(addresses),
		Message: "Campaigns loaded",
	})

	return &ListCampaignsResult{Campaigns: filtered}, nil
}

func (uc *ListCampaigns) assemble(ctx context.Context, address common.Address, decimals uint8, verification *ownerVerificationCache) (*domain.Campaign, error) {
	var (
		info     *CampaignInfo
		ipfsHash string
		peak     peakState
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
		peak, err = uc.peakState(gctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	verified, err := verification.isVerified(ctx, info.Owner)
	if err != nil {
		return nil, err
	}

	timeRemaining := time.Duration(info.TimeRemainingSec) * time.Second
	return &domain.Campaign{
		Address:              address,
		Owner:                info.Owner,
		Name:                 info.Name,
		Target:               info.Target,
		Raised:               info.Raised,
		ActualBalance:        info.ActualBalance,
		PeakBalance:          peak.balance,
		TimeRemaining:        timeRemaining,
		RawStatus:            domain.CampaignStatus(info.RawStatus),
		Status:               domain.DeriveStatus(timeRemaining, info.Raised, info.Target),
		IsPeakBalanceUpdated: peak.updated,
		IPFSHash:             ipfsHash,
		IsOwnerVerified:      verified,
		Decimals:             decimals,
	}, nil
}

type peakState struct {
	balance *big.Int
	updated bool
}

func (uc *ListCampaigns) peakState(ctx context.Context, address common.Address) (peakState, error) {
	balance, err := uc.reader.PeakBalance(ctx, address)
	if err != nil {
		return peakState{}, err
	}
	updated, err := uc.reader.IsPeakBalanceUpdated(ctx, address)
	if err != nil {
		return peakState{}, err
	}
	return peakState{balance: balance, updated: updated}, nil
}

// ownerVerificationCache memoizes registry lookups per owner within one
// listing pass.
type ownerVerificationCache struct {
	reader  ChainReader
	mu      sync.Mutex
	byOwner map[common.Address]bool
}

func newOwnerVerificationCache(reader ChainReader) *ownerVerificationCache {
	return &ownerVerificationCache{reader: reader, byOwner: make(map[common.Address]bool)}
}

func (c *ownerVerificationCache) isVerified(ctx context.Context, owner common.Address) (bool, error) {
	c.mu.Lock()
	if v, ok := c.byOwner[owner]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err := c.reader.IsVerified(ctx, owner)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.byOwner[owner] = v
	c.mu.Unlock()
	return v, nil
}
