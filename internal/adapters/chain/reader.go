package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// ReaderAdapter implements usecase.ChainReader on top of the shared client.
// It never caches chain state: snapshots carry time-derived fields that
// invalidate continuously, so every call hits the RPC endpoint.
type ReaderAdapter struct {
	*Client
}

// NewReaderAdapter creates the chain read adapter.
func NewReaderAdapter(client *Client) *ReaderAdapter {
	return &ReaderAdapter{Client: client}
}

// DeployedCampaigns lists every campaign the factory created. No
// pagination: the factory exposes a single array view.
func (r *ReaderAdapter) DeployedCampaigns(ctx context.Context) ([]common.Address, error) {
	var out []interface{}
	if err := r.factory.Call(&bind.CallOpts{Context: ctx}, &out, "getDeployedCampaigns"); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return out[0].([]common.Address), nil
}

// CampaignInfo fetches the raw core tuple.
func (r *ReaderAdapter) CampaignInfo(ctx context.Context, campaign common.Address) (*usecase.CampaignInfo, error) {
	var out []interface{}
	if err := r.campaign(campaign).Call(&bind.CallOpts{Context: ctx}, &out, "getCampaignInfo"); err != nil {
		return nil, fmt.Errorf("failed to read campaign %s: %w", campaign, err)
	}
	return &usecase.CampaignInfo{
		Owner:            out[0].(common.Address),
		Name:             out[1].(string),
		Target:           out[2].(*big.Int),
		Raised:           out[3].(*big.Int),
		ActualBalance:    out[4].(*big.Int),
		TimeRemainingSec: out[5].(*big.Int).Uint64(),
		RawStatus:        out[6].(uint8),
	}, nil
}

func (r *ReaderAdapter) CampaignIPFSHash(ctx context.Context, campaign common.Address) (string, error) {
	var out []interface{}
	if err := r.campaign(campaign).Call(&bind.CallOpts{Context: ctx}, &out, "ipfsHash"); err != nil {
		return "", fmt.Errorf("failed to read ipfsHash: %w", err)
	}
	return out[0].(string), nil
}

func (r *ReaderAdapter) PeakBalance(ctx context.Context, campaign common.Address) (*big.Int, error) {
	var out []interface{}
	if err := r.campaign(campaign).Call(&bind.CallOpts{Context: ctx}, &out, "getPeakBalance"); err != nil {
		return nil, fmt.Errorf("failed to read peak balance: %w", err)
	}
	return out[0].(*big.Int), nil
}

func (r *ReaderAdapter) IsPeakBalanceUpdated(ctx context.Context, campaign common.Address) (bool, error) {
	var out []interface{}
	if err := r.campaign(campaign).Call(&bind.CallOpts{Context: ctx}, &out, "isPeakBalanceUpdated"); err != nil {
		return false, fmt.Errorf("failed to read peak balance flag: %w", err)
	}
	return out[0].(bool), nil
}

func (r *ReaderAdapter) IsWithdrawn(ctx context.Context, campaign common.Address) (bool, error) {
	var out []interface{}
	if err := r.campaign(campaign).Call(&bind.CallOpts{Context: ctx}, &out, "isWithdrawn"); err != nil {
		return false, fmt.Errorf("failed to read withdrawal flag: %w", err)
	}
	return out[0].(bool), nil
}

func (r *ReaderAdapter) DonationOf(ctx context.Context, campaign, donor common.Address) (*big.Int, error) {
	var out []interface{}
	if err := r.campaign(campaign).Call(&bind.CallOpts{Context: ctx}, &out, "donations", donor); err != nil {
		return nil, fmt.Errorf("failed to read donation ledger: %w", err)
	}
	return out[0].(*big.Int), nil
}

// TokenDecimals is fetched per call chain, never hard-coded.
func (r *ReaderAdapter) TokenDecimals(ctx context.Context) (uint8, error) {
	var out []interface{}
	if err := r.token.Call(&bind.CallOpts{Context: ctx}, &out, "decimals"); err != nil {
		return 0, fmt.Errorf("failed to read token decimals: %w", err)
	}
	return out[0].(uint8), nil
}

func (r *ReaderAdapter) TokenBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	var out []interface{}
	if err := r.token.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", account); err != nil {
		return nil, fmt.Errorf("failed to read token balance: %w", err)
	}
	return out[0].(*big.Int), nil
}

func (r *ReaderAdapter) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	var out []interface{}
	if err := r.token.Call(&bind.CallOpts{Context: ctx}, &out, "allowance", owner, spender); err != nil {
		return nil, fmt.Errorf("failed to read allowance: %w", err)
	}
	return out[0].(*big.Int), nil
}

func (r *ReaderAdapter) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	balance, err := r.eth.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read native balance: %w", err)
	}
	return balance, nil
}

// DirectTransfers sums Transfer events from donor to campaign over the
// configured lookback window. The window is a hard bound: transfers older
// than it are not attributed, a documented undercount for long-lived
// campaigns.
func (r *ReaderAdapter) DirectTransfers(ctx context.Context, campaign, donor common.Address) (*usecase.TransferScan, error) {
	head, err := r.eth.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read block number: %w", err)
	}

	lookback := r.cfg.TransferLookbackBlocks
	from := uint64(0)
	capped := false
	if head > lookback {
		from = head - lookback
		capped = true
	}

	transferID := erc20ABIParsed.Events["Transfer"].ID
	logs, err := r.eth.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		Addresses: []common.Address{r.cfg.TokenAddress},
		Topics: [][]common.Hash{
			{transferID},
			{common.BytesToHash(donor.Bytes())},
			{common.BytesToHash(campaign.Bytes())},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transfer events: %w", err)
	}

	total := new(big.Int)
	for _, l := range logs {
		if len(l.Data) != 32 {
			continue
		}
		total.Add(total, new(big.Int).SetBytes(l.Data))
	}

	return &usecase.TransferScan{
		Amount:        total,
		ScannedBlocks: head - from,
		Capped:        capped,
	}, nil
}

func (r *ReaderAdapter) IsVerified(ctx context.Context, owner common.Address) (bool, error) {
	var out []interface{}
	if err := r.badge.Call(&bind.CallOpts{Context: ctx}, &out, "isVerified", owner); err != nil {
		return false, fmt.Errorf("failed to read verification status: %w", err)
	}
	return out[0].(bool), nil
}

func (r *ReaderAdapter) BadgeInfo(ctx context.Context, owner common.Address) (*domain.BadgeInfo, error) {
	var out []interface{}
	if err := r.badge.Call(&bind.CallOpts{Context: ctx}, &out, "getBadgeInfo", owner); err != nil {
		return nil, fmt.Errorf("failed to read badge info: %w", err)
	}
	info := &domain.BadgeInfo{
		Verified: out[0].(bool),
		TokenID:  out[1].(*big.Int),
	}
	if issued := out[2].(*big.Int); issued.Sign() > 0 {
		info.IssuedAt = time.Unix(issued.Int64(), 0).UTC()
	}
	return info, nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainReader = (*ReaderAdapter)(nil)
