package render

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// PeakCache preserves the highest displayed amount per campaign within one
// session. A failed campaign's balance drops to zero as refunds drain it;
// without this the "amount raised" figure would visibly shrink between
// refreshes even though nothing about the campaign's history changed. An
// Active status resets the entry, since a live balance is allowed to move
// in both directions.
type PeakCache struct {
	mu    sync.Mutex
	peaks map[common.Address]*big.Int
}

// NewPeakCache creates an empty session cache.
func NewPeakCache() *PeakCache {
	return &PeakCache{peaks: make(map[common.Address]*big.Int)}
}

// DisplayAmount returns the amount to show for the campaign, applying
// session-level peak preservation on top of the snapshot-level figure.
func (p *PeakCache) DisplayAmount(c *domain.Campaign) *big.Int {
	amount := domain.DisplayAmount(c)

	p.mu.Lock()
	defer p.mu.Unlock()

	if c.Status == domain.StatusActive {
		delete(p.peaks, c.Address)
		return amount
	}

	if prev, ok := p.peaks[c.Address]; ok && prev.Cmp(amount) > 0 {
		return prev
	}
	p.peaks[c.Address] = amount
	return amount
}
