package render

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

func failedCampaign(balance int64) *domain.Campaign {
	return &domain.Campaign{
		Address:       common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Status:        domain.StatusFailed,
		Raised:        big.NewInt(0),
		ActualBalance: big.NewInt(balance),
	}
}

func TestPeakCache(t *testing.T) {
	t.Run("failed campaign amount never shrinks within a session", func(t *testing.T) {
		cache := NewPeakCache()

		assert.Equal(t, big.NewInt(500), cache.DisplayAmount(failedCampaign(500)))

		// Refunds drained part of the balance between refreshes.
		assert.Equal(t, big.NewInt(500), cache.DisplayAmount(failedCampaign(200)))
		assert.Equal(t, big.NewInt(500), cache.DisplayAmount(failedCampaign(0)))
	})

	t.Run("a higher figure replaces the preserved one", func(t *testing.T) {
		cache := NewPeakCache()

		assert.Equal(t, big.NewInt(500), cache.DisplayAmount(failedCampaign(500)))
		assert.Equal(t, big.NewInt(700), cache.DisplayAmount(failedCampaign(700)))
	})

	t.Run("active status resets the preservation", func(t *testing.T) {
		cache := NewPeakCache()

		assert.Equal(t, big.NewInt(500), cache.DisplayAmount(failedCampaign(500)))

		active := failedCampaign(100)
		active.Status = domain.StatusActive
		assert.Equal(t, big.NewInt(100), cache.DisplayAmount(active))

		// After the reset the lower figure is accepted again.
		assert.Equal(t, big.NewInt(200), cache.DisplayAmount(failedCampaign(200)))
	})
}
