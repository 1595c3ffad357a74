package domain_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

func TestDeriveStatus(t *testing.T) {
	t.Run("time remaining means active regardless of funding", func(t *testing.T) {
		status := domain.DeriveStatus(time.Second, big.NewInt(1000), big.NewInt(100))
		assert.Equal(t, domain.StatusActive, status)

		status = domain.DeriveStatus(time.Second, big.NewInt(0), big.NewInt(100))
		assert.Equal(t, domain.StatusActive, status)
	})

	t.Run("ended and target met is successful", func(t *testing.T) {
		status := domain.DeriveStatus(0, big.NewInt(100), big.NewInt(100))
		assert.Equal(t, domain.StatusSuccessful, status)

		status = domain.DeriveStatus(0, big.NewInt(150), big.NewInt(100))
		assert.Equal(t, domain.StatusSuccessful, status)
	})

	t.Run("ended below target is failed", func(t *testing.T) {
		status := domain.DeriveStatus(0, big.NewInt(99), big.NewInt(100))
		assert.Equal(t, domain.StatusFailed, status)
	})
}

func TestDisplayAmount(t *testing.T) {
	t.Run("active shows the live balance", func(t *testing.T) {
		c := &domain.Campaign{
			Status:        domain.StatusActive,
			Raised:        big.NewInt(50),
			ActualBalance: big.NewInt(80),
		}
		assert.Equal(t, big.NewInt(80), domain.DisplayAmount(c))
	})

	t.Run("successful never shrinks below raised", func(t *testing.T) {
		c := &domain.Campaign{
			Status:        domain.StatusSuccessful,
			Raised:        big.NewInt(100),
			ActualBalance: big.NewInt(0), // drained by withdrawal
		}
		assert.Equal(t, big.NewInt(100), domain.DisplayAmount(c))
	})

	t.Run("failed prefers the checkpointed peak", func(t *testing.T) {
		c := &domain.Campaign{
			Status:               domain.StatusFailed,
			Raised:               big.NewInt(10),
			ActualBalance:        big.NewInt(0),
			PeakBalance:          big.NewInt(60),
			IsPeakBalanceUpdated: true,
		}
		assert.Equal(t, big.NewInt(60), domain.DisplayAmount(c))
	})

	t.Run("failed without checkpoint falls back to max", func(t *testing.T) {
		c := &domain.Campaign{
			Status:        domain.StatusFailed,
			Raised:        big.NewInt(10),
			ActualBalance: big.NewInt(25),
		}
		assert.Equal(t, big.NewInt(25), domain.DisplayAmount(c))
	})
}

func endedCampaign(status domain.CampaignStatus) *domain.Campaign {
	return &domain.Campaign{
		Address:       common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Owner:         common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Status:        status,
		Raised:        big.NewInt(100),
		ActualBalance: big.NewInt(100),
		TimeRemaining: 0,
	}
}

func TestDeriveEligibility(t *testing.T) {
	t.Run("active campaign only allows donations", func(t *testing.T) {
		c := endedCampaign(domain.StatusActive)
		c.TimeRemaining = time.Hour

		e := domain.DeriveEligibility(c, true, big.NewInt(10))
		assert.True(t, e.CanDonate)
		assert.False(t, e.CanWithdraw)
		assert.False(t, e.CanRefund)
		assert.False(t, e.CanUpdatePeakBalance)
	})

	t.Run("owner withdraws a successful campaign", func(t *testing.T) {
		c := endedCampaign(domain.StatusSuccessful)

		e := domain.DeriveEligibility(c, true, nil)
		assert.True(t, e.CanWithdraw)

		e = domain.DeriveEligibility(c, false, nil)
		assert.False(t, e.CanWithdraw)
	})

	t.Run("external transfers gate withdrawal behind the checkpoint", func(t *testing.T) {
		c := endedCampaign(domain.StatusSuccessful)
		c.ActualBalance = big.NewInt(150) // more than recorded: direct transfers

		e := domain.DeriveEligibility(c, true, nil)
		assert.False(t, e.CanWithdraw)
		assert.True(t, e.CanUpdatePeakBalance)

		c.IsPeakBalanceUpdated = true
		e = domain.DeriveEligibility(c, true, nil)
		assert.True(t, e.CanWithdraw)
		assert.False(t, e.CanUpdatePeakBalance)
	})

	t.Run("verified owner withdraws even a failed campaign", func(t *testing.T) {
		c := endedCampaign(domain.StatusFailed)

		e := domain.DeriveEligibility(c, true, nil)
		assert.False(t, e.CanWithdraw)

		c.IsOwnerVerified = true
		e = domain.DeriveEligibility(c, true, nil)
		assert.True(t, e.CanWithdraw)
	})

	t.Run("donor refunds a failed campaign with an unverified owner", func(t *testing.T) {
		c := endedCampaign(domain.StatusFailed)

		e := domain.DeriveEligibility(c, false, big.NewInt(10))
		assert.True(t, e.CanRefund)
		assert.False(t, e.RefundWaived)
	})

	t.Run("verification waives the refund", func(t *testing.T) {
		c := endedCampaign(domain.StatusFailed)
		c.IsOwnerVerified = true

		e := domain.DeriveEligibility(c, false, big.NewInt(10))
		assert.False(t, e.CanRefund)
		assert.True(t, e.RefundWaived)
	})

	t.Run("no refund without a recorded donation", func(t *testing.T) {
		c := endedCampaign(domain.StatusFailed)

		e := domain.DeriveEligibility(c, false, nil)
		assert.False(t, e.CanRefund)

		e = domain.DeriveEligibility(c, false, big.NewInt(0))
		assert.False(t, e.CanRefund)
	})
}
