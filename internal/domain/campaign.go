package domain

import (
	"math/big"
	"time"
)

// DeriveStatus recomputes the campaign status from time and funding. The
// stored on-chain status is advisory: the contract only flips it inside its
// own entry points, so a campaign whose deadline passed without traffic
// still reports Active.
func DeriveStatus(timeRemaining time.Duration, raised, target *big.Int) CampaignStatus {
	if timeRemaining > 0 {
		return StatusActive
	}
	if raised.Cmp(target) >= 0 {
		return StatusSuccessful
	}
	return StatusFailed
}

// DisplayAmount selects the canonical "amount raised" figure for a snapshot.
//
//   - Active: the live token balance, which includes direct transfers that
//     bypassed the donate path.
//   - Successful: max(raised, actualBalance); the figure never shrinks after
//     success even if the balance drops post-withdrawal.
//   - Failed: the checkpointed peak balance when one exists, otherwise
//     max(raised, actualBalance). Session-level preservation on top of this
//     lives in the presentation layer, not here.
func DisplayAmount(c *Campaign) *big.Int {
	switch c.Status {
	case StatusActive:
		return c.ActualBalance
	case StatusSuccessful:
		return maxBig(c.Raised, c.ActualBalance)
	default:
		if c.IsPeakBalanceUpdated && c.PeakBalance != nil && c.PeakBalance.Sign() > 0 {
			return c.PeakBalance
		}
		return maxBig(c.Raised, c.ActualBalance)
	}
}

// Eligibility is the set of advisory gates for state-changing actions,
// computed from a freshly fetched snapshot. The contract remains the final
// arbiter; these only gate what is offered to the caller.
type Eligibility struct {
	CanDonate            bool
	CanWithdraw          bool
	CanRefund            bool
	CanUpdatePeakBalance bool

	// RefundWaived is set when the campaign failed but refunds are not
	// offered because the owner is verified; donors are told funds went to
	// the verified owner instead.
	RefundWaived bool
}

// DeriveEligibility computes the action gates for the given caller.
// donation is the caller's attributed donation (nil when unknown or zero).
func DeriveEligibility(c *Campaign, isOwner bool, donation *big.Int) Eligibility {
	hasDonated := donation != nil && donation.Sign() > 0
	ended := c.Ended()
	failed := c.Status == StatusFailed

	e := Eligibility{
		CanDonate: c.Status == StatusActive,
	}

	e.CanUpdatePeakBalance = isOwner &&
		ended &&
		!c.IsPeakBalanceUpdated &&
		c.HasExternalTransfers() &&
		c.ActualBalance.Sign() > 0

	// Withdrawal requires the external-transfer gap to be checkpointed
	// first. Verified owners may withdraw even from failed campaigns.
	e.CanWithdraw = isOwner &&
		ended &&
		(c.IsPeakBalanceUpdated || !c.HasExternalTransfers()) &&
		(c.Status == StatusSuccessful || (failed && c.IsOwnerVerified))

	e.CanRefund = hasDonated && ended && failed && !c.IsOwnerVerified
	e.RefundWaived = hasDonated && ended && failed && c.IsOwnerVerified

	return e
}

func maxBig(a, b *big.Int) *big.Int {
	if a == nil {
		return b
	}
	if b == nil || a.Cmp(b) >= 0 {
		return a
	}
	return b
}
