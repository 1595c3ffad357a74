package render

import (
	"fmt"
	"io"

	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// CampaignRenderer renders the detail view of one campaign.
type CampaignRenderer struct {
	out   io.Writer
	peaks *PeakCache
}

// NewCampaignRenderer creates a new campaign detail renderer.
func NewCampaignRenderer(out io.Writer, peaks *PeakCache) *CampaignRenderer {
	return &CampaignRenderer{out: out, peaks: peaks}
}

// RenderCampaign renders the full snapshot.
func (r *CampaignRenderer) RenderCampaign(result *usecase.GetCampaignResult) error {
	c := result.Campaign

	fmt.Fprintf(r.out, "%s\n", headerStyle.Sprint(c.Name))
	fmt.Fprintf(r.out, "%s\n\n", addressStyle.Sprint(c.Address.Hex()))

	owner := c.Owner.Hex()
	if c.IsOwnerVerified {
		owner += " " + verifiedStyle.Sprint("(verified)")
	} else {
		owner += " " + notVerifiedStyle.Sprint("(not verified)")
	}
	fmt.Fprintf(r.out, "  Owner:      %s\n", owner)
	fmt.Fprintf(r.out, "  Status:     %s\n", StatusLabel(c.Status))
	fmt.Fprintf(r.out, "  Raised:     %s\n", amountStyle.Sprint(FormatAmount(r.peaks.DisplayAmount(c), c.Decimals)))
	fmt.Fprintf(r.out, "  Target:     %s\n", FormatAmount(c.Target, c.Decimals))
	fmt.Fprintf(r.out, "  Balance:    %s\n", FormatAmount(c.ActualBalance, c.Decimals))
	if c.IsPeakBalanceUpdated {
		fmt.Fprintf(r.out, "  Peak:       %s (checkpointed)\n", FormatAmount(c.PeakBalance, c.Decimals))
	}
	fmt.Fprintf(r.out, "  Time left:  %s\n", formatTimeLeft(c))
	if c.IsWithdrawn {
		fmt.Fprintf(r.out, "  Withdrawn:  yes\n")
	}
	if c.HasExternalTransfers() && c.Status != domain.StatusActive && !c.IsPeakBalanceUpdated {
		fmt.Fprintf(r.out, "  %s\n", FormatWarning("direct transfers detected, peak balance not yet checkpointed"))
	}

	if result.Metadata != nil {
		r.renderMetadata(result.Metadata)
	}
	if result.Donation != nil {
		r.renderDonation(result.Donation, c.Decimals)
	}
	r.renderActions(result)

	return nil
}

func (r *CampaignRenderer) renderMetadata(m *domain.CampaignMetadata) {
	fmt.Fprintf(r.out, "\n%s\n", sectionTitleStyle.Sprint("Details"))
	if m.Category != "" {
		fmt.Fprintf(r.out, "  Category:   %s\n", m.Category)
	}
	if m.CreatorName != "" {
		fmt.Fprintf(r.out, "  Creator:    %s\n", m.CreatorName)
	}
	if m.Description != "" {
		fmt.Fprintf(r.out, "  %s\n", m.Description)
	}
	if m.Image != "" {
		fmt.Fprintf(r.out, "  Image:      %s\n", m.Image)
	}
	if m.GuardianAnalysis != nil {
		r.RenderAnalysis(m.GuardianAnalysis)
	}
}

// RenderAnalysis renders a guardian risk analysis block.
func (r *CampaignRenderer) RenderAnalysis(a *domain.GuardianAnalysis) {
	fmt.Fprintf(r.out, "\n%s\n", sectionTitleStyle.Sprint("Guardian Analysis"))
	fmt.Fprintf(r.out, "  Credibility: %d/100\n", a.CredibilityScore)
	fmt.Fprintf(r.out, "  Risk:        %s\n", RiskLabel(a.RiskLevel))
	fmt.Fprintf(r.out, "  %s\n", a.Summary)
	for _, s := range a.Suggestions {
		fmt.Fprintf(r.out, "  %s\n", suggestionStyle.Sprint("- "+s))
	}
}

func (r *CampaignRenderer) renderDonation(d *domain.DonationBreakdown, decimals uint8) {
	fmt.Fprintf(r.out, "\n%s\n", sectionTitleStyle.Sprint("Your Donations"))
	fmt.Fprintf(r.out, "  Recorded:   %s\n", FormatAmount(d.Recorded, decimals))
	if d.Direct != nil && d.Direct.Sign() > 0 {
		fmt.Fprintf(r.out, "  Direct:     %s\n", FormatAmount(d.Direct, decimals))
	}
	if d.LookbackCapped {
		fmt.Fprintf(r.out, "  %s\n", addressStyle.Sprintf("direct transfers scanned over the last %d blocks only", d.ScannedBlocks))
	}
	fmt.Fprintf(r.out, "  Total:      %s\n", amountStyle.Sprint(FormatAmount(d.Total(), decimals)))
}

func (r *CampaignRenderer) renderActions(result *usecase.GetCampaignResult) {
	e := result.Eligibility

	var actions []string
	if e.CanDonate {
		actions = append(actions, "donate")
	}
	if e.CanUpdatePeakBalance {
		actions = append(actions, "peak update")
	}
	if e.CanWithdraw {
		actions = append(actions, "withdraw")
	}
	if e.CanRefund {
		actions = append(actions, "refund")
	}

	if len(actions) == 0 && !e.RefundWaived {
		return
	}

	fmt.Fprintf(r.out, "\n%s\n", sectionTitleStyle.Sprint("Available Actions"))
	for _, a := range actions {
		fmt.Fprintf(r.out, "  %s\n", FormatSuccess(a))
	}
	if e.RefundWaived {
		fmt.Fprintf(r.out, "  %s\n", FormatWarning("refunds are waived: funds go to the verified campaign owner"))
	}
}
