package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// CampaignsRenderer renders campaign listings as a table.
type CampaignsRenderer struct {
	out   io.Writer
	peaks *PeakCache
}

// NewCampaignsRenderer creates a new campaigns renderer.
func NewCampaignsRenderer(out io.Writer, peaks *PeakCache) *CampaignsRenderer {
	return &CampaignsRenderer{out: out, peaks: peaks}
}

// RenderCampaignList renders the listing.
func (r *CampaignsRenderer) RenderCampaignList(result *usecase.ListCampaignsResult) error {
	if len(result.Campaigns) == 0 {
		fmt.Fprintln(r.out, "No campaigns found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Campaign", "Status", "Raised", "Target", "Time Left", "Owner"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, c := range result.Campaigns {
		owner := addressStyle.Sprint(shortAddress(c.Owner.Hex()))
		if c.IsOwnerVerified {
			owner = verifiedStyle.Sprint("✓ ") + owner
		}

		t.AppendRow(table.Row{
			c.Name + "\n" + addressStyle.Sprint(shortAddress(c.Address.Hex())),
			StatusLabel(c.Status),
			amountStyle.Sprint(FormatAmount(r.peaks.DisplayAmount(c), c.Decimals)),
			FormatAmount(c.Target, c.Decimals),
			formatTimeLeft(c),
			owner,
		})
	}

	t.Render()
	fmt.Fprintf(r.out, "\n%d campaign(s)\n", len(result.Campaigns))
	return nil
}

func shortAddress(hex string) string {
	if len(hex) <= 12 {
		return hex
	}
	return hex[:8] + "…" + hex[len(hex)-4:]
}

func formatTimeLeft(c *domain.Campaign) string {
	if c.TimeRemaining <= 0 {
		return addressStyle.Sprint("ended")
	}
	d := c.TimeRemaining
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd %dh", int(d.Hours())/24, int(d.Hours())%24)
	case d >= time.Hour:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
}
