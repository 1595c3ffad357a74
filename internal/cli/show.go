package cli

import (
	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	var noMetadata bool

	cmd := &cobra.Command{
		Use:   "show [campaign-address]",
		Short: "Show one campaign in detail",
		Long: `Show a full campaign snapshot: funding state, pinned metadata, the
connected wallet's donations, and which actions are currently available.

Without an address an interactive picker is shown.`,
		Example: `  # Pick a campaign interactively
  verifund show

  # Show a specific campaign
  verifund show 0x1234...abcd`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			address, err := resolveCampaign(cmd, app, args, "Select a campaign")
			if err != nil {
				return err
			}

			result, err := app.GetCampaign.Run(cmd.Context(), usecase.GetCampaignParams{
				Address:      address,
				Caller:       callerAddress(app),
				WithMetadata: !noMetadata,
			})
			if err != nil {
				return err
			}

			renderer := render.NewCampaignRenderer(cmd.OutOrStdout(), render.NewPeakCache())
			return renderer.RenderCampaign(result)
		},
	}

	cmd.Flags().BoolVar(&noMetadata, "no-metadata", false, "Skip resolving pinned metadata")

	return cmd
}
