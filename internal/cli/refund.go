package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
)

// NewRefundCmd creates the refund command.
func NewRefundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund [campaign-address]",
		Short: "Claim a refund from a failed campaign",
		Long: `Claim back your recorded donation from a failed campaign. Refunds are
not offered when the campaign owner holds a verification badge; in that
case the funds go to the verified owner instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			campaign, err := resolveCampaign(cmd, app, args, "Select a campaign to claim a refund from")
			if err != nil {
				return err
			}

			txHash, err := app.Refund.Run(cmd.Context(), campaign)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Refund confirmed"))
			fmt.Fprintf(cmd.OutOrStdout(), "  Tx: %s\n", txHash.Hex())
			return nil
		},
	}

	return cmd
}
