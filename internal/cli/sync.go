package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [campaign-address]",
		Short: "Reconcile fiat-rail donations into the campaign ledger",
		Long: `Trigger a campaign's reconciliation of gateway-minted donations. Fiat
payments mint tokens directly to the campaign address; this owner call
folds them into the contract's recorded total.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			campaign, err := resolveCampaign(cmd, app, args, "Select a campaign to sync")
			if err != nil {
				return err
			}

			txHash, err := app.SyncDonations.Run(cmd.Context(), campaign)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Donation sync confirmed"))
			fmt.Fprintf(cmd.OutOrStdout(), "  Tx: %s\n", txHash.Hex())
			return nil
		},
	}

	return cmd
}
