package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
)

// NewPeakCmd creates the peak command.
func NewPeakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peak [campaign-address]",
		Short: "Checkpoint a campaign's peak balance",
		Long: `Checkpoint the current token balance of an ended campaign you own.

Donations that arrive as direct token transfers bypass the contract's
donate ledger. Before such a campaign can be withdrawn, the owner records
the live balance once; the checkpoint is immutable and becomes the
authoritative amount raised.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			campaign, err := resolveCampaign(cmd, app, args, "Select a campaign to checkpoint")
			if err != nil {
				return err
			}

			txHash, err := app.UpdatePeakBalance.Run(cmd.Context(), campaign)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Peak balance checkpointed"))
			fmt.Fprintf(cmd.OutOrStdout(), "  Tx: %s\n", txHash.Hex())
			return nil
		},
	}

	return cmd
}
