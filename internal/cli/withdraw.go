package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
)

// NewWithdrawCmd creates the withdraw command.
func NewWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [campaign-address]",
		Short: "Withdraw funds from an ended campaign you own",
		Long: `Withdraw the funds of an ended campaign. Successful campaigns are always
withdrawable by their owner; failed campaigns only when the owner holds a
verification badge. Campaigns that received direct transfers must have
their peak balance checkpointed first (see "verifund peak").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			campaign, err := resolveCampaign(cmd, app, args, "Select a campaign to withdraw from")
			if err != nil {
				return err
			}

			txHash, err := app.Withdraw.Run(cmd.Context(), campaign)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Withdrawal confirmed"))
			fmt.Fprintf(cmd.OutOrStdout(), "  Tx: %s\n", txHash.Hex())
			return nil
		},
	}

	return cmd
}
