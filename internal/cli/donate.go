package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// NewDonateCmd creates the donate command.
func NewDonateCmd() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "donate [campaign-address]",
		Short: "Donate tokens to a campaign",
		Long: `Donate tokens to an active campaign.

The flow checks token and gas balances first, reconciles the spending
allowance (resetting a stale non-zero allowance before approving the exact
amount), then submits the donation. Each transaction is confirmed before
the next one is sent.`,
		Example: `  # Donate 250 tokens
  verifund donate 0x1234...abcd --amount 250`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			campaign, err := resolveCampaign(cmd, app, args, "Select a campaign to donate to")
			if err != nil {
				return err
			}

			result, err := app.Donate.Run(cmd.Context(), usecase.DonateParams{
				Campaign: campaign,
				Amount:   amount,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Donation confirmed"))
			fmt.Fprintf(cmd.OutOrStdout(), "  Tx: %s\n", result.TxHash.Hex())
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount of tokens to donate (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
