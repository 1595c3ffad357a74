package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	var (
		reference string
		campaign  string
		page      int
		take      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List fiat payment requests",
		Long: `List mint requests created against the payment gateway, newest first.

--reference looks up one exact request. --campaign keeps only requests
minting to that campaign address.`,
		Example: `  # Latest payment requests
  verifund history

  # One specific request
  verifund history --reference INV-12345

  # Requests for one campaign
  verifund history --campaign 0x1234...abcd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.PaymentHistoryParams{
				Reference: reference,
				Page:      page,
				Take:      take,
			}
			if campaign != "" {
				if !common.IsHexAddress(campaign) {
					return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, campaign)
				}
				addr := common.HexToAddress(campaign)
				params.Campaign = &addr
			}

			result, err := app.PaymentHistory.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewPaymentsRenderer(cmd.OutOrStdout()).RenderHistory(result)
		},
	}

	cmd.Flags().StringVar(&reference, "reference", "", "Look up one request by reference")
	cmd.Flags().StringVar(&campaign, "campaign", "", "Filter by destination campaign address")
	cmd.Flags().IntVar(&page, "page", 1, "Result page")
	cmd.Flags().IntVar(&take, "take", 10, "Results per page")

	return cmd
}
