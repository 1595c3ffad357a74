package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/app"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

const paymentPollInterval = 10 * time.Second

// NewPayCmd creates the pay command.
func NewPayCmd() *cobra.Command {
	var (
		amount      string
		expiryHours int
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "pay [campaign-address]",
		Short: "Donate via a fiat payment",
		Long: `Create a payment request against the fiat gateway. The command prints a
hosted payment URL; once the payment settles, the gateway mints tokens
directly to the campaign address. The campaign owner later folds these
into the recorded total with "verifund sync".

With --watch the command polls the request until it leaves the
waiting-for-payment state.`,
		Example: `  # Request a 100-token fiat payment
  verifund pay 0x1234...abcd --amount 100

  # Wait for the payment to settle
  verifund pay 0x1234...abcd --amount 100 --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			campaign, err := resolveCampaign(cmd, app, args, "Select a campaign to pay into")
			if err != nil {
				return err
			}

			result, err := app.RequestPayment.Run(cmd.Context(), usecase.RequestPaymentParams{
				Amount:   amount,
				Campaign: campaign,
				TTLHours: expiryHours,
			})
			if err != nil {
				return err
			}

			renderer := render.NewPaymentsRenderer(cmd.OutOrStdout())
			if err := renderer.RenderMintRequest(result); err != nil {
				return err
			}

			if !watch {
				return nil
			}
			return watchPayment(cmd, app, result.Reference)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Token amount to request (required)")
	cmd.Flags().IntVar(&expiryHours, "expiry-hours", 0, "Payment window in hours (default 24)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Poll until the payment settles or expires")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// watchPayment polls the gateway until the request leaves the waiting state
// or the command context expires.
func watchPayment(cmd *cobra.Command, a *app.App, reference string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Waiting for payment...")

	ticker := time.NewTicker(paymentPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		case <-ticker.C:
		}

		result, err := a.PaymentHistory.Run(cmd.Context(), usecase.PaymentHistoryParams{Reference: reference})
		if err != nil {
			return err
		}
		if len(result.Records) == 0 {
			continue
		}

		record := result.Records[0]
		switch record.PaymentStatus {
		case domain.PaymentPaid:
			fmt.Fprintln(out, render.FormatSuccess("Payment settled"))
			if record.UserMintStatus == domain.MintMinted && record.TxHash != "" {
				fmt.Fprintf(out, "  Mint tx: %s\n", record.TxHash)
			}
			return nil
		case domain.PaymentExpired:
			return fmt.Errorf("payment request %s expired", reference)
		}
	}
}
