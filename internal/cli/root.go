package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/adapters/progress"
	"github.com/verifund-org/verifund-cli/internal/app"
	"github.com/verifund-org/verifund-cli/internal/config"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "verifund",
		Short: "Client for the Verifund crowdfunding platform",
		Long: `Verifund is a client for a decentralized crowdfunding platform: create
and browse campaigns, donate tokens, withdraw or refund after a campaign
ends, and bridge fiat payments into on-chain donations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			sink := newProgressSink(cmd)

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 && cmd.Name() != "serve" {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
					appInstance.Close()
				}
			} else {
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					appInstance.Close()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., lisk-sepolia)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for the command (default 5m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "campaign",
		Title: "Campaign Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "payment",
		Title: "Payment Commands",
	})

	for _, c := range []*cobra.Command{
		NewListCmd(), NewShowCmd(), NewCreateCmd(), NewDonateCmd(),
		NewWithdrawCmd(), NewRefundCmd(), NewPeakCmd(), NewSyncCmd(),
	} {
		c.GroupID = "campaign"
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{NewPayCmd(), NewHistoryCmd(), NewBalanceCmd()} {
		c.GroupID = "payment"
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newProgressSink picks the progress sink for the invocation. Spinners only
// make sense on an interactive terminal.
func newProgressSink(cmd *cobra.Command) usecase.ProgressSink {
	if f := cmd.Flag("non-interactive"); f != nil && f.Value.String() == "true" {
		return usecase.NopProgress{}
	}
	return progress.NewSpinnerSink()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
