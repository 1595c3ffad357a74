package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var (
		status string
		owner  string
		mine   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List campaigns",
		Long: `List all deployed campaigns with their live funding state.

Status is recomputed from time remaining and the funding target, so a
campaign whose deadline passed shows Successful or Failed even before any
settlement transaction ran.`,
		Example: `  # List all campaigns
  verifund list

  # Only campaigns still accepting donations
  verifund list --status active

  # Campaigns created by the connected wallet
  verifund list --mine`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListCampaignsParams{}

			if status != "" {
				s, err := parseStatus(status)
				if err != nil {
					return err
				}
				params.Status = &s
			}

			if mine {
				addr := callerAddress(app)
				if addr == nil {
					return domain.ErrWalletNotConnected
				}
				params.Owner = addr
			} else if owner != "" {
				if !common.IsHexAddress(owner) {
					return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, owner)
				}
				addr := common.HexToAddress(owner)
				params.Owner = &addr
			}

			result, err := app.ListCampaigns.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewCampaignsRenderer(cmd.OutOrStdout(), render.NewPeakCache())
			return renderer.RenderCampaignList(result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active, successful, failed)")
	cmd.Flags().StringVar(&owner, "owner", "", "Filter by owner address")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only campaigns created by the connected wallet")

	return cmd
}

func parseStatus(s string) (domain.CampaignStatus, error) {
	switch s {
	case "active":
		return domain.StatusActive, nil
	case "successful":
		return domain.StatusSuccessful, nil
	case "failed":
		return domain.StatusFailed, nil
	default:
		return 0, fmt.Errorf("invalid status %q (valid: active, successful, failed)", s)
	}
}
