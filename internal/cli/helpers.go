package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/app"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// resolveCampaign turns the optional positional argument into a campaign
// address. Without an argument an interactive picker over all campaigns is
// offered; in non-interactive mode the argument is mandatory.
func resolveCampaign(cmd *cobra.Command, a *app.App, args []string, prompt string) (common.Address, error) {
	if len(args) > 0 {
		if !common.IsHexAddress(args[0]) {
			return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, args[0])
		}
		return common.HexToAddress(args[0]), nil
	}

	if a.Config.NonInteractive {
		return common.Address{}, fmt.Errorf("campaign address argument is required in non-interactive mode")
	}

	listing, err := a.ListCampaigns.Run(cmd.Context(), usecase.ListCampaignsParams{})
	if err != nil {
		return common.Address{}, err
	}
	selected, err := a.Selector.SelectCampaign(cmd.Context(), listing.Campaigns, prompt)
	if err != nil {
		return common.Address{}, err
	}
	return selected.Address, nil
}

// callerAddress returns the connected wallet address, or nil without a
// signer so read paths can fall back to an anonymous view.
func callerAddress(a *app.App) *common.Address {
	if !a.Wallet.Connected() {
		return nil
	}
	addr, err := a.Wallet.Address()
	if err != nil {
		return nil
	}
	return &addr
}
