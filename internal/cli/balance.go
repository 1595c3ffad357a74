package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// nativeDecimals is the native coin's precision (wei per token).
const nativeDecimals = 18

// NewBalanceCmd creates the balance command.
func NewBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Show token and gas balances",
		Long: `Show an account's token and native balances. Without an argument the
connected wallet's address is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var addr common.Address
			if len(args) > 0 {
				if !common.IsHexAddress(args[0]) {
					return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, args[0])
				}
				addr = common.HexToAddress(args[0])
			} else {
				if !app.Wallet.Connected() {
					return domain.ErrWalletNotConnected
				}
				addr, err = app.Wallet.Address()
				if err != nil {
					return err
				}
			}

			result, err := app.Balances.Run(cmd.Context(), addr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account: %s\n", addr.Hex())
			fmt.Fprintf(out, "  Token:  %s\n", render.FormatAmount(result.Token, result.Decimals))
			fmt.Fprintf(out, "  Native: %s\n", render.FormatAmount(result.Native, nativeDecimals))
			return nil
		},
	}

	return cmd
}
