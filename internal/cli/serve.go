package cli

import (
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the backend helper server",
		Long: `Serve the off-chain helper routes over HTTP: guardian risk analysis,
fiat payment requests, and IPFS pinning. These hold the service
credentials, so browser front ends call this server instead of embedding
secrets. On-chain reads and writes are not proxied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			return app.Server.Run(cmd.Context())
		},
	}

	return cmd
}
