package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analyze [description]",
		Short: "Run a guardian risk analysis on a campaign description",
		Long: `Score a campaign description without publishing anything. Useful to
iterate on the wording before "verifund create". The description comes
from the argument, --file, or stdin.`,
		Example: `  verifund analyze "We are raising funds to..."
  verifund analyze --file ./description.txt
  cat description.txt | verifund analyze`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			description, err := readDescription(cmd, args, file)
			if err != nil {
				return err
			}

			analysis, err := app.AnalyzeDescription.Run(cmd.Context(), description)
			if err != nil {
				return err
			}

			render.NewCampaignRenderer(cmd.OutOrStdout(), render.NewPeakCache()).RenderAnalysis(analysis)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the description from a file")

	return cmd
}

func readDescription(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read description: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
