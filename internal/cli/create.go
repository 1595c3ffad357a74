package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/verifund-org/verifund-cli/internal/cli/render"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	var (
		name         string
		target       string
		duration     time.Duration
		description  string
		category     string
		creator      string
		imagePath    string
		skipAnalysis bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new campaign",
		Long: `Create a campaign: the metadata is pinned to IPFS (optionally enriched
with a guardian risk analysis of the description), then the factory deploys
the escrow contract.`,
		Example: `  # Create a 30-day campaign
  verifund create --name "Clean Water" --target 5000 --duration 720h \
    --description "Dig three wells in..." --category environment

  # Attach an image and skip the risk analysis
  verifund create --name "Clean Water" --target 5000 --duration 720h \
    --image ./well.jpg --skip-analysis`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CreateCampaignParams{
				Name:         name,
				Target:       target,
				Duration:     duration,
				Description:  description,
				Category:     category,
				CreatorName:  creator,
				SkipAnalysis: skipAnalysis,
			}

			if imagePath != "" {
				f, err := os.Open(imagePath)
				if err != nil {
					return fmt.Errorf("failed to open image: %w", err)
				}
				defer f.Close()
				params.Image = f
				params.ImageName = filepath.Base(imagePath)
			}

			result, err := app.CreateCampaign.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.FormatSuccess("Campaign created"))
			fmt.Fprintf(out, "  Tx:       %s\n", result.TxHash.Hex())
			fmt.Fprintf(out, "  Metadata: ipfs://%s\n", result.IPFSHash)
			if result.Analysis != nil {
				render.NewCampaignRenderer(out, render.NewPeakCache()).RenderAnalysis(result.Analysis)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Campaign name (required)")
	cmd.Flags().StringVar(&target, "target", "", "Funding target in tokens (required)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Campaign duration, e.g. 720h (required)")
	cmd.Flags().StringVar(&description, "description", "", "Campaign description")
	cmd.Flags().StringVar(&category, "category", "", "Campaign category")
	cmd.Flags().StringVar(&creator, "creator", "", "Creator display name")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a campaign image to pin")
	cmd.Flags().BoolVar(&skipAnalysis, "skip-analysis", false, "Publish without a guardian risk analysis")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}
