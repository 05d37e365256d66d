package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecocode-app/ecocode-cli/internal/domain"
)

func init() {
	rootCmd.AddCommand(hostingCmd)

	hostingCmd.Flags().String("provider", "", "hosting provider (aws, gcp, azure, ...)")
	hostingCmd.Flags().String("region", "", "provider region (us-east, eu-west, ...)")
	hostingCmd.Flags().String("tier", "", "hosting tier (serverless, container, vm)")
	hostingCmd.Flags().Int64("requests", 0, "expected monthly request volume (minimum 1000)")
	_ = hostingCmd.MarkFlagRequired("provider")
	_ = hostingCmd.MarkFlagRequired("region")
	_ = hostingCmd.MarkFlagRequired("tier")
	_ = hostingCmd.MarkFlagRequired("requests")
}

var hostingCmd = &cobra.Command{
	Use:   "hosting",
	Short: "Estimate the carbon impact of a hosting configuration",
	Long: `Ask the backend to model the monthly energy use, CO2 emissions and cost
of a hosting configuration, and render the result with everyday equivalents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		region, _ := cmd.Flags().GetString("region")
		tier, _ := cmd.Flags().GetString("tier")
		requests, _ := cmd.Flags().GetInt64("requests")

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		return app.Hosting.Submit(cmd.Context(), domain.HostingImpactRequest{
			Provider:        provider,
			Region:          region,
			Tier:            tier,
			MonthlyRequests: requests,
		})
	},
}
