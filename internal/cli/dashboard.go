package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"history"},
	Short:   "Show your analysis history and summary stats",
	Long: `Fetch the signed-in user's stored analyses and render summary statistics
with a combined history of code and repository analyses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		return app.Dashboard.Load(cmd.Context())
	},
}
