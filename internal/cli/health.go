package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check analysis backend availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		status, err := app.Client.HealthCheck(cmd.Context())
		if err != nil {
			app.Surface.Notify.Warning("Backend API is not available. Please ensure the server is running at %s", app.Config.GetAPIBaseURL())
			return err
		}

		fmt.Printf("Status: %s\n", status.Status)
		fmt.Printf("Supabase: %s\n", status.Supabase)
		fmt.Printf("Gemini: %s\n", status.Gemini)
		fmt.Printf("GitHub: %s\n", status.GitHub)
		fmt.Printf("Timestamp: %s\n", status.Timestamp)
		return nil
	},
}
