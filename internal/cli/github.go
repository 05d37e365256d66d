package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(githubCmd)
}

var githubCmd = &cobra.Command{
	Use:   "github [repository-url]",
	Short: "Analyze a GitHub repository's carbon impact",
	Long: `Submit a public GitHub repository URL for analysis and render the
repository card, hosting impact estimate and language distribution.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		return app.GitHub.Submit(cmd.Context(), args[0], app.Gateway.CurrentUserID())
	},
}
