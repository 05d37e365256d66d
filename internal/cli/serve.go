package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecocode-app/ecocode-cli/internal/devserver"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 8000, "port to listen on")
}

var serveCmd = &cobra.Command{
	Use:   "dev-server",
	Short: "Run a local stand-in for the analysis backend",
	Long: `Serve the analysis API surface with canned results on localhost.

Useful for trying the client without a deployed backend. The dev server
performs no real analysis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		fmt.Printf("Development backend listening on http://localhost%s\n", addr)
		server := &http.Server{
			Addr:              addr,
			Handler:           devserver.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		return server.ListenAndServe()
	},
}
