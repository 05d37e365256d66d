package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecocode-app/ecocode-cli/internal/render"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("file", "f", "", "read code from file (use - for stdin)")
	analyzeCmd.Flags().String("code", "", "code to analyze (inline)")
	analyzeCmd.Flags().StringP("language", "l", "python", "code language (python, javascript, typescript, java, cpp)")
	analyzeCmd.Flags().Bool("sample", false, "analyze the built-in sample for the selected language")
	analyzeCmd.Flags().Bool("optimize", false, "also request AI optimization suggestions")
	analyzeCmd.Flags().String("report", "", "write a plain-text report to this file ('auto' picks a timestamped name)")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze code for its carbon footprint",
	Long: `Submit source code to the analysis backend and render the green score,
resource metrics and CO2 estimate.

Code can come from a file, stdin, an inline flag, or the built-in sample.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("language")
		language = strings.ToLower(language)

		code, err := resolveCode(cmd, language)
		if err != nil {
			return err
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		userID := app.Gateway.CurrentUserID()
		if err := app.Analysis.Submit(cmd.Context(), code, language, userID); err != nil {
			return err
		}

		if optimize, _ := cmd.Flags().GetBool("optimize"); optimize {
			if err := app.Analysis.Optimize(cmd.Context(), code, language, userID); err != nil {
				return err
			}
		}

		if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
			return writeReport(app, reportPath)
		}
		return nil
	},
}

// resolveCode picks the code source in priority order: file, inline, sample.
func resolveCode(cmd *cobra.Command, language string) (string, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		if file == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return "", fmt.Errorf("failed to read stdin: %w", err)
			}
			return string(data), nil
		}
		data, err := os.ReadFile(file) //nolint:gosec // User-supplied path by design of the command
		if err != nil {
			return "", fmt.Errorf("failed to read code file: %w", err)
		}
		return string(data), nil
	}
	if code, _ := cmd.Flags().GetString("code"); code != "" {
		return code, nil
	}
	if sample, _ := cmd.Flags().GetBool("sample"); sample {
		return render.SampleCode(language), nil
	}
	return "", fmt.Errorf("no code given: use --file, --code or --sample")
}

func writeReport(app *App, path string) error {
	analysis := app.Analysis.LastAnalysis()
	if analysis == nil {
		return fmt.Errorf("no analysis to report")
	}
	now := time.Now()
	if path == "auto" {
		path = render.ReportFilename(now)
	}
	if err := os.WriteFile(path, []byte(render.Report(analysis, now)), 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	app.Surface.Notify.Success("Report written to %s", path)
	return nil
}
