package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ecocode-app/ecocode-cli/internal/auth"
	"github.com/ecocode-app/ecocode-cli/internal/client"
	"github.com/ecocode-app/ecocode-cli/internal/domain"
	"github.com/ecocode-app/ecocode-cli/internal/ui"
)

// DashboardPanel renders the signed-in user's analysis history and summary
// stats.
type DashboardPanel struct {
	client  *client.APIClient
	gateway *auth.Gateway
	surface *ui.Surface
	out     io.Writer
	wf      *Workflow
}

// NewDashboardPanel creates the panel writing rendered output to out; nil
// defaults to stdout.
func NewDashboardPanel(apiClient *client.APIClient, gateway *auth.Gateway, surface *ui.Surface, out io.Writer, logger *slog.Logger) *DashboardPanel {
	if out == nil {
		out = os.Stdout
	}
	return &DashboardPanel{
		client:  apiClient,
		gateway: gateway,
		surface: surface,
		out:     out,
		wf:      NewWorkflow(surface, logger),
	}
}

// Workflow exposes the panel's state machine.
func (p *DashboardPanel) Workflow() *Workflow {
	return p.wf
}

// Load fetches and renders the current user's history. An unauthenticated
// user gets an informational notice and no request is made.
func (p *DashboardPanel) Load(ctx context.Context) error {
	if !p.gateway.IsAuthenticated() {
		p.surface.Notify.Info("Sign in to view your dashboard")
		return nil
	}

	p.wf.Begin("Loading dashboard...")
	resp, err := p.client.GetHistory(ctx, p.gateway.CurrentUserID())
	if err != nil {
		p.wf.Fail("Failed to load dashboard", err)
		return err
	}

	p.render(resp)
	p.wf.Succeed("")
	return nil
}

func (p *DashboardPanel) render(resp *domain.HistoryResponse) {
	stats := domain.ComputeDashboardStats(resp.CodeAnalyses)

	fmt.Fprintln(p.out, titleStyle.Render("Dashboard"))
	fmt.Fprintf(p.out, "Total analyses: %d   Avg green score: %.1f   Total CO₂: %.2fg\n\n",
		stats.TotalAnalyses, stats.AvgGreenScore, stats.TotalCO2Grams)

	entries := domain.CombineHistory(resp.CodeAnalyses, resp.GitHubAnalyses)
	if len(entries) == 0 {
		fmt.Fprintln(p.out, dimStyle.Render("No analyses yet. Analyze some code to get started."))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.AppendHeader(table.Row{"When", "Type", "Subject", "Result"})
	for _, entry := range entries {
		t.AppendRow(historyRow(entry))
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func historyRow(entry domain.HistoryEntry) table.Row {
	when := entry.CreatedAt.Local().Format("2006-01-02 15:04")
	switch entry.Kind {
	case domain.HistoryKindCode:
		subject := orPlaceholder(entry.Code.Language)
		result := placeholder
		if entry.Code.AnalysisResults != nil {
			result = fmt.Sprintf("score %s (%s)",
				formatScore(entry.Code.AnalysisResults.GreenScore),
				orPlaceholder(entry.Code.AnalysisResults.Rating))
		}
		return table.Row{when, "Code", subject, result}
	case domain.HistoryKindGitHub:
		subject := orPlaceholder(entry.GitHub.RepoURL)
		result := placeholder
		if entry.GitHub.AnalysisResults != nil && entry.GitHub.AnalysisResults.ImpactEstimate != nil {
			result = fmt.Sprintf("%.2fg/month",
				entry.GitHub.AnalysisResults.ImpactEstimate.TotalCO2MonthlyGrams)
		}
		return table.Row{when, "GitHub", subject, result}
	}
	return table.Row{when, placeholder, placeholder, placeholder}
}
