package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ecocode-app/ecocode-cli/internal/client"
	"github.com/ecocode-app/ecocode-cli/internal/domain"
	"github.com/ecocode-app/ecocode-cli/internal/ui"
)

// topLanguageCount caps the language distribution chart.
const topLanguageCount = 5

// GitHubPanel owns the repository-analysis workflow.
type GitHubPanel struct {
	client  *client.APIClient
	surface *ui.Surface
	out     io.Writer
	wf      *Workflow
	chart   *BarChart
}

// NewGitHubPanel creates the panel writing rendered output to out; nil
// defaults to stdout.
func NewGitHubPanel(apiClient *client.APIClient, surface *ui.Surface, out io.Writer, logger *slog.Logger) *GitHubPanel {
	if out == nil {
		out = os.Stdout
	}
	return &GitHubPanel{
		client:  apiClient,
		surface: surface,
		out:     out,
		wf:      NewWorkflow(surface, logger),
	}
}

// Workflow exposes the panel's state machine.
func (p *GitHubPanel) Workflow() *Workflow {
	return p.wf
}

// Submit validates the repository URL, calls the analysis API once and
// renders the result.
func (p *GitHubPanel) Submit(ctx context.Context, repoURL, userID string) error {
	req := domain.GitHubAnalysisRequest{RepoURL: repoURL, UserID: userID}
	if err := req.Validate(); err != nil {
		p.wf.Reject(err)
		return err
	}

	p.wf.Begin("Analyzing GitHub repository...")
	resp, err := p.client.AnalyzeGitHub(ctx, req)
	if err != nil {
		p.wf.Fail("GitHub analysis failed", err)
		return err
	}

	if resp.Success && resp.Analysis != nil {
		p.render(resp.Analysis)
		p.wf.Succeed("GitHub analysis complete!")
	} else {
		p.wf.Succeed("")
	}
	return nil
}

func (p *GitHubPanel) render(analysis *domain.GitHubAnalysis) {
	if analysis.RepoInfo != nil {
		p.renderRepoCard(analysis.RepoInfo)
	}
	if analysis.ImpactEstimate != nil {
		p.renderImpact(analysis.ImpactEstimate)
	}
	if len(analysis.Languages) > 0 {
		p.replaceChart(languageChart(analysis.Languages))
		fmt.Fprintln(p.out, p.chart.Render())
	}
}

func (p *GitHubPanel) renderRepoCard(info *domain.RepoInfo) {
	fmt.Fprintln(p.out, titleStyle.Render(fmt.Sprintf("%s/%s", orPlaceholder(info.Owner), orPlaceholder(info.Name))))
	if info.Description != "" {
		fmt.Fprintln(p.out, dimStyle.Render(info.Description))
	}
	fmt.Fprintf(p.out, "★ %s   ⑂ %s   %s   %s KB\n",
		formatCount(info.Stars),
		formatCount(info.Forks),
		orPlaceholder(info.Language),
		formatScore(info.SizeKB))
	fmt.Fprintf(p.out, "Created %s, updated %s\n\n",
		formatDate(info.CreatedAt), formatDate(info.UpdatedAt))
}

func (p *GitHubPanel) renderImpact(impact *domain.ImpactEstimate) {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.AppendHeader(table.Row{"Impact Estimate", "Value"})
	t.AppendRows([]table.Row{
		{"Compute Score", fmt.Sprintf("%.2f", impact.ComputeScore)},
		{"Est. CI/CD Runs / Month", fmt.Sprintf("%.0f", impact.EstimatedCICDRunsMonthly)},
		{"Storage CO₂", fmt.Sprintf("%.4fg", impact.CO2StorageGrams)},
		{"Compute CO₂", fmt.Sprintf("%.4fg", impact.CO2ComputeGrams)},
		{"CI/CD CO₂", fmt.Sprintf("%.4fg", impact.CO2CICDGrams)},
		{"Total Monthly CO₂", fmt.Sprintf("%.2fg", impact.TotalCO2MonthlyGrams)},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Fprintln(p.out)
}

// replaceChart enforces the one-live-chart invariant for this panel.
func (p *GitHubPanel) replaceChart(next *BarChart) {
	if p.chart != nil {
		p.chart.Destroy()
	}
	p.chart = next
}

// languageChart shows the top languages by byte share. Colors cycle through
// the palette purely for visual separation.
func languageChart(languages map[string]int64) *BarChart {
	shares := domain.TopLanguages(languages, topLanguageCount)
	chart := NewBarChart("Language Distribution", 100)
	for i, share := range shares {
		chart.AddWithLegend(share.Name, share.Percent, chartPalette[i%len(chartPalette)],
			fmt.Sprintf("%.1f%%", share.Percent))
	}
	return chart
}
