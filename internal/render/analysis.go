package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ecocode-app/ecocode-cli/internal/client"
	"github.com/ecocode-app/ecocode-cli/internal/config"
	"github.com/ecocode-app/ecocode-cli/internal/domain"
	"github.com/ecocode-app/ecocode-cli/internal/ui"
)

// AnalysisPanel owns the code-analysis workflow: validate, submit, render
// score, metrics grid and score chart.
type AnalysisPanel struct {
	client  *client.APIClient
	cfg     config.ClientConfig
	surface *ui.Surface
	out     io.Writer
	wf      *Workflow
	chart   *BarChart

	lastAnalysis *domain.CodeAnalysis
}

// NewAnalysisPanel creates the panel writing rendered output to out; nil
// defaults to stdout.
func NewAnalysisPanel(apiClient *client.APIClient, cfg config.ClientConfig, surface *ui.Surface, out io.Writer, logger *slog.Logger) *AnalysisPanel {
	if out == nil {
		out = os.Stdout
	}
	return &AnalysisPanel{
		client:  apiClient,
		cfg:     cfg,
		surface: surface,
		out:     out,
		wf:      NewWorkflow(surface, logger),
	}
}

// Workflow exposes the panel's state machine.
func (p *AnalysisPanel) Workflow() *Workflow {
	return p.wf
}

// LastAnalysis returns the most recently rendered analysis, if any.
func (p *AnalysisPanel) LastAnalysis() *domain.CodeAnalysis {
	return p.lastAnalysis
}

// Submit validates the input, calls the analysis API once and renders the
// result. Validation failures never reach the network layer.
func (p *AnalysisPanel) Submit(ctx context.Context, code, language, userID string) error {
	req := domain.CodeAnalysisRequest{Code: code, Language: language, UserID: userID}
	if err := req.Validate(p.cfg.GetMaxCodeLength()); err != nil {
		p.wf.Reject(err)
		return err
	}

	p.wf.Begin("Analyzing code...")
	resp, err := p.client.AnalyzeCode(ctx, req)
	if err != nil {
		p.wf.Fail("Analysis failed", err)
		return err
	}

	if resp.Success && resp.Analysis != nil {
		p.lastAnalysis = resp.Analysis
		p.render(resp.Analysis)
		p.wf.Succeed("Analysis complete!")
	} else {
		p.wf.Succeed("")
	}
	return nil
}

// Optimize requests AI suggestions for the previously analyzed code.
func (p *AnalysisPanel) Optimize(ctx context.Context, code, language, userID string) error {
	if p.lastAnalysis == nil {
		p.surface.Notify.Warning("Please analyze code first")
		return nil
	}

	req := domain.AIOptimizeRequest{
		Code:            code,
		Language:        language,
		AnalysisResults: p.lastAnalysis,
		UserID:          userID,
	}
	if err := req.Validate(p.cfg.GetMaxCodeLength()); err != nil {
		p.wf.Reject(err)
		return err
	}

	p.wf.Begin("Getting AI optimization suggestions...")
	resp, err := p.client.GetAIOptimization(ctx, req)
	if err != nil {
		p.wf.Fail("AI optimization failed", err)
		return err
	}

	if resp.Success && resp.Optimization != nil {
		p.renderOptimization(resp.Optimization)
	}
	p.wf.Succeed("")
	return nil
}

func (p *AnalysisPanel) render(analysis *domain.CodeAnalysis) {
	score := analysis.GreenScore
	ring := ratingStyle.Background(scoreColor(score))

	fmt.Fprintln(p.out, titleStyle.Render("Green Score"))
	fmt.Fprintf(p.out, "%s / 100  %s\n\n",
		scoreValueStyle.Foreground(scoreColor(score)).Render(formatScore(score)),
		ring.Render(orPlaceholder(analysis.Rating)))

	fmt.Fprintf(p.out, "CO₂ estimate: %s\n\n", formatGrams(analysis.CO2EstimateGrams))

	p.renderMetrics(analysis.Metrics, analysis.Scores)

	p.replaceChart(scoresChart(analysis.Scores))
	fmt.Fprintln(p.out, p.chart.Render())
}

func (p *AnalysisPanel) renderMetrics(metrics domain.CodeMetrics, scores domain.ResourceScores) {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Lines of Code", formatCount(metrics.LinesOfCode)},
		{"Loops", formatCount(metrics.Loops)},
		{"Nested Loops", formatCount(metrics.NestedLoops)},
		{"API Calls", formatCount(metrics.APICalls)},
		{"File I/O", formatCount(metrics.FileIOOperations)},
		{"Recursion", formatCount(metrics.RecursionCount)},
		{"DB Queries", formatCount(metrics.DBQueries)},
		{"CPU Score", fmt.Sprintf("%.2f", scores.CPUScore)},
		{"Network Score", fmt.Sprintf("%.2f", scores.NetworkScore)},
		{"Memory Score", fmt.Sprintf("%.2f", scores.MemoryScore)},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Fprintln(p.out)
}

func (p *AnalysisPanel) renderOptimization(opt *domain.Optimization) {
	fmt.Fprintln(p.out, titleStyle.Render("AI Optimization"))

	if opt.AIAnalysis != nil {
		analysis := opt.AIAnalysis
		p.renderList("Inefficiencies Found", analysis.Inefficiencies)
		p.renderList("Optimization Suggestions", analysis.Suggestions)
		p.renderList("Explanations", analysis.Explanations)
		if analysis.OptimizedCode != "" {
			fmt.Fprintln(p.out, headerStyle.Render("Optimized Code"))
			fmt.Fprintln(p.out, cardStyle.Render(analysis.OptimizedCode))
		}
		return
	}
	p.renderList("Suggestions", opt.Suggestions)
}

func (p *AnalysisPanel) renderList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(p.out, headerStyle.Render(title))
	for _, item := range items {
		fmt.Fprintf(p.out, "  • %s\n", item)
	}
	fmt.Fprintln(p.out)
}

// replaceChart enforces the one-live-chart invariant: the prior chart is
// destroyed before the replacement goes live.
func (p *AnalysisPanel) replaceChart(next *BarChart) {
	if p.chart != nil {
		p.chart.Destroy()
	}
	p.chart = next
}

func scoresChart(scores domain.ResourceScores) *BarChart {
	chart := NewBarChart("Impact Scores", 100)
	chart.Add("CPU Usage", scores.CPUScore, scoreColor(100-scores.CPUScore))
	chart.Add("Network Usage", scores.NetworkScore, scoreColor(100-scores.NetworkScore))
	chart.Add("Memory Usage", scores.MemoryScore, scoreColor(100-scores.MemoryScore))
	return chart
}
