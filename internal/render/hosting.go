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

// Emissions-breakdown weights and environmental equivalence factors. The
// breakdown splits total CO₂ by infrastructure concern; the equivalences
// translate yearly figures into everyday terms.
const (
	breakdownComputeShare = 0.5
	breakdownStorageShare = 0.2
	breakdownNetworkShare = 0.3

	kgCO2PerKmDriven   = 0.411
	kgCO2PerTreeYearly = 21.77
	kWhPerPhoneCharge  = 0.012
)

// HostingPanel owns the hosting-impact workflow.
type HostingPanel struct {
	client  *client.APIClient
	surface *ui.Surface
	out     io.Writer
	wf      *Workflow
	chart   *BarChart
}

// NewHostingPanel creates the panel writing rendered output to out; nil
// defaults to stdout.
func NewHostingPanel(apiClient *client.APIClient, surface *ui.Surface, out io.Writer, logger *slog.Logger) *HostingPanel {
	if out == nil {
		out = os.Stdout
	}
	return &HostingPanel{
		client:  apiClient,
		surface: surface,
		out:     out,
		wf:      NewWorkflow(surface, logger),
	}
}

// Workflow exposes the panel's state machine.
func (p *HostingPanel) Workflow() *Workflow {
	return p.wf
}

// Submit validates the selection, calls the calculation API once and renders
// the result.
func (p *HostingPanel) Submit(ctx context.Context, req domain.HostingImpactRequest) error {
	if err := req.Validate(); err != nil {
		p.wf.Reject(err)
		return err
	}

	p.wf.Begin("Calculating hosting impact...")
	resp, err := p.client.CalculateHostingImpact(ctx, req)
	if err != nil {
		p.wf.Fail("Calculation failed", err)
		return err
	}

	if resp.Success && resp.Impact != nil {
		p.render(resp.Impact)
		p.wf.Succeed("Calculation complete!")
	} else {
		p.wf.Succeed("")
	}
	return nil
}

func (p *HostingPanel) render(impact *domain.HostingImpact) {
	fmt.Fprintln(p.out, titleStyle.Render("Hosting Carbon Impact"))

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.AppendRows([]table.Row{
		{"Provider", orPlaceholder(impact.Provider)},
		{"Region", regionLabel(impact.Region)},
		{"Tier", titleCase(impact.Tier)},
		{"Monthly Requests", formatThousands(impact.MonthlyRequests)},
		{"Monthly Energy", fmt.Sprintf("%.6f kWh", impact.MonthlyEnergyKWh)},
		{"Monthly CO₂", fmt.Sprintf("%.2fg", impact.MonthlyCO2Grams)},
		{"Yearly CO₂", fmt.Sprintf("%.2f kg", impact.YearlyCO2Kg)},
		{"Est. Monthly Cost", fmt.Sprintf("$%.2f", impact.EstimatedMonthlyCostUSD)},
		{"Grid Carbon Intensity", fmt.Sprintf("%.0f g/kWh", impact.CarbonIntensityRegion)},
		{"Provider Efficiency", fmt.Sprintf("%.0f%%", impact.ProviderEfficiencyScore)},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Fprintln(p.out)

	p.replaceChart(breakdownChart(impact.MonthlyCO2Grams))
	fmt.Fprintln(p.out, p.chart.Render())

	p.renderContext(impact)
}

// renderContext translates the yearly footprint into everyday equivalents.
func (p *HostingPanel) renderContext(impact *domain.HostingImpact) {
	yearlyEnergyKWh := impact.MonthlyEnergyKWh * 12

	fmt.Fprintln(p.out, headerStyle.Render("Environmental Context"))
	fmt.Fprintf(p.out, "  ≈ %.1f km driven per year\n", impact.YearlyCO2Kg/kgCO2PerKmDriven)
	fmt.Fprintf(p.out, "  ≈ %.2f trees needed to offset yearly CO₂\n", impact.YearlyCO2Kg/kgCO2PerTreeYearly)
	fmt.Fprintf(p.out, "  ≈ %.0f phone charges per year\n", yearlyEnergyKWh/kWhPerPhoneCharge)
}

// replaceChart enforces the one-live-chart invariant for this panel.
func (p *HostingPanel) replaceChart(next *BarChart) {
	if p.chart != nil {
		p.chart.Destroy()
	}
	p.chart = next
}

func breakdownChart(monthlyCO2Grams float64) *BarChart {
	chart := NewBarChart("Emissions Breakdown", monthlyCO2Grams)
	compute := monthlyCO2Grams * breakdownComputeShare
	storage := monthlyCO2Grams * breakdownStorageShare
	network := monthlyCO2Grams * breakdownNetworkShare
	chart.AddWithLegend("Compute", compute, colorAmber, fmt.Sprintf("%.2fg", compute))
	chart.AddWithLegend("Storage", storage, colorLime, fmt.Sprintf("%.2fg", storage))
	chart.AddWithLegend("Network", network, colorGreen, fmt.Sprintf("%.2fg", network))
	return chart
}
