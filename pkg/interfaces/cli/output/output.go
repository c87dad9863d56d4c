package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vsinha/sourcing/pkg/application/dto"
	"github.com/vsinha/sourcing/pkg/application/services"
	domainsvc "github.com/vsinha/sourcing/pkg/domain/services"
)

// Config controls result rendering
type Config struct {
	Format  string
	Verbose bool
	Elapsed time.Duration
}

// Render writes the build summary to stdout in the requested format
func Render(summary *dto.BuildSummary, cfg Config) error {
	switch cfg.Format {
	case "text":
		renderText(summary, cfg)
		return nil
	case "json":
		return renderJSON(summary)
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Format)
	}
}

func renderText(summary *dto.BuildSummary, cfg Config) {
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                    BOM SOURCING ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	kpi := summary.KPI
	fmt.Println("📊 SUMMARY")
	if cfg.Elapsed > 0 {
		fmt.Printf("  Analysis Time: %v\n", cfg.Elapsed)
	}
	fmt.Printf("  Parts Analyzed: %d\n", kpi.PartCount)
	fmt.Printf("  Total BOM Cost: $%s\n", kpi.TotalBestCost.StringFixed(2))
	fmt.Printf("  Cost with Tariffs: $%s (+$%s)\n",
		kpi.TotalCostWithTariff.StringFixed(2), kpi.TariffImpact.StringFixed(2))
	fmt.Printf("  Risk: %d high / %d moderate / %d low\n", kpi.HighRisk, kpi.ModerateRisk, kpi.LowRisk)
	fmt.Printf("  EOL or Discontinued: %d\n", kpi.LifecycleRisk)
	fmt.Printf("  Out of Stock: %d\n", kpi.OutOfStock)
	fmt.Printf("  Not Found (skipped from strategies): %d\n", kpi.NotFound)
	fmt.Println()

	renderResultsTable(summary.Results)
	fmt.Println()
	renderStrategyTable(summary.Strategies)
}

func renderResultsTable(results []dto.PartResult) {
	tw := table.Table{}
	tw.AppendHeader(table.Row{
		"Part Number", "Status", "Qty", "Stock", "COO",
		"Best Unit", "Best Total", "Lead", "Risk", "Notes",
	})

	for i := range results {
		r := &results[i]
		unitCost, totalCost, lead := "N/A", "N/A", "N/A"
		if best, ok := r.BestCost(); ok {
			unitCost = "$" + best.Cost.UnitPrice.StringFixed(4)
			totalCost = "$" + best.Cost.TotalCost.StringFixed(2)
			lead = best.Option.LeadTime.String()
		}
		tw.AppendRow(table.Row{
			string(r.PartNumber),
			r.Status,
			fmt.Sprintf("%d", r.QtyNeeded),
			fmt.Sprintf("%d", r.StockAvailable),
			r.CountryOfOrigin,
			unitCost,
			totalCost,
			lead,
			colorRisk(r.RiskScore),
			r.Notes,
		})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

func renderStrategyTable(strategies map[string]dto.StrategySummary) {
	tw := table.Table{}
	tw.AppendHeader(table.Row{"Strategy", "Total BOM Cost", "Max Lead Time", "Parts Covered"})

	for _, name := range services.StrategyNames {
		s, ok := strategies[name]
		if !ok {
			continue
		}
		tw.AppendRow(table.Row{
			name,
			"$" + s.TotalCost.StringFixed(2),
			fmt.Sprintf("%d days", s.MaxLeadDays),
			fmt.Sprintf("%d", len(s.Parts)),
		})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

func colorRisk(score float64) string {
	formatted := fmt.Sprintf("%.1f", score)
	switch domainsvc.RiskCategory(score) {
	case "High":
		return text.FgRed.Sprint(formatted)
	case "Moderate":
		return text.FgYellow.Sprint(formatted)
	default:
		return text.FgGreen.Sprint(formatted)
	}
}

func renderJSON(summary *dto.BuildSummary) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
