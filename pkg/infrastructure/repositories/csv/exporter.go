package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/vsinha/sourcing/pkg/application/dto"
	"github.com/vsinha/sourcing/pkg/domain/entities"
	domainsvc "github.com/vsinha/sourcing/pkg/domain/services"
)

// Exporter writes analysis results and strategy detail to CSV files
type Exporter struct{}

// NewExporter creates a new CSV exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

var analysisHeader = []string{
	"Part Number", "Description", "Manufacturer", "Mfg PN", "Qty Needed",
	"Status", "Sources", "Stock Available", "COO", "Tariff Rate",
	"Best Unit Cost", "Best Total Cost", "Total with Tariff", "Actual Buy Qty",
	"Lead Time (days)", "Risk Score", "Risk Category",
	"Sourcing Risk", "Stock Risk", "LeadTime Risk", "Lifecycle Risk", "Geographic Risk",
	"Datasheet", "Notes",
}

// ExportAnalysis writes the full per-part analysis table. Undefined numeric
// fields render as "N/A" so a spreadsheet can tell "no data" from zero.
func (e *Exporter) ExportAnalysis(results []dto.PartResult, filename string) error {
	return writeCSV(filename, analysisHeader, func(w *csv.Writer) error {
		for i := range results {
			r := &results[i]
			row := []string{
				string(r.PartNumber),
				r.Description,
				r.Manufacturer,
				r.ManufacturerPN,
				fmt.Sprintf("%d", r.QtyNeeded),
				r.Status,
				fmt.Sprintf("%d", r.SourceCount),
				fmt.Sprintf("%d", r.StockAvailable),
				r.CountryOfOrigin,
			}

			if r.Valid {
				best, _ := r.BestCost()
				row = append(row,
					fmt.Sprintf("%.1f%%", r.TariffRate*100),
					best.Cost.UnitPrice.StringFixed(4),
					best.Cost.TotalCost.StringFixed(2),
					r.BestTotalWithTariff.StringFixed(2),
					fmt.Sprintf("%d", best.Cost.OrderQty),
					bestCostLeadTime(r),
				)
			} else {
				row = append(row, "N/A", "N/A", "N/A", "N/A", "N/A", "N/A")
			}

			row = append(row,
				fmt.Sprintf("%.1f", r.RiskScore),
				domainsvc.RiskCategory(r.RiskScore),
			)
			if r.Valid {
				row = append(row,
					fmt.Sprintf("%g", r.RiskFactors.Sourcing),
					fmt.Sprintf("%g", r.RiskFactors.Stock),
					fmt.Sprintf("%g", r.RiskFactors.LeadTime),
					fmt.Sprintf("%g", r.RiskFactors.Lifecycle),
					fmt.Sprintf("%g", r.RiskFactors.Geographic),
				)
			} else {
				row = append(row, "", "", "", "", "")
			}

			datasheet := ""
			if best, ok := r.BestCost(); ok {
				datasheet = best.Option.DatasheetURL
			}
			row = append(row, datasheet, r.Notes)

			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

var strategyHeader = []string{
	"Part Number", "Supplier", "Unit Cost ($)", "Total Cost ($)",
	"Qty Order", "Stock", "Lead (days)", "Notes",
}

// ExportStrategy writes the per-part detail of one strategy. Rows are sorted
// by part number so repeated exports are byte-identical.
func (e *Exporter) ExportStrategy(summary dto.StrategySummary, filename string) error {
	partNumbers := make([]string, 0, len(summary.Parts))
	for pn := range summary.Parts {
		partNumbers = append(partNumbers, string(pn))
	}
	sort.Strings(partNumbers)

	return writeCSV(filename, strategyHeader, func(w *csv.Writer) error {
		for _, pn := range partNumbers {
			opt := summary.Parts[entities.PartNumber(pn)]
			leadStr := "In Stock / N/A"
			if opt.Option.LeadTime.Known {
				leadStr = opt.Option.LeadTime.String()
			}
			row := []string{
				pn,
				opt.Option.Source,
				opt.Cost.UnitPrice.StringFixed(4),
				opt.Cost.TotalCost.StringFixed(2),
				fmt.Sprintf("%d", opt.Cost.OrderQty),
				fmt.Sprintf("%d", opt.Option.Stock),
				leadStr,
				opt.Cost.Note,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

var comparisonHeader = []string{"Strategy", "Total BOM Cost", "Max Lead Time (days)", "Parts Covered"}

// ExportStrategyComparison writes the strategy summary table. Callers pass
// the strategy names in their fixed presentation order.
func (e *Exporter) ExportStrategyComparison(strategies map[string]dto.StrategySummary, names []string, filename string) error {
	return writeCSV(filename, comparisonHeader, func(w *csv.Writer) error {
		for _, name := range names {
			s, ok := strategies[name]
			if !ok {
				continue
			}
			row := []string{
				name,
				s.TotalCost.StringFixed(2),
				fmt.Sprintf("%d", s.MaxLeadDays),
				fmt.Sprintf("%d", len(s.Parts)),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteTemplateBOM writes a small example BOM in the accepted upload format
func (e *Exporter) WriteTemplateBOM(filename string) error {
	header := []string{"Part Number", "Quantity", "Manufacturer", "Description"}
	rows := [][]string{
		{"LM358DR", "2", "Texas Instruments", "Op-Amp Dual"},
		{"RMCF0402FT100K", "10", "Stackpole", "Resistor 100K 0402"},
		{"GRM188R71C104KA01D", "4", "Murata", "Cap 100nF 0402"},
	}
	return writeCSV(filename, header, func(w *csv.Writer) error {
		return w.WriteAll(rows)
	})
}

// bestCostLeadTime mirrors the display rule for the best-cost option's lead
// time: raw days when known, "0" when total stock covers the need, else N/A
func bestCostLeadTime(r *dto.PartResult) string {
	best, ok := r.BestCost()
	if ok && best.Option.LeadTime.Known {
		return best.Option.LeadTime.String()
	}
	if r.StockAvailable >= r.QtyNeeded {
		return "0"
	}
	return "N/A"
}

func writeCSV(filename string, header []string, writeRows func(*csv.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writeRows(w); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	return w.Error()
}
