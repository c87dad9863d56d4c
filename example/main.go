package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/application/services"
	"github.com/vsinha/sourcing/pkg/domain/entities"
	"github.com/vsinha/sourcing/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create the option repository and load supplier offers
	optionRepo := memory.NewOptionRepository(3)
	setupSupplierOptions(optionRepo)

	// A small controller-board BOM: op-amp, pull-up resistor, decoupling cap
	bom := []entities.BOMLine{
		{PartNumber: "LM358DR", Manufacturer: "Texas Instruments", Description: "Op-Amp Dual GP 1.1MHz", QtyPerUnit: 2},
		{PartNumber: "RMCF0402FT100K", Manufacturer: "Stackpole", Description: "RES 100K OHM 1% 1/16W 0402", QtyPerUnit: 10},
		{PartNumber: "GRM188R71C104KA01D", Manufacturer: "Murata", Description: "CAP CER 0.1UF 16V X7R 0603", QtyPerUnit: 4},
	}

	cfg := services.DefaultConfig()
	cfg.TotalUnits = 500 // production run of 500 boards

	fmt.Println("🔍 Analyzing controller board BOM...")
	fmt.Printf("Build size: %d units, %d BOM lines\n", cfg.TotalUnits, len(bom))
	fmt.Println()

	service := services.NewAnalysisService(optionRepo)
	summary, err := service.AnalyzeBOM(ctx, bom, cfg)
	if err != nil {
		fmt.Printf("❌ Analysis failed: %v\n", err)
		return
	}

	// Per-part decisions
	fmt.Println("📊 Part Decisions:")
	for _, result := range summary.Results {
		if !result.Valid {
			fmt.Printf("  %s: ⚠️  %s\n", result.PartNumber, result.Status)
			continue
		}
		best, _ := result.BestCost()
		fmt.Printf("  %s: buy %d from %s @ $%s (total $%s)\n",
			result.PartNumber,
			best.Cost.OrderQty,
			best.Option.Source,
			best.Cost.UnitPrice.StringFixed(4),
			best.Cost.TotalCost.StringFixed(2))
		fmt.Printf("    Risk: %.1f | Tariff: %.1f%% | Lead: %s\n",
			result.RiskScore, result.TariffRate*100, best.Option.LeadTime)
		if result.Notes != "" {
			fmt.Printf("    Notes: %s\n", result.Notes)
		}
	}
	fmt.Println()

	// Strategy comparison
	fmt.Println("🎯 Purchasing Strategies:")
	for _, name := range services.StrategyNames {
		strategy, ok := summary.Strategies[name]
		if !ok {
			continue
		}
		fmt.Printf("  %-24s $%s (max lead %d days, %d parts)\n",
			name, strategy.TotalCost.StringFixed(2), strategy.MaxLeadDays, len(strategy.Parts))
	}
	fmt.Println()

	kpi := summary.KPI
	fmt.Println("📈 Build KPIs:")
	fmt.Printf("  Total BOM Cost: $%s\n", kpi.TotalBestCost.StringFixed(2))
	fmt.Printf("  Cost with Tariffs: $%s (+$%s)\n",
		kpi.TotalCostWithTariff.StringFixed(2), kpi.TariffImpact.StringFixed(2))
	fmt.Printf("  Risk: %d high / %d moderate / %d low\n", kpi.HighRisk, kpi.ModerateRisk, kpi.LowRisk)
	fmt.Println()

	fmt.Println("✅ Sourcing analysis complete!")
}

func setupSupplierOptions(repo *memory.OptionRepository) {
	// Op-amp: Mouser stocked in Malaysia, Nexar cheaper but China origin
	repo.AddOptions("LM358DR",
		entities.SupplierOption{
			Source:                 "Mouser",
			SourcePartNumber:       "595-LM358DR",
			ManufacturerPartNumber: "LM358DR",
			Manufacturer:           "Texas Instruments",
			Description:            "Op-Amp Dual GP 1.1MHz 8-SOIC",
			Stock:                  24000,
			LeadTime:               entities.KnownLeadTime(0),
			MinOrderQty:            1,
			CountryOfOrigin:        "Malaysia",
			PriceBreaks: []entities.PriceBreak{
				{Qty: 1, Price: decimal.NewFromFloat(0.42)},
				{Qty: 100, Price: decimal.NewFromFloat(0.24)},
				{Qty: 1000, Price: decimal.NewFromFloat(0.16)},
			},
		},
		entities.SupplierOption{
			Source:                 "Nexar",
			SourcePartNumber:       "NX-LM358DR",
			ManufacturerPartNumber: "LM358DR",
			Manufacturer:           "Texas Instruments",
			Description:            "Op-Amp Dual GP 1.1MHz 8-SOIC",
			Stock:                  0,
			LeadTime:               entities.KnownLeadTime(56),
			MinOrderQty:            500,
			CountryOfOrigin:        "China",
			PriceBreaks: []entities.PriceBreak{
				{Qty: 500, Price: decimal.NewFromFloat(0.11)},
			},
		},
	)

	// Resistor: single source, well stocked
	repo.AddOptions("RMCF0402FT100K",
		entities.SupplierOption{
			Source:                 "Mouser",
			SourcePartNumber:       "660-RMCF0402FT100K",
			ManufacturerPartNumber: "RMCF0402FT100K",
			Manufacturer:           "Stackpole",
			Description:            "RES 100K OHM 1% 1/16W 0402",
			Stock:                  150000,
			LeadTime:               entities.KnownLeadTime(0),
			MinOrderQty:            100,
			CountryOfOrigin:        "Taiwan",
			PriceBreaks: []entities.PriceBreak{
				{Qty: 100, Price: decimal.NewFromFloat(0.012)},
				{Qty: 1000, Price: decimal.NewFromFloat(0.004)},
				{Qty: 5000, Price: decimal.NewFromFloat(0.0018)},
			},
		},
	)

	// Capacitor: EOL at the only distributor carrying it
	repo.AddOptions("GRM188R71C104KA01D",
		entities.SupplierOption{
			Source:                 "Mouser",
			SourcePartNumber:       "81-GRM188R71C104KA1D",
			ManufacturerPartNumber: "GRM188R71C104KA01D",
			Manufacturer:           "Murata",
			Description:            "CAP CER 0.1UF 16V X7R 0603",
			Stock:                  1800,
			LeadTime:               entities.UnknownLeadTime(),
			MinOrderQty:            100,
			CountryOfOrigin:        "Japan",
			EndOfLife:              true,
			PriceBreaks: []entities.PriceBreak{
				{Qty: 100, Price: decimal.NewFromFloat(0.021)},
				{Qty: 1000, Price: decimal.NewFromFloat(0.009)},
			},
		},
	)
}
