package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/application/dto"
	"github.com/vsinha/sourcing/pkg/domain/entities"
)

func singleBreak(price float64) []entities.PriceBreak {
	return []entities.PriceBreak{{Qty: 1, Price: decimal.NewFromFloat(price)}}
}

func TestEvaluate_NoSupplierData(t *testing.T) {
	evaluator := NewPartEvaluator()
	line := entities.BOMLine{PartNumber: "MISSING-1", QtyPerUnit: 2}

	cfg := DefaultConfig()
	cfg.TotalUnits = 50

	result := evaluator.Evaluate(line, nil, cfg)

	if result.Valid {
		t.Error("Expected invalid result for part with no supplier data")
	}
	if result.Status != dto.StatusNotFound {
		t.Errorf("Expected status %q, got %q", dto.StatusNotFound, result.Status)
	}
	if result.RiskScore != 10.0 {
		t.Errorf("Expected risk score 10.0, got %g", result.RiskScore)
	}
	if result.QtyNeeded != 100 {
		t.Errorf("Expected qty needed 100, got %d", result.QtyNeeded)
	}
	if result.CountryOfOrigin != "Unknown" {
		t.Errorf("Expected COO 'Unknown', got %q", result.CountryOfOrigin)
	}
	if result.Manufacturer != "N/A" {
		t.Errorf("Expected manufacturer fallback 'N/A', got %q", result.Manufacturer)
	}
	if _, ok := result.BestCost(); ok {
		t.Error("Expected no best-cost option")
	}
}

func TestEvaluate_QtyNeededRounding(t *testing.T) {
	evaluator := NewPartEvaluator()
	cfg := DefaultConfig()
	cfg.TotalUnits = 3

	// 2.5 per unit x 3 units = 7.5, rounds half away from zero to 8
	line := entities.BOMLine{PartNumber: "R1", QtyPerUnit: 2.5}
	result := evaluator.Evaluate(line, nil, cfg)
	if result.QtyNeeded != 8 {
		t.Errorf("Expected qty needed 8, got %d", result.QtyNeeded)
	}
}

func TestEvaluate_TwoSuppliers(t *testing.T) {
	evaluator := NewPartEvaluator()
	line := entities.BOMLine{PartNumber: "CAP-100N", Manufacturer: "Murata", QtyPerUnit: 2}

	cfg := DefaultConfig()
	cfg.TotalUnits = 50 // qty needed 100

	options := []entities.SupplierOption{
		{
			Source:                 "Mouser",
			Manufacturer:           "Murata",
			ManufacturerPartNumber: "GRM188R71C104KA01D",
			Description:            "100nF 16V X7R 0603",
			Stock:                  500,
			LeadTime:               entities.KnownLeadTime(28),
			MinOrderQty:            1,
			CountryOfOrigin:        "Taiwan",
			PriceBreaks: []entities.PriceBreak{
				{Qty: 1, Price: decimal.NewFromFloat(0.50)},
				{Qty: 100, Price: decimal.NewFromFloat(0.40)},
			},
		},
		{
			Source:                 "Nexar",
			Manufacturer:           "Murata",
			ManufacturerPartNumber: "GRM188R71C104KA01D",
			Description:            "100nF 16V X7R 0603",
			Stock:                  0,
			LeadTime:               entities.UnknownLeadTime(),
			MinOrderQty:            1,
			CountryOfOrigin:        "Unknown",
			PriceBreaks:            singleBreak(0.30),
		},
	}

	result := evaluator.Evaluate(line, options, cfg)

	if !result.Valid {
		t.Fatal("Expected valid result")
	}
	if result.QtyNeeded != 100 {
		t.Errorf("Expected qty needed 100, got %d", result.QtyNeeded)
	}
	if result.SourceCount != 2 {
		t.Errorf("Expected 2 valid sources, got %d", result.SourceCount)
	}
	if result.StockAvailable != 500 {
		t.Errorf("Expected total stock 500, got %d", result.StockAvailable)
	}
	if result.CountryOfOrigin != "Taiwan" {
		t.Errorf("Expected consolidated COO 'Taiwan', got %q", result.CountryOfOrigin)
	}
	if result.TariffRate != 0.0 {
		t.Errorf("Expected Taiwan tariff 0.0, got %g", result.TariffRate)
	}
	if result.Status != dto.StatusActive {
		t.Errorf("Expected status Active, got %q", result.Status)
	}

	// Nexar at $0.30/unit ($30 total) beats Mouser's 100-break ($40 total)
	best, ok := result.BestCost()
	if !ok {
		t.Fatal("Expected a best-cost option")
	}
	if best.Option.Source != "Nexar" {
		t.Errorf("Expected best-cost source Nexar, got %q", best.Option.Source)
	}
	if !best.Cost.TotalCost.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected best total cost 30, got %s", best.Cost.TotalCost)
	}
	if !result.BestTotalWithTariff.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected tariffed total 30, got %s", result.BestTotalWithTariff)
	}

	// Effective lead: Mouser is stocked (0), Nexar unknown with no stock
	if !result.Options[0].EffectiveLead.Equal(entities.KnownLeadTime(0)) {
		t.Errorf("Expected stocked option effective lead 0, got %v", result.Options[0].EffectiveLead)
	}
	if result.Options[1].EffectiveLead.Known {
		t.Errorf("Expected unknown effective lead, got %v", result.Options[1].EffectiveLead)
	}

	// Fastest = cheapest in-stock option (Mouser); risk uses its raw 28-day
	// lead (factor 1) with 2 sources (4) and ample stock (0), Taiwan geo (5):
	// 4*.30 + 0 + 1*.15 + 0 + 5*.10 = 1.85 -> 1.9
	if result.RiskScore != 1.9 {
		t.Errorf("Expected risk score 1.9, got %g", result.RiskScore)
	}
}

func TestEvaluate_BestCostTieBrokenByInputOrder(t *testing.T) {
	evaluator := NewPartEvaluator()
	line := entities.BOMLine{PartNumber: "R-10K", QtyPerUnit: 1}
	cfg := DefaultConfig()
	cfg.TotalUnits = 10

	options := []entities.SupplierOption{
		{Source: "First", Stock: 100, MinOrderQty: 1, LeadTime: entities.KnownLeadTime(7), PriceBreaks: singleBreak(0.10)},
		{Source: "Second", Stock: 100, MinOrderQty: 1, LeadTime: entities.KnownLeadTime(7), PriceBreaks: singleBreak(0.10)},
	}

	result := evaluator.Evaluate(line, options, cfg)
	best, _ := result.BestCost()
	if best.Option.Source != "First" {
		t.Errorf("Expected tie broken by input order (First), got %q", best.Option.Source)
	}
}

func TestEvaluate_LifecycleConsolidation(t *testing.T) {
	evaluator := NewPartEvaluator()
	cfg := DefaultConfig()
	cfg.TotalUnits = 1

	base := entities.SupplierOption{Stock: 10, MinOrderQty: 1, LeadTime: entities.KnownLeadTime(7), PriceBreaks: singleBreak(1.0)}

	t.Run("any EOL wins", func(t *testing.T) {
		disc := base
		disc.Discontinued = true
		eol := base
		eol.EndOfLife = true

		result := evaluator.Evaluate(entities.BOMLine{PartNumber: "U1", QtyPerUnit: 1},
			[]entities.SupplierOption{disc, eol}, cfg)
		if result.Status != dto.StatusEOL {
			t.Errorf("Expected status EOL, got %q", result.Status)
		}
		if result.RiskFactors.Lifecycle != 10 {
			t.Errorf("Expected lifecycle factor 10, got %g", result.RiskFactors.Lifecycle)
		}
	})

	t.Run("discontinued only", func(t *testing.T) {
		disc := base
		disc.Discontinued = true

		result := evaluator.Evaluate(entities.BOMLine{PartNumber: "U2", QtyPerUnit: 1},
			[]entities.SupplierOption{base, disc}, cfg)
		if result.Status != dto.StatusDiscontinued {
			t.Errorf("Expected status Discontinued, got %q", result.Status)
		}
	})
}

func TestEvaluate_FastestFallsBackToShortestLead(t *testing.T) {
	evaluator := NewPartEvaluator()
	line := entities.BOMLine{PartNumber: "IC-77", QtyPerUnit: 10}
	cfg := DefaultConfig()
	cfg.TotalUnits = 10 // qty needed 100, nobody stocked

	options := []entities.SupplierOption{
		{Source: "Slow", Stock: 0, MinOrderQty: 1, LeadTime: entities.KnownLeadTime(60), PriceBreaks: singleBreak(1.0)},
		{Source: "Quick", Stock: 5, MinOrderQty: 1, LeadTime: entities.KnownLeadTime(14), PriceBreaks: singleBreak(2.0)},
		{Source: "NoLead", Stock: 0, MinOrderQty: 1, LeadTime: entities.UnknownLeadTime(), PriceBreaks: singleBreak(0.5)},
	}

	result := evaluator.Evaluate(line, options, cfg)

	// Nobody covers 100 units, so the 14-day lead drives the risk model:
	// 3 sources (0), stock 5 < 100 (8), 14 days (1), active (0), unknown
	// geo (4): 0 + 8*.15 + 1*.15 + 0 + 4*.10 = 1.75 -> 1.8
	if result.RiskScore != 1.8 {
		t.Errorf("Expected risk score 1.8, got %g", result.RiskScore)
	}
	if result.Notes != "Stock Gap" {
		t.Errorf("Expected 'Stock Gap' note, got %q", result.Notes)
	}
}

func TestEvaluate_UnpricedOptionStillCountsStock(t *testing.T) {
	evaluator := NewPartEvaluator()
	line := entities.BOMLine{PartNumber: "Q-55", QtyPerUnit: 1}
	cfg := DefaultConfig()
	cfg.TotalUnits = 10

	options := []entities.SupplierOption{
		{Source: "NoPricing", Stock: 400, MinOrderQty: 1, LeadTime: entities.KnownLeadTime(7)},
		{Source: "Priced", Stock: 50, MinOrderQty: 1, LeadTime: entities.KnownLeadTime(21), PriceBreaks: singleBreak(0.25)},
	}

	result := evaluator.Evaluate(line, options, cfg)

	if result.SourceCount != 1 {
		t.Errorf("Expected 1 valid source, got %d", result.SourceCount)
	}
	if result.StockAvailable != 450 {
		t.Errorf("Expected total stock 450 across all options, got %d", result.StockAvailable)
	}
	if !result.Valid {
		t.Error("Expected valid result via the priced option")
	}
	best, _ := result.BestCost()
	if best.Option.Source != "Priced" {
		t.Errorf("Expected best-cost source Priced, got %q", best.Option.Source)
	}
}
