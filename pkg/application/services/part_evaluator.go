package services

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/application/dto"
	"github.com/vsinha/sourcing/pkg/domain/entities"
	domainsvc "github.com/vsinha/sourcing/pkg/domain/services"
)

// Placeholder values treated as "no country of origin reported"
var unknownCOOValues = map[string]bool{
	"":        true,
	"Unknown": true,
	"N/A":     true,
}

// PartEvaluator runs the full sourcing decision for one BOM line: cost
// optimization per supplier option, risk scoring, and tariff resolution
type PartEvaluator struct {
	optimizer *domainsvc.CostOptimizer
	scorer    *domainsvc.RiskScorer
	tariffs   *domainsvc.TariffResolver
}

// NewPartEvaluator creates a part evaluator with its domain services
func NewPartEvaluator() *PartEvaluator {
	return &PartEvaluator{
		optimizer: domainsvc.NewCostOptimizer(),
		scorer:    domainsvc.NewRiskScorer(),
		tariffs:   domainsvc.NewTariffResolver(),
	}
}

// Evaluate produces the PartResult for one BOM line given its standardized
// supplier options. Options are processed in input order; all tie-breaks are
// first-match-wins, so results are reproducible for identical input.
func (e *PartEvaluator) Evaluate(
	line entities.BOMLine,
	options []entities.SupplierOption,
	cfg Config,
) dto.PartResult {
	qtyNeeded := entities.Quantity(math.Round(line.QtyPerUnit * float64(cfg.TotalUnits)))

	if len(options) == 0 {
		return e.notFoundResult(line, qtyNeeded)
	}

	evaluated := make([]dto.EvaluatedOption, 0, len(options))
	for _, opt := range options {
		cost := e.optimizer.OptimalCost(qtyNeeded, opt.PriceBreaks, opt.MinOrderQty, cfg.BuyUpThresholdPct)
		evaluated = append(evaluated, dto.EvaluatedOption{
			Option:        opt,
			Cost:          cost,
			EffectiveLead: effectiveLeadTime(opt, qtyNeeded),
			Lifecycle:     opt.Lifecycle(),
		})
	}

	coo := consolidatedCOO(options)
	lifecycleNotes := consolidatedLifecycle(options)

	bestCostIdx := bestCostIndex(evaluated)
	fastestIdx := fastestIndex(evaluated, qtyNeeded)

	var totalStock entities.Quantity
	for _, opt := range options {
		totalStock += opt.Stock
	}

	validCount := 0
	for _, ev := range evaluated {
		if ev.Cost.Defined {
			validCount++
		}
	}

	fastestLead := entities.UnknownLeadTime()
	if fastestIdx >= 0 {
		fastestLead = evaluated[fastestIdx].Option.LeadTime
	}

	riskScore, riskFactors := e.scorer.Score(domainsvc.RiskInput{
		SourcingCount:   validCount,
		StockAvailable:  totalStock,
		QtyNeeded:       qtyNeeded,
		LeadTime:        fastestLead,
		LifecycleNotes:  lifecycleNotes,
		CountryOfOrigin: coo,
	})

	tariffRate := e.tariffs.Rate(coo, cfg.CustomTariffRates)

	status := dto.StatusActive
	if strings.Contains(lifecycleNotes, "EOL") {
		status = dto.StatusEOL
	} else if strings.Contains(lifecycleNotes, "DISC") {
		status = dto.StatusDiscontinued
	}

	result := dto.PartResult{
		PartNumber:      line.PartNumber,
		Manufacturer:    fallback(line.Manufacturer, "N/A"),
		ManufacturerPN:  string(line.PartNumber),
		Description:     "",
		QtyNeeded:       qtyNeeded,
		Status:          status,
		SourceCount:     validCount,
		StockAvailable:  totalStock,
		CountryOfOrigin: coo,
		TariffRate:      tariffRate,
		RiskScore:       riskScore,
		RiskFactors:     riskFactors,
		BestCostIndex:   bestCostIdx,
		Options:         evaluated,
		Valid:           bestCostIdx >= 0,
	}

	var notes []string
	if totalStock < qtyNeeded {
		notes = append(notes, "Stock Gap")
	}

	if bestCostIdx >= 0 {
		best := evaluated[bestCostIdx]
		if best.Option.Manufacturer != "" {
			result.Manufacturer = best.Option.Manufacturer
		}
		if best.Option.ManufacturerPartNumber != "" {
			result.ManufacturerPN = best.Option.ManufacturerPartNumber
		}
		result.Description = best.Option.Description
		result.BestTotalWithTariff = best.Cost.TotalCost.Mul(decimal.NewFromFloat(1.0 + tariffRate))
		if best.Cost.Note != "" {
			notes = append(notes, best.Cost.Note)
		}
	} else {
		result.Description = options[0].Description
	}

	result.Notes = strings.Join(notes, "; ")
	return result
}

// notFoundResult builds the invalid result for a part with no supplier data
func (e *PartEvaluator) notFoundResult(line entities.BOMLine, qtyNeeded entities.Quantity) dto.PartResult {
	return dto.PartResult{
		PartNumber:      line.PartNumber,
		Manufacturer:    fallback(line.Manufacturer, "N/A"),
		ManufacturerPN:  string(line.PartNumber),
		Description:     "No supplier data",
		QtyNeeded:       qtyNeeded,
		Status:          dto.StatusNotFound,
		CountryOfOrigin: "Unknown",
		RiskScore:       10.0,
		BestCostIndex:   -1,
		Notes:           "No data",
		Valid:           false,
	}
}

// effectiveLeadTime is zero when on-hand stock covers the need, the raw lead
// time otherwise, and unknown when the lead time is unknown with
// insufficient stock
func effectiveLeadTime(opt entities.SupplierOption, qtyNeeded entities.Quantity) entities.LeadTime {
	if opt.Stock >= qtyNeeded {
		return entities.KnownLeadTime(0)
	}
	return opt.LeadTime
}

// consolidatedCOO returns the first reported country of origin in
// supplier-result order
func consolidatedCOO(options []entities.SupplierOption) string {
	for _, opt := range options {
		if !unknownCOOValues[opt.CountryOfOrigin] {
			return opt.CountryOfOrigin
		}
	}
	return "Unknown"
}

// consolidatedLifecycle reports "EOL" if any option is end-of-life, else
// "DISC" if any is discontinued, else empty
func consolidatedLifecycle(options []entities.SupplierOption) string {
	notes := ""
	for _, opt := range options {
		if opt.EndOfLife {
			notes = "EOL"
		} else if opt.Discontinued && notes == "" {
			notes = "DISC"
		}
	}
	return notes
}

// bestCostIndex returns the index of the valid option with the minimum total
// cost, first minimum wins; -1 when no option has a defined cost
func bestCostIndex(evaluated []dto.EvaluatedOption) int {
	best := -1
	for i, ev := range evaluated {
		if !ev.Cost.Defined {
			continue
		}
		if best < 0 || ev.Cost.TotalCost.LessThan(evaluated[best].Cost.TotalCost) {
			best = i
		}
	}
	return best
}

// fastestIndex selects the option used for lead-time risk: among options
// with sufficient stock, the cheapest; otherwise the option with the
// shortest known lead time. Undefined costs compare as infinite.
func fastestIndex(evaluated []dto.EvaluatedOption, qtyNeeded entities.Quantity) int {
	best := -1
	for i, ev := range evaluated {
		if ev.Option.Stock < qtyNeeded {
			continue
		}
		if best < 0 || costLess(ev.Cost, evaluated[best].Cost) {
			best = i
		}
	}
	if best >= 0 {
		return best
	}

	for i, ev := range evaluated {
		if !ev.Option.LeadTime.Known {
			continue
		}
		if best < 0 || ev.Option.LeadTime.Before(evaluated[best].Option.LeadTime) {
			best = i
		}
	}
	return best
}

// costLess compares two cost decisions, treating undefined as infinite
func costLess(a, b domainsvc.CostDecision) bool {
	if !a.Defined {
		return false
	}
	if !b.Defined {
		return true
	}
	return a.TotalCost.LessThan(b.TotalCost)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
