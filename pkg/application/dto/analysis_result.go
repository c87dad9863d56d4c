package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/domain/entities"
	"github.com/vsinha/sourcing/pkg/domain/services"
)

// Part status labels surfaced to reporting layers
const (
	StatusActive       = "Active"
	StatusEOL          = "EOL"
	StatusDiscontinued = "Discontinued"
	StatusNotFound     = "Not Found"
)

// EvaluatedOption is a SupplierOption enriched with its cost decision and
// effective lead time for one analysis run. EffectiveLead is zero when
// on-hand stock covers the need, the raw lead time otherwise, and unknown
// (infinite) when the lead time is unknown and stock is insufficient.
type EvaluatedOption struct {
	Option        entities.SupplierOption
	Cost          services.CostDecision
	EffectiveLead entities.LeadTime
	Lifecycle     entities.LifecycleStatus
}

// PartResult is the per-BOM-line output of part evaluation. Valid=false
// means no option produced a defined total cost; such parts carry a fixed
// risk score of 10.0 and are skipped by the strategy engine.
type PartResult struct {
	PartNumber          entities.PartNumber
	Manufacturer        string
	ManufacturerPN      string
	Description         string
	QtyNeeded           entities.Quantity
	Status              string
	SourceCount         int
	StockAvailable      entities.Quantity
	CountryOfOrigin     string
	TariffRate          float64
	RiskScore           float64
	RiskFactors         services.RiskFactors
	BestCostIndex       int // index into Options, -1 when no valid option
	BestTotalWithTariff decimal.Decimal
	Notes               string
	Options             []EvaluatedOption
	Valid               bool
}

// BestCost returns the minimum-total-cost option, if any option was valid
func (r *PartResult) BestCost() (EvaluatedOption, bool) {
	if r.BestCostIndex < 0 || r.BestCostIndex >= len(r.Options) {
		return EvaluatedOption{}, false
	}
	return r.Options[r.BestCostIndex], true
}

// StrategySummary is the build-level outcome of one purchasing strategy:
// the chosen option per part, the summed total cost of those choices, and
// the largest finite chosen lead time
type StrategySummary struct {
	TotalCost   decimal.Decimal
	MaxLeadDays int
	Parts       map[entities.PartNumber]EvaluatedOption
}

// KPISummary aggregates build-level indicators across all part results
type KPISummary struct {
	PartCount           int
	SkippedParts        int
	TotalBestCost       decimal.Decimal
	TotalCostWithTariff decimal.Decimal
	TariffImpact        decimal.Decimal
	HighRisk            int
	ModerateRisk        int
	LowRisk             int
	LifecycleRisk       int
	OutOfStock          int
	NotFound            int
}

// BuildSummary is the complete output of one BOM analysis run
type BuildSummary struct {
	Results    []PartResult
	Strategies map[string]StrategySummary
	KPI        KPISummary
}
