package services

import (
	domainsvc "github.com/vsinha/sourcing/pkg/domain/services"
)

// Default analysis parameters
const (
	DefaultTotalUnits         = 100
	DefaultBuyUpThresholdPct  = 1.0
	DefaultTargetLeadTimeDays = 56
	DefaultMaxPremiumPct      = 15.0
	DefaultCostWeight         = 0.5
	DefaultLeadWeight         = 0.5
)

// Config holds the tunable parameters for a BOM analysis run
type Config struct {
	// TotalUnits is the number of build units the BOM will be produced for
	TotalUnits int
	// BuyUpThresholdPct controls when a larger price break replaces the
	// base choice (see CostOptimizer)
	BuyUpThresholdPct float64
	// TargetLeadTimeDays caps acceptable effective lead time in the
	// Optimized strategy
	TargetLeadTimeDays int
	// MaxPremiumPct caps the cost premium over the strict cheapest choice
	// in the Optimized strategy
	MaxPremiumPct float64
	// CostWeight and LeadWeight blend normalized cost and lead time in the
	// Optimized strategy score
	CostWeight float64
	LeadWeight float64
	// CustomTariffRates overrides the default duty rates, first match wins
	CustomTariffRates []domainsvc.CustomTariff
}

// DefaultConfig returns the analysis configuration with all defaults applied
func DefaultConfig() Config {
	return Config{
		TotalUnits:         DefaultTotalUnits,
		BuyUpThresholdPct:  DefaultBuyUpThresholdPct,
		TargetLeadTimeDays: DefaultTargetLeadTimeDays,
		MaxPremiumPct:      DefaultMaxPremiumPct,
		CostWeight:         DefaultCostWeight,
		LeadWeight:         DefaultLeadWeight,
	}
}
