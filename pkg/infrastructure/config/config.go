package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TariffEntry is one custom duty override in the config file. Entries are an
// ordered list; the first matching country substring wins.
type TariffEntry struct {
	Country string  `yaml:"country"`
	Rate    float64 `yaml:"rate"`
}

// Settings is the analysis configuration file format. Absent fields keep
// their defaults, so a partial file is valid.
type Settings struct {
	TotalUnits         *int          `yaml:"total_units"`
	BuyUpThresholdPct  *float64      `yaml:"buy_up_threshold_pct"`
	TargetLeadTimeDays *int          `yaml:"target_lead_time_days"`
	MaxPremiumPct      *float64      `yaml:"max_premium_pct"`
	CostWeight         *float64      `yaml:"cost_weight"`
	LeadWeight         *float64      `yaml:"lead_weight"`
	CustomTariffRates  []TariffEntry `yaml:"custom_tariff_rates"`
}

// Load reads an analysis settings file
func Load(filename string) (*Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.TotalUnits != nil && *s.TotalUnits <= 0 {
		return fmt.Errorf("total_units must be positive, got %d", *s.TotalUnits)
	}
	if s.BuyUpThresholdPct != nil && *s.BuyUpThresholdPct < 0 {
		return fmt.Errorf("buy_up_threshold_pct cannot be negative, got %g", *s.BuyUpThresholdPct)
	}
	if s.TargetLeadTimeDays != nil && *s.TargetLeadTimeDays < 0 {
		return fmt.Errorf("target_lead_time_days cannot be negative, got %d", *s.TargetLeadTimeDays)
	}
	if s.MaxPremiumPct != nil && *s.MaxPremiumPct < 0 {
		return fmt.Errorf("max_premium_pct cannot be negative, got %g", *s.MaxPremiumPct)
	}
	for _, entry := range s.CustomTariffRates {
		if entry.Country == "" {
			return fmt.Errorf("custom tariff entry missing country")
		}
		if entry.Rate < 0 {
			return fmt.Errorf("custom tariff rate for %s cannot be negative, got %g", entry.Country, entry.Rate)
		}
	}
	return nil
}
