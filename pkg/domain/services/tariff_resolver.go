package services

import "strings"

// Default duty rates applied when no custom rate matches
const (
	chinaTariffRate    = 0.25
	taiwanTariffRate   = 0.0
	baselineTariffRate = 0.035 // WTO baseline
)

// CustomTariff is one caller-supplied (country substring, rate) override.
// Overrides are an ordered list: the first entry whose country name appears
// in the country-of-origin string wins.
type CustomTariff struct {
	Country string
	Rate    float64
}

// TariffResolver maps a country of origin to an import duty rate
type TariffResolver struct{}

// NewTariffResolver creates a new tariff resolver
func NewTariffResolver() *TariffResolver {
	return &TariffResolver{}
}

// Rate resolves the duty rate for a country of origin. Custom overrides are
// consulted first in list order; otherwise fixed defaults apply.
func (r *TariffResolver) Rate(countryOfOrigin string, custom []CustomTariff) float64 {
	coo := strings.ToLower(strings.TrimSpace(countryOfOrigin))

	for _, c := range custom {
		if c.Country != "" && strings.Contains(coo, strings.ToLower(c.Country)) {
			return c.Rate
		}
	}

	if strings.Contains(coo, "china") || coo == "cn" {
		return chinaTariffRate
	}
	if strings.Contains(coo, "taiwan") || coo == "tw" {
		return taiwanTariffRate
	}
	return baselineTariffRate
}
