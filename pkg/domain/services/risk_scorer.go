package services

import (
	"math"
	"strings"

	"github.com/vsinha/sourcing/pkg/domain/entities"
)

// Risk factor weights for the overall score
const (
	weightSourcing   = 0.30
	weightStock      = 0.15
	weightLeadTime   = 0.15
	weightLifecycle  = 0.30
	weightGeographic = 0.10
)

// Risk category band thresholds
const (
	HighRiskThreshold     = 6.6
	ModerateRiskThreshold = 3.6
)

// GeoTier maps a country-name substring to a geographic risk score
type GeoTier struct {
	Country string
	Score   float64
}

// geoRiskTiers is an explicitly ordered list: the first entry whose country
// name appears in the country-of-origin string wins, so overlapping names
// ("Taiwan, Republic of China") resolve by list position
var geoRiskTiers = []GeoTier{
	{"China", 7},
	{"Russia", 9},
	{"Taiwan", 5},
	{"Malaysia", 4},
	{"Vietnam", 4},
	{"India", 5},
	{"Philippines", 4},
	{"Thailand", 4},
	{"South Korea", 3},
	{"USA", 1},
	{"United States", 1},
	{"Mexico", 2},
	{"Canada", 1},
	{"Japan", 1},
	{"Germany", 1},
	{"France", 1},
	{"UK", 1},
	{"Ireland", 1},
	{"Switzerland", 1},
	{"EU", 1},
	{"Unknown", 4},
	{"N/A", 4},
}

const defaultGeoScore = 4.0

// RiskFactors holds the five component scores behind an overall risk score
type RiskFactors struct {
	Sourcing   float64
	Stock      float64
	LeadTime   float64
	Lifecycle  float64
	Geographic float64
}

// RiskInput aggregates the sourcing signals for one part
type RiskInput struct {
	SourcingCount   int
	StockAvailable  entities.Quantity
	QtyNeeded       entities.Quantity
	LeadTime        entities.LeadTime
	LifecycleNotes  string
	CountryOfOrigin string
}

// RiskScorer computes a 0-10 multi-factor supply risk score
type RiskScorer struct{}

// NewRiskScorer creates a new risk scorer
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score computes the weighted overall risk score and its component factors.
// Pure and total: every input combination yields a score in [0,10].
func (s *RiskScorer) Score(in RiskInput) (float64, RiskFactors) {
	var f RiskFactors

	switch {
	case in.SourcingCount == 0:
		f.Sourcing = 10
	case in.SourcingCount == 1:
		f.Sourcing = 7
	case in.SourcingCount == 2:
		f.Sourcing = 4
	default:
		f.Sourcing = 0
	}

	switch {
	case in.StockAvailable < in.QtyNeeded:
		f.Stock = 8
	case float64(in.StockAvailable) < 1.5*float64(in.QtyNeeded):
		f.Stock = 4
	default:
		f.Stock = 0
	}

	switch {
	case !in.LeadTime.Known:
		f.LeadTime = 9
	case in.LeadTime.Days == 0:
		f.LeadTime = 0
	case in.LeadTime.Days > 90:
		f.LeadTime = 7
	case in.LeadTime.Days > 45:
		f.LeadTime = 4
	default:
		f.LeadTime = 1
	}

	notes := strings.ToUpper(in.LifecycleNotes)
	if strings.Contains(notes, "EOL") || strings.Contains(notes, "DISC") {
		f.Lifecycle = 10
	}

	f.Geographic = geoScore(in.CountryOfOrigin)

	overall := f.Sourcing*weightSourcing +
		f.Stock*weightStock +
		f.LeadTime*weightLeadTime +
		f.Lifecycle*weightLifecycle +
		f.Geographic*weightGeographic
	overall = math.Max(0.0, math.Min(10.0, overall))
	overall = math.Round(overall*10) / 10

	return overall, f
}

func geoScore(countryOfOrigin string) float64 {
	coo := strings.ToLower(strings.TrimSpace(countryOfOrigin))
	for _, tier := range geoRiskTiers {
		if strings.Contains(coo, strings.ToLower(tier.Country)) {
			return tier.Score
		}
	}
	return defaultGeoScore
}

// RiskCategory maps a score to its display band
func RiskCategory(score float64) string {
	switch {
	case score >= HighRiskThreshold:
		return "High"
	case score >= ModerateRiskThreshold:
		return "Moderate"
	default:
		return "Low"
	}
}
