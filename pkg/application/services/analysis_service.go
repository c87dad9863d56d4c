package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/application/dto"
	"github.com/vsinha/sourcing/pkg/domain/entities"
	"github.com/vsinha/sourcing/pkg/domain/repositories"
	domainsvc "github.com/vsinha/sourcing/pkg/domain/services"
)

// AnalysisService evaluates a whole BOM against a supplier option
// repository and aggregates the results into strategies and build KPIs
type AnalysisService struct {
	evaluator *PartEvaluator
	engine    *StrategyEngine
	options   repositories.OptionRepository
}

// NewAnalysisService creates an analysis service backed by the given
// option repository
func NewAnalysisService(options repositories.OptionRepository) *AnalysisService {
	return &AnalysisService{
		evaluator: NewPartEvaluator(),
		engine:    NewStrategyEngine(),
		options:   options,
	}
}

// AnalyzeBOM evaluates every BOM line independently and in order, then
// derives the four purchasing strategies and the build KPI rollup
func (s *AnalysisService) AnalyzeBOM(
	ctx context.Context,
	lines []entities.BOMLine,
	cfg Config,
) (*dto.BuildSummary, error) {
	results := make([]dto.PartResult, 0, len(lines))
	for _, line := range lines {
		options, err := s.options.GetOptions(ctx, line.PartNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to get supplier options for %s: %w", line.PartNumber, err)
		}
		results = append(results, s.evaluator.Evaluate(line, options, cfg))
	}

	return &dto.BuildSummary{
		Results:    results,
		Strategies: s.engine.Summarize(results, cfg),
		KPI:        buildKPIs(results),
	}, nil
}

// buildKPIs aggregates build-level indicators. Cost totals only include
// valid parts, so unsourceable parts understate them; the NotFound and
// SkippedParts counts exist so reports can say so.
func buildKPIs(results []dto.PartResult) dto.KPISummary {
	kpi := dto.KPISummary{
		PartCount:           len(results),
		TotalBestCost:       decimal.Zero,
		TotalCostWithTariff: decimal.Zero,
	}

	for i := range results {
		r := &results[i]

		switch domainsvc.RiskCategory(r.RiskScore) {
		case "High":
			kpi.HighRisk++
		case "Moderate":
			kpi.ModerateRisk++
		default:
			kpi.LowRisk++
		}

		if r.Status == dto.StatusEOL || r.Status == dto.StatusDiscontinued {
			kpi.LifecycleRisk++
		}
		if r.StockAvailable == 0 {
			kpi.OutOfStock++
		}

		if !r.Valid {
			kpi.NotFound++
			kpi.SkippedParts++
			continue
		}

		if best, ok := r.BestCost(); ok {
			kpi.TotalBestCost = kpi.TotalBestCost.Add(best.Cost.TotalCost)
			kpi.TotalCostWithTariff = kpi.TotalCostWithTariff.Add(r.BestTotalWithTariff)
		}
	}

	kpi.TariffImpact = kpi.TotalCostWithTariff.Sub(kpi.TotalBestCost)
	return kpi
}
