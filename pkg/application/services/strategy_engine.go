package services

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/application/dto"
	"github.com/vsinha/sourcing/pkg/domain/entities"
)

// Strategy names, fixed across runs
const (
	StrategyLowestCost        = "Lowest Cost (Strict)"
	StrategyLowestCostInStock = "Lowest Cost (In Stock)"
	StrategyFastestLeadTime   = "Fastest Lead Time"
	StrategyOptimized         = "Optimized (Cost+LT)"
)

// StrategyNames lists the four strategies in presentation order
var StrategyNames = []string{
	StrategyLowestCost,
	StrategyLowestCostInStock,
	StrategyFastestLeadTime,
	StrategyOptimized,
}

// rangeEpsilon floors normalization ranges and the premium baseline so
// degenerate spreads never divide by zero
const rangeEpsilon = 1e-9

// StrategyEngine selects one supplier option per part under each of the four
// purchasing strategies and accumulates build-level totals. It holds no
// state: identical inputs produce identical summaries.
type StrategyEngine struct{}

// NewStrategyEngine creates a new strategy engine
func NewStrategyEngine() *StrategyEngine {
	return &StrategyEngine{}
}

// Summarize builds the four strategy summaries from the per-part results.
// Parts marked invalid, or with no defined-cost option, are absent from
// every strategy's part map and total; callers report skipped parts
// separately.
func (e *StrategyEngine) Summarize(results []dto.PartResult, cfg Config) map[string]dto.StrategySummary {
	summaries := make(map[string]dto.StrategySummary, len(StrategyNames))
	for _, name := range StrategyNames {
		summaries[name] = dto.StrategySummary{
			TotalCost: decimal.Zero,
			Parts:     make(map[entities.PartNumber]dto.EvaluatedOption),
		}
	}

	for i := range results {
		part := &results[i]
		if !part.Valid {
			continue
		}

		valid := validOptions(part.Options)
		if len(valid) == 0 {
			continue
		}

		strict := minByCost(valid)
		// Strict tracks the raw supplier lead time of its choice
		addChoice(summaries, StrategyLowestCost, part.PartNumber, strict, strict.Option.LeadTime)

		inStockChoice := strict
		if inStock := withSufficientStock(valid, part.QtyNeeded); len(inStock) > 0 {
			inStockChoice = minByCost(inStock)
		}
		addChoice(summaries, StrategyLowestCostInStock, part.PartNumber, inStockChoice, inStockChoice.EffectiveLead)

		fastest := minByEffectiveLeadThenCost(valid)
		addChoice(summaries, StrategyFastestLeadTime, part.PartNumber, fastest, fastest.EffectiveLead)

		optimized := e.optimizedChoice(valid, strict, fastest, part.QtyNeeded, cfg)
		addChoice(summaries, StrategyOptimized, part.PartNumber, optimized, optimized.EffectiveLead)
	}

	return summaries
}

// optimizedChoice scores the candidate pool on min-max normalized cost and
// effective lead time. The premium baseline is the strict cheapest choice
// even when that choice misses the lead-time target. An empty pool falls
// back to the fastest choice.
func (e *StrategyEngine) optimizedChoice(
	valid []dto.EvaluatedOption,
	strict, fastest dto.EvaluatedOption,
	qtyNeeded entities.Quantity,
	cfg Config,
) dto.EvaluatedOption {
	baseline := strict.Cost.TotalCost.InexactFloat64()

	var pool []dto.EvaluatedOption
	for _, ev := range valid {
		if !ev.EffectiveLead.Known || ev.EffectiveLead.Days > cfg.TargetLeadTimeDays {
			continue
		}
		premium := 0.0
		if baseline > rangeEpsilon {
			premium = (ev.Cost.TotalCost.InexactFloat64() - baseline) / baseline * 100
		}
		if premium > cfg.MaxPremiumPct {
			continue
		}
		pool = append(pool, ev)
	}

	if len(pool) == 0 {
		return fastest
	}

	minCost, maxCost := pool[0].Cost.TotalCost.InexactFloat64(), pool[0].Cost.TotalCost.InexactFloat64()
	minLead, maxLead := pool[0].EffectiveLead.Days, pool[0].EffectiveLead.Days
	for _, ev := range pool[1:] {
		c := ev.Cost.TotalCost.InexactFloat64()
		if c < minCost {
			minCost = c
		}
		if c > maxCost {
			maxCost = c
		}
		if ev.EffectiveLead.Days < minLead {
			minLead = ev.EffectiveLead.Days
		}
		if ev.EffectiveLead.Days > maxLead {
			maxLead = ev.EffectiveLead.Days
		}
	}

	costRange := maxCost - minCost
	if costRange < rangeEpsilon {
		costRange = rangeEpsilon
	}
	leadRange := float64(maxLead - minLead)
	if leadRange < rangeEpsilon {
		leadRange = rangeEpsilon
	}

	chosen := pool[0]
	bestScore := 0.0
	for i, ev := range pool {
		normCost := (ev.Cost.TotalCost.InexactFloat64() - minCost) / costRange
		normLead := float64(ev.EffectiveLead.Days-minLead) / leadRange
		score := cfg.CostWeight*normCost + cfg.LeadWeight*normLead
		if ev.Option.EndOfLife || ev.Option.Discontinued {
			score += 0.5
		}
		if ev.Option.Stock < qtyNeeded {
			score += 0.1
		}
		if i == 0 || score < bestScore {
			bestScore = score
			chosen = ev
		}
	}
	return chosen
}

// addChoice records a chosen option under a strategy and folds its cost and
// lead time into the running totals
func addChoice(
	summaries map[string]dto.StrategySummary,
	strategy string,
	pn entities.PartNumber,
	choice dto.EvaluatedOption,
	lead entities.LeadTime,
) {
	s := summaries[strategy]
	s.Parts[pn] = choice
	s.TotalCost = s.TotalCost.Add(choice.Cost.TotalCost)
	if lead.Known && lead.Days > s.MaxLeadDays {
		s.MaxLeadDays = lead.Days
	}
	summaries[strategy] = s
}

func validOptions(options []dto.EvaluatedOption) []dto.EvaluatedOption {
	var valid []dto.EvaluatedOption
	for _, ev := range options {
		if ev.Cost.Defined {
			valid = append(valid, ev)
		}
	}
	return valid
}

func withSufficientStock(options []dto.EvaluatedOption, qtyNeeded entities.Quantity) []dto.EvaluatedOption {
	var inStock []dto.EvaluatedOption
	for _, ev := range options {
		if ev.Option.Stock >= qtyNeeded {
			inStock = append(inStock, ev)
		}
	}
	return inStock
}

// minByCost returns the option with the lowest total cost, first minimum
// wins. Callers guarantee a non-empty defined-cost slice.
func minByCost(options []dto.EvaluatedOption) dto.EvaluatedOption {
	best := options[0]
	for _, ev := range options[1:] {
		if ev.Cost.TotalCost.LessThan(best.Cost.TotalCost) {
			best = ev
		}
	}
	return best
}

// minByEffectiveLeadThenCost orders by effective lead time with total cost
// as the tie-break, first minimum wins
func minByEffectiveLeadThenCost(options []dto.EvaluatedOption) dto.EvaluatedOption {
	best := options[0]
	for _, ev := range options[1:] {
		if ev.EffectiveLead.Before(best.EffectiveLead) {
			best = ev
		} else if ev.EffectiveLead.Equal(best.EffectiveLead) && ev.Cost.TotalCost.LessThan(best.Cost.TotalCost) {
			best = ev
		}
	}
	return best
}
