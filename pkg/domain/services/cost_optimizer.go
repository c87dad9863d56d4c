package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/sourcing/pkg/domain/entities"
)

// CostDecision is the outcome of price-break optimization for one supplier
// option. Defined=false means no usable price could be determined; Note
// explains why, or describes any MOQ/buy-up adjustment that was applied.
type CostDecision struct {
	UnitPrice decimal.Decimal
	TotalCost decimal.Decimal
	OrderQty  entities.Quantity
	Note      string
	Defined   bool
}

// CostOptimizer computes the economically best order quantity and price for
// a required quantity against a supplier's price-break ladder
type CostOptimizer struct{}

// NewCostOptimizer creates a new cost optimizer
func NewCostOptimizer() *CostOptimizer {
	return &CostOptimizer{}
}

// OptimalCost selects the best price break for qtyNeeded units, respecting
// the supplier MOQ and considering buy-ups to larger breaks. A buy-up
// replaces the current choice when its total cost is more than
// buyUpThresholdPct percent cheaper, or when it buys strictly more units for
// a total within buyUpThresholdPct percent of the current best.
//
// The function is total: invalid input produces a CostDecision with
// Defined=false and an explanatory note, never an error.
func (o *CostOptimizer) OptimalCost(
	qtyNeeded entities.Quantity,
	priceBreaks []entities.PriceBreak,
	minOrderQty entities.Quantity,
	buyUpThresholdPct float64,
) CostDecision {
	if qtyNeeded <= 0 {
		return CostDecision{OrderQty: qtyNeeded, Note: "Invalid Qty Needed"}
	}

	validBreaks := make([]entities.PriceBreak, 0, len(priceBreaks))
	for _, pb := range priceBreaks {
		if pb.Qty > 0 && pb.Price.Sign() >= 0 {
			validBreaks = append(validBreaks, pb)
		}
	}
	if len(validBreaks) == 0 {
		return CostDecision{OrderQty: qtyNeeded, Note: "No Valid Price Breaks"}
	}

	sort.SliceStable(validBreaks, func(i, j int) bool {
		return validBreaks[i].Qty < validBreaks[j].Qty
	})

	if minOrderQty < 1 {
		minOrderQty = 1
	}

	baseOrderQty := qtyNeeded
	if minOrderQty > baseOrderQty {
		baseOrderQty = minOrderQty
	}

	// Applicable break = highest break whose quantity does not exceed the
	// base order quantity
	var applicable *entities.PriceBreak
	for i := range validBreaks {
		if baseOrderQty >= validBreaks[i].Qty {
			applicable = &validBreaks[i]
		} else {
			break
		}
	}

	note := ""
	if applicable == nil {
		// Below the smallest break: order quantity rises to meet it
		applicable = &validBreaks[0]
		if applicable.Qty > baseOrderQty {
			baseOrderQty = applicable.Qty
		}
		note = fmt.Sprintf("MOQ adjusted to first break (%d). ", baseOrderQty)
	}

	bestUnitPrice := applicable.Price
	bestTotalCost := applicable.Price.Mul(decimal.NewFromInt(int64(baseOrderQty)))
	orderQty := baseOrderQty

	lowerFactor := decimal.NewFromFloat(1.0 - buyUpThresholdPct/100.0)
	upperFactor := decimal.NewFromFloat(1.0 + buyUpThresholdPct/100.0)

	// Buy-up scan: each qualifying larger break replaces the best-so-far,
	// so the final choice is the last winner in ascending-quantity order
	for _, pb := range validBreaks {
		if pb.Qty < baseOrderQty {
			continue
		}
		totalAtBreak := pb.Price.Mul(decimal.NewFromInt(int64(pb.Qty)))
		if totalAtBreak.LessThan(bestTotalCost.Mul(lowerFactor)) {
			bestTotalCost = totalAtBreak
			bestUnitPrice = pb.Price
			orderQty = pb.Qty
			note = fmt.Sprintf("Price break @ %d lower total cost. ", pb.Qty)
		} else if orderQty < pb.Qty && totalAtBreak.LessThanOrEqual(bestTotalCost.Mul(upperFactor)) {
			bestTotalCost = totalAtBreak
			bestUnitPrice = pb.Price
			orderQty = pb.Qty
			note = fmt.Sprintf("Bought up to %d for similar total cost. ", pb.Qty)
		}
	}

	return CostDecision{
		UnitPrice: bestUnitPrice,
		TotalCost: bestTotalCost,
		OrderQty:  orderQty,
		Note:      strings.TrimSpace(note),
		Defined:   true,
	}
}
