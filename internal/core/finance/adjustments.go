package finance

import (
	"github.com/shopspring/decimal"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

var oneHundred = decimal.NewFromInt(100)

// ApplyAdjustments folds the ordered adjustment list over the base amount.
// Percent adjustments scale the running total (acc *= 1 + value/100),
// fixed adjustments add to it. Order is the stored order and is never
// re-sorted: percent adjustments compound on whatever precedes them.
//
// No lower bound is enforced; the net may go negative (a discount larger
// than the base). Aggregates that assume non-negativity clamp at their
// own site, not here.
func ApplyAdjustments(base decimal.Decimal, adjustments []domain.Adjustment) decimal.Decimal {
	acc := base
	for _, adj := range adjustments {
		switch adj.Kind {
		case domain.AdjustmentPercent:
			acc = acc.Mul(decimal.NewFromInt(1).Add(adj.Value.Div(oneHundred)))
		case domain.AdjustmentFixed:
			acc = acc.Add(adj.Value)
		}
	}
	return acc
}
