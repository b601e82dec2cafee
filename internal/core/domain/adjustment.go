package domain

import "github.com/shopspring/decimal"

// AdjustmentKind distinguishes flat-amount adjustments from percentage ones.
type AdjustmentKind string

const (
	// AdjustmentFixed adds a signed amount in the reporting currency.
	AdjustmentFixed AdjustmentKind = "FIXED"
	// AdjustmentPercent scales the running total by a signed percentage
	// (e.g. -3 reduces the running total by 3%).
	AdjustmentPercent AdjustmentKind = "PERCENT"
)

// Adjustment is a single tax, discount or fee applied to a transaction.
// Adjustments apply in stored order; percent adjustments compound on the
// running total, so reordering changes the result.
type Adjustment struct {
	AdjustmentID string          `json:"adjustmentID"`
	Label        string          `json:"label"`
	Kind         AdjustmentKind  `json:"kind"`
	Value        decimal.Decimal `json:"value"`
}
