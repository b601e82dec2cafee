package domain

import "github.com/shopspring/decimal"

// SplitMode selects how a net amount is divided between the two parties.
type SplitMode string

const (
	// SplitAmount takes both shares verbatim as reporting-currency amounts.
	// The net amount is not consulted, which allows manual overrides; the
	// shares are not required to sum to the net.
	SplitAmount SplitMode = "AMOUNT"
	// SplitPercent takes both shares as percentages of the net amount,
	// applied independently. They are not required to sum to 100.
	SplitPercent SplitMode = "PERCENT"
)

// Split describes how a transaction's net amount is divided between the
// two parties. Missing share values are treated as zero, never as errors.
type Split struct {
	Mode        SplitMode       `json:"mode"`
	PartyAShare decimal.Decimal `json:"partyAShare"`
	PartyBShare decimal.Decimal `json:"partyBShare"`
}
