package finance

import (
	"github.com/shopspring/decimal"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// ComputeSplit divides a net amount between the two parties.
//
// In amount mode the stored shares are returned verbatim and net is not
// consulted; this deliberately allows manual overrides independent of the
// computed net, and the shares need not sum to it. In percent mode each
// share is net*share/100, applied independently; the percentages need not
// sum to 100. Neither property is validated here — a reporting layer may
// warn, the kernel never errors.
func ComputeSplit(net decimal.Decimal, split domain.Split) (partyA, partyB decimal.Decimal) {
	switch split.Mode {
	case domain.SplitAmount:
		return split.PartyAShare, split.PartyBShare
	case domain.SplitPercent:
		return net.Mul(split.PartyAShare).Div(oneHundred), net.Mul(split.PartyBShare).Div(oneHundred)
	default:
		return decimal.Zero, decimal.Zero
	}
}

// PartyShare returns the given slot's share of the net amount.
func PartyShare(net decimal.Decimal, split domain.Split, party domain.Party) decimal.Decimal {
	shareA, shareB := ComputeSplit(net, split)
	if party == domain.PartyA {
		return shareA
	}
	return shareB
}
