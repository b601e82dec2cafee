package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/core/finance"
)

// ReportQuery selects the transaction subset feeding a report. Either a
// period preset or an explicit from/to pair may be given; explicit bounds
// win over the preset. Empty counterparty/responsible-party fields mean
// "no filter".
type ReportQuery struct {
	Period           string `form:"period" binding:"omitempty,oneof=LAST_6_MONTHS LAST_12_MONTHS YEAR_TO_DATE ALL_TIME"`
	From             string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To               string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	CounterpartyID   string `form:"counterpartyID" binding:"omitempty,uuid"`
	ResponsibleParty string `form:"responsibleParty" binding:"omitempty,oneof=PARTY_A PARTY_B"`
}

// SummaryResponse is the aggregate view for the current party.
type SummaryResponse struct {
	From              string          `json:"from,omitempty"`
	To                string          `json:"to,omitempty"`
	Party             domain.Party    `json:"party"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	CurrentPartyShare decimal.Decimal `json:"currentPartyShare"`
	PartnerShare      decimal.Decimal `json:"partnerShare"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	DebtBalance       decimal.Decimal `json:"debtBalance"`
}

// MonthlyPoint is one bucket of the time-series chart.
type MonthlyPoint struct {
	YearMonth string          `json:"yearMonth"` // "2026-03"
	Net       decimal.Decimal `json:"net"`
}

// MonthlySeriesResponse is the chart feed: ascending, gaps omitted.
type MonthlySeriesResponse struct {
	Points []MonthlyPoint `json:"points"`
}

// ToMonthlySeriesResponse converts kernel buckets to the wire shape.
func ToMonthlySeriesResponse(series []finance.MonthlyNet) MonthlySeriesResponse {
	points := make([]MonthlyPoint, len(series))
	for i, bucket := range series {
		points[i] = MonthlyPoint{
			YearMonth: time.Date(bucket.Year, bucket.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
			Net:       bucket.Net,
		}
	}
	return MonthlySeriesResponse{Points: points}
}

// DebtBalanceResponse reports the derived running balance. Positive balance
// means Party B owes Party A; Direction spells the sign out for display.
type DebtBalanceResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	Direction string          `json:"direction"` // PARTY_B_OWES_PARTY_A | PARTY_A_OWES_PARTY_B | SETTLED
	Amount    decimal.Decimal `json:"amount"`    // Absolute value of Balance
}

// ToDebtBalanceResponse derives the display fields from a signed balance.
func ToDebtBalanceResponse(balance decimal.Decimal) DebtBalanceResponse {
	direction := "SETTLED"
	if balance.IsPositive() {
		direction = "PARTY_B_OWES_PARTY_A"
	} else if balance.IsNegative() {
		direction = "PARTY_A_OWES_PARTY_B"
	}
	return DebtBalanceResponse{Balance: balance, Direction: direction, Amount: balance.Abs()}
}
