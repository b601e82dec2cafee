package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// Criteria filters a transaction set. Start and End are inclusive calendar
// dates; zero values leave that bound open. CounterpartyID only applies to
// income rows; ResponsibleParty applies to both kinds. Empty string fields
// mean "no filter".
type Criteria struct {
	Start            time.Time
	End              time.Time
	CounterpartyID   string
	ResponsibleParty domain.Party
}

// matches reports whether the common transaction fields pass the criteria.
func (c Criteria) matches(txn domain.Transaction) bool {
	date := truncateToDate(txn.Date)
	if !c.Start.IsZero() && date.Before(truncateToDate(c.Start)) {
		return false
	}
	if !c.End.IsZero() && date.After(truncateToDate(c.End)) {
		return false
	}
	if c.ResponsibleParty != "" && txn.ResponsibleParty != c.ResponsibleParty {
		return false
	}
	return true
}

// FilterIncomes returns the income rows passing the criteria, preserving order.
func FilterIncomes(incomes []domain.IncomeTransaction, c Criteria) []domain.IncomeTransaction {
	out := make([]domain.IncomeTransaction, 0, len(incomes))
	for _, txn := range incomes {
		if !c.matches(txn.Transaction) {
			continue
		}
		if c.CounterpartyID != "" && txn.CounterpartyID != c.CounterpartyID {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// FilterExpenses returns the expense rows passing the criteria, preserving
// order. The counterparty criterion does not apply to expenses.
func FilterExpenses(expenses []domain.ExpenseTransaction, c Criteria) []domain.ExpenseTransaction {
	out := make([]domain.ExpenseTransaction, 0, len(expenses))
	for _, txn := range expenses {
		if !c.matches(txn.Transaction) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// MonthlyNet is one time bucket of the income-minus-expense series.
type MonthlyNet struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Net   decimal.Decimal `json:"net"`
}

// AggregateMonthly buckets the given (already filtered) rows by calendar
// (year, month) and emits, per bucket, the sum of income net amounts minus
// the sum of expense net amounts, ascending chronologically. Months with
// no transactions are omitted, not zero-filled.
func AggregateMonthly(incomes []domain.IncomeTransaction, expenses []domain.ExpenseTransaction, reportingCurrency string) ([]MonthlyNet, error) {
	type yearMonth struct {
		year  int
		month time.Month
	}
	buckets := make(map[yearMonth]decimal.Decimal)

	for i := range incomes {
		net, err := NetAmount(incomes[i].Transaction, reportingCurrency)
		if err != nil {
			return nil, err
		}
		key := yearMonth{incomes[i].Date.Year(), incomes[i].Date.Month()}
		buckets[key] = buckets[key].Add(net)
	}
	for i := range expenses {
		net, err := NetAmount(expenses[i].Transaction, reportingCurrency)
		if err != nil {
			return nil, err
		}
		key := yearMonth{expenses[i].Date.Year(), expenses[i].Date.Month()}
		buckets[key] = buckets[key].Sub(net)
	}

	out := make([]MonthlyNet, 0, len(buckets))
	for key, net := range buckets {
		out = append(out, MonthlyNet{Year: key.year, Month: key.month, Net: net})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

// Summary holds the aggregate totals consumed by presentation.
type Summary struct {
	// TotalIncome sums max(0, net) over the filtered income rows; rows
	// driven negative by adjustments are clamped at this aggregation
	// site, not inside the adjustment engine.
	TotalIncome decimal.Decimal `json:"totalIncome"`
	// CurrentPartyShare sums the requesting party's split output over the
	// filtered income rows.
	CurrentPartyShare decimal.Decimal `json:"currentPartyShare"`
	// PartnerShare is TotalIncome minus CurrentPartyShare. Deriving it as
	// a remainder rather than an independent sum silently absorbs any
	// split-sum discrepancy.
	PartnerShare  decimal.Decimal `json:"partnerShare"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

// Summarize computes the summary totals over already-filtered rows for the
// given current party slot.
func Summarize(incomes []domain.IncomeTransaction, expenses []domain.ExpenseTransaction, currentParty domain.Party, reportingCurrency string) (Summary, error) {
	s := Summary{
		TotalIncome:       decimal.Zero,
		CurrentPartyShare: decimal.Zero,
		PartnerShare:      decimal.Zero,
		TotalExpenses:     decimal.Zero,
	}
	for i := range incomes {
		net, err := NetAmount(incomes[i].Transaction, reportingCurrency)
		if err != nil {
			return Summary{}, err
		}
		if net.IsPositive() {
			s.TotalIncome = s.TotalIncome.Add(net)
		}
		s.CurrentPartyShare = s.CurrentPartyShare.Add(PartyShare(net, incomes[i].Split, currentParty))
	}
	s.PartnerShare = s.TotalIncome.Sub(s.CurrentPartyShare)

	for i := range expenses {
		net, err := NetAmount(expenses[i].Transaction, reportingCurrency)
		if err != nil {
			return Summary{}, err
		}
		s.TotalExpenses = s.TotalExpenses.Add(net)
	}
	return s, nil
}
