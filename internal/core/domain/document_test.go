package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

func TestParty_Other(t *testing.T) {
	assert.Equal(t, domain.PartyB, domain.PartyA.Other())
	assert.Equal(t, domain.PartyA, domain.PartyB.Other())
}

func TestParty_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		party domain.Party
		want  bool
	}{
		{name: "party A", party: domain.PartyA, want: true},
		{name: "party B", party: domain.PartyB, want: true},
		{name: "empty", party: "", want: false},
		{name: "unknown slot", party: "PARTY_C", want: false},
		{name: "lowercase", party: "party_a", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.party.IsValid())
		})
	}
}

func TestPeriod_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		period domain.Period
		want   bool
	}{
		{name: "last 6 months", period: domain.PeriodLast6Months, want: true},
		{name: "last 12 months", period: domain.PeriodLast12Months, want: true},
		{name: "year to date", period: domain.PeriodYearToDate, want: true},
		{name: "all time", period: domain.PeriodAllTime, want: true},
		{name: "empty", period: "", want: false},
		{name: "unknown", period: "LAST_CENTURY", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.IsValid())
		})
	}
}

func TestDocument_Clone_IsDeep(t *testing.T) {
	doc := domain.NewDocument("Alice", "Bruno")
	doc.Meta.Counterparties = []domain.Counterparty{{CounterpartyID: "cp-1", Name: "Acme Corp"}}
	doc.IncomeTransactions = []domain.IncomeTransaction{{
		Transaction: domain.Transaction{
			TransactionID: "txn-1",
			Kind:          domain.Income,
			Amount:        decimal.NewFromInt(100),
			Adjustments: []domain.Adjustment{
				{AdjustmentID: "adj-1", Label: "tax", Kind: domain.AdjustmentPercent, Value: decimal.NewFromInt(-5)},
			},
		},
	}}
	doc.ChangeLog = []domain.ChangeLogEntry{{
		EntryID: "entry-1",
		Action:  domain.ActionIncomeCreated,
		Payload: json.RawMessage(`{"transactionID":"txn-1"}`),
	}}

	clone := doc.Clone()
	clone.Meta.Parties[0] = "Mallory"
	clone.Meta.Counterparties[0].Name = "Changed"
	clone.IncomeTransactions[0].Adjustments[0].Label = "changed"
	clone.ChangeLog[0].Payload[2] = 'X'
	clone.IncomeTransactions = append(clone.IncomeTransactions, domain.IncomeTransaction{})

	assert.Equal(t, "Alice", doc.Meta.Parties[0])
	assert.Equal(t, "Acme Corp", doc.Meta.Counterparties[0].Name)
	assert.Equal(t, "tax", doc.IncomeTransactions[0].Adjustments[0].Label)
	assert.Equal(t, json.RawMessage(`{"transactionID":"txn-1"}`), doc.ChangeLog[0].Payload)
	assert.Len(t, doc.IncomeTransactions, 1)
}

func TestDocument_FindAndUsage(t *testing.T) {
	doc := domain.NewDocument("Alice", "Bruno")
	doc.Meta.Counterparties = []domain.Counterparty{{CounterpartyID: "cp-1", Name: "Acme Corp"}}
	doc.IncomeTransactions = []domain.IncomeTransaction{
		{Transaction: domain.Transaction{TransactionID: "txn-1", Kind: domain.Income}, CounterpartyID: "cp-1"},
	}
	doc.ExpenseTransactions = []domain.ExpenseTransaction{
		{Transaction: domain.Transaction{TransactionID: "txn-2", Kind: domain.Expense}},
	}

	income, idx := doc.FindIncome("txn-1")
	require.NotNil(t, income)
	assert.Equal(t, 0, idx)

	missing, idx := doc.FindIncome("nope")
	assert.Nil(t, missing)
	assert.Equal(t, -1, idx)

	expense, idx := doc.FindExpense("txn-2")
	require.NotNil(t, expense)
	assert.Equal(t, 0, idx)

	cp, idx := doc.FindCounterparty("cp-1")
	require.NotNil(t, cp)
	assert.Equal(t, 0, idx)

	assert.True(t, doc.CounterpartyInUse("cp-1"))
	assert.False(t, doc.CounterpartyInUse("cp-2"))
}
