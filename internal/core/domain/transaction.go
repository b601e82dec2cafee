package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a row is income or a shared expense.
type TransactionKind string

const (
	Income  TransactionKind = "INCOME"
	Expense TransactionKind = "EXPENSE"
)

// Transaction holds the fields common to income and expense rows.
// Amount is expressed in CurrencyCode; FxRate is the number of units of
// CurrencyCode per one unit of the reporting currency and is required to be
// positive whenever CurrencyCode differs from the reporting currency.
type Transaction struct {
	TransactionID    string          `json:"transactionID"` // Primary Key (UUID)
	Kind             TransactionKind `json:"kind"`
	Date             time.Time       `json:"date"` // Calendar date; time component ignored
	CurrencyCode     string          `json:"currencyCode"`
	Amount           decimal.Decimal `json:"amount"` // Non-negative, in CurrencyCode
	FxRate           decimal.Decimal `json:"fxRate"`
	Adjustments      []Adjustment    `json:"adjustments"` // Applied in stored order
	Split            Split           `json:"split"`
	ResponsibleParty Party           `json:"responsibleParty"` // Creator (income) or payer (expense)
	AuditFields
}

// IncomeTransaction is an invoice collected by one of the parties.
type IncomeTransaction struct {
	Transaction
	CounterpartyID string `json:"counterpartyID"` // FK -> Counterparty.CounterpartyID
	InvoiceNumber  string `json:"invoiceNumber"`
	Notes          string `json:"notes"`
}

// ExpenseTransaction is a shared expense paid upfront by one of the parties.
type ExpenseTransaction struct {
	Transaction
	Description string `json:"description"`
}

// Counterparty is a client referenced by income transactions.
type Counterparty struct {
	CounterpartyID string `json:"counterpartyID"` // Primary Key (UUID)
	Name           string `json:"name"`
	AuditFields
}
