package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// DateLayout is the wire format for calendar dates (no time component).
const DateLayout = "2006-01-02"

// AdjustmentInput is one ordered adjustment on a create/update request.
type AdjustmentInput struct {
	Label string          `json:"label" binding:"required"`
	Kind  string          `json:"kind" binding:"required,oneof=FIXED PERCENT"`
	Value decimal.Decimal `json:"value"`
}

// SplitInput describes the requested division of the net amount.
type SplitInput struct {
	Mode        string          `json:"mode" binding:"required,oneof=AMOUNT PERCENT"`
	PartyAShare decimal.Decimal `json:"partyAShare"`
	PartyBShare decimal.Decimal `json:"partyBShare"`
}

// TransactionInput holds the fields shared by income and expense writes.
type TransactionInput struct {
	Date             string            `json:"date" binding:"required,datetime=2006-01-02"`
	CurrencyCode     string            `json:"currencyCode" binding:"required,len=3,uppercase"`
	Amount           decimal.Decimal   `json:"amount" binding:"required"`
	FxRate           decimal.Decimal   `json:"fxRate"`
	Adjustments      []AdjustmentInput `json:"adjustments" binding:"omitempty,dive"`
	Split            SplitInput        `json:"split" binding:"required"`
	ResponsibleParty domain.Party      `json:"responsibleParty" binding:"required,partyslot"`
}

// CreateIncomeRequest defines the payload for creating an income row.
type CreateIncomeRequest struct {
	TransactionInput
	CounterpartyID string `json:"counterpartyID" binding:"omitempty,uuid"`
	InvoiceNumber  string `json:"invoiceNumber"`
	Notes          string `json:"notes"`
}

// UpdateIncomeRequest replaces an income row wholesale.
type UpdateIncomeRequest = CreateIncomeRequest

// CreateExpenseRequest defines the payload for creating an expense row.
type CreateExpenseRequest struct {
	TransactionInput
	Description string `json:"description" binding:"required"`
}

// UpdateExpenseRequest replaces an expense row wholesale.
type UpdateExpenseRequest = CreateExpenseRequest

// TransactionComputed carries the derived values presentation needs
// alongside a stored row.
type TransactionComputed struct {
	NetAmount   decimal.Decimal `json:"netAmount"`
	PartyAShare decimal.Decimal `json:"partyAShare"`
	PartyBShare decimal.Decimal `json:"partyBShare"`
	// Warnings flags non-blocking inconsistencies, e.g. percent shares
	// not summing to 100. They never prevent a write.
	Warnings []string `json:"warnings,omitempty"`
}

// IncomeResponse is the API shape of an income row plus derived values.
type IncomeResponse struct {
	TransactionID    string             `json:"transactionID"`
	Date             string             `json:"date"`
	CurrencyCode     string             `json:"currencyCode"`
	Amount           decimal.Decimal    `json:"amount"`
	FxRate           decimal.Decimal    `json:"fxRate"`
	Adjustments      []domain.Adjustment `json:"adjustments"`
	Split            domain.Split       `json:"split"`
	ResponsibleParty domain.Party       `json:"responsibleParty"`
	CounterpartyID   string             `json:"counterpartyID,omitempty"`
	InvoiceNumber    string             `json:"invoiceNumber,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Computed         TransactionComputed `json:"computed"`
	CreatedAt        time.Time          `json:"createdAt"`
	LastUpdatedAt    time.Time          `json:"lastUpdatedAt"`
}

// ExpenseResponse is the API shape of an expense row plus derived values.
type ExpenseResponse struct {
	TransactionID    string             `json:"transactionID"`
	Date             string             `json:"date"`
	CurrencyCode     string             `json:"currencyCode"`
	Amount           decimal.Decimal    `json:"amount"`
	FxRate           decimal.Decimal    `json:"fxRate"`
	Adjustments      []domain.Adjustment `json:"adjustments"`
	Split            domain.Split       `json:"split"`
	ResponsibleParty domain.Party       `json:"responsibleParty"`
	Description      string             `json:"description"`
	Computed         TransactionComputed `json:"computed"`
	CreatedAt        time.Time          `json:"createdAt"`
	LastUpdatedAt    time.Time          `json:"lastUpdatedAt"`
}

// ToIncomeResponse converts a domain income row and its derived values.
func ToIncomeResponse(txn *domain.IncomeTransaction, computed TransactionComputed) IncomeResponse {
	return IncomeResponse{
		TransactionID:    txn.TransactionID,
		Date:             txn.Date.Format(DateLayout),
		CurrencyCode:     txn.CurrencyCode,
		Amount:           txn.Amount,
		FxRate:           txn.FxRate,
		Adjustments:      txn.Adjustments,
		Split:            txn.Split,
		ResponsibleParty: txn.ResponsibleParty,
		CounterpartyID:   txn.CounterpartyID,
		InvoiceNumber:    txn.InvoiceNumber,
		Notes:            txn.Notes,
		Computed:         computed,
		CreatedAt:        txn.CreatedAt,
		LastUpdatedAt:    txn.LastUpdatedAt,
	}
}

// ToExpenseResponse converts a domain expense row and its derived values.
func ToExpenseResponse(txn *domain.ExpenseTransaction, computed TransactionComputed) ExpenseResponse {
	return ExpenseResponse{
		TransactionID:    txn.TransactionID,
		Date:             txn.Date.Format(DateLayout),
		CurrencyCode:     txn.CurrencyCode,
		Amount:           txn.Amount,
		FxRate:           txn.FxRate,
		Adjustments:      txn.Adjustments,
		Split:            txn.Split,
		ResponsibleParty: txn.ResponsibleParty,
		Description:      txn.Description,
		Computed:         computed,
		CreatedAt:        txn.CreatedAt,
		LastUpdatedAt:    txn.LastUpdatedAt,
	}
}
