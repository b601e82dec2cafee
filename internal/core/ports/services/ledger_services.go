package services

import (
	"context"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/dto"
)

// IncomeReaderSvc defines read operations over income transactions.
type IncomeReaderSvc interface {
	// GetIncome retrieves a single income row with derived values.
	GetIncome(ctx context.Context, transactionID string) (*dto.IncomeResponse, error)

	// ListIncomes retrieves all income rows with derived values.
	ListIncomes(ctx context.Context) ([]dto.IncomeResponse, error)
}

// IncomeWriterSvc defines mutating operations over income transactions.
// Every mutation appends a change-log entry attributed to the actor and
// replaces the persisted document wholesale.
type IncomeWriterSvc interface {
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, actor domain.Party) (*dto.IncomeResponse, error)
	UpdateIncome(ctx context.Context, transactionID string, req dto.UpdateIncomeRequest, actor domain.Party) (*dto.IncomeResponse, error)
	DeleteIncome(ctx context.Context, transactionID string, actor domain.Party) error
}

// ExpenseReaderSvc defines read operations over expense transactions.
type ExpenseReaderSvc interface {
	GetExpense(ctx context.Context, transactionID string) (*dto.ExpenseResponse, error)
	ListExpenses(ctx context.Context) ([]dto.ExpenseResponse, error)
}

// ExpenseWriterSvc defines mutating operations over expense transactions.
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.Party) (*dto.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, transactionID string, req dto.UpdateExpenseRequest, actor domain.Party) (*dto.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, transactionID string, actor domain.Party) error
}

// LedgerSvcFacade combines all transaction-related service interfaces.
type LedgerSvcFacade interface {
	IncomeReaderSvc
	IncomeWriterSvc
	ExpenseReaderSvc
	ExpenseWriterSvc
}
