package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitbooks/splitbooks_app/internal/apperrors"
	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/core/finance"
	portsrepo "github.com/splitbooks/splitbooks_app/internal/core/ports/repositories"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
	"github.com/splitbooks/splitbooks_app/pkg/config"
)

// ledgerService implements transaction CRUD over the single ledger
// document. Every mutation clones the current document, applies the
// change, appends an audit entry and saves the clone wholesale, so
// readers never observe a half-applied change.
type ledgerService struct {
	repo portsrepo.DocumentRepository
	cfg  *config.Config
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(repo portsrepo.DocumentRepository, cfg *config.Config) portssvc.LedgerSvcFacade {
	return &ledgerService{repo: repo, cfg: cfg}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// buildTransaction validates the shared input fields and assembles the
// domain transaction. The fxRate check goes through the normalizer so an
// unrated foreign row is rejected at write time instead of persisting a
// value that would silently normalize to zero.
func (s *ledgerService) buildTransaction(input dto.TransactionInput, kind domain.TransactionKind) (domain.Transaction, error) {
	if input.Amount.IsNegative() {
		return domain.Transaction{}, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}
	if !s.cfg.CurrencyAllowed(input.CurrencyCode) {
		return domain.Transaction{}, fmt.Errorf("%w: currency '%s' is not in the configured set", apperrors.ErrValidation, input.CurrencyCode)
	}

	date, err := time.ParseInLocation(dto.DateLayout, input.Date, time.UTC)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: invalid date '%s'", apperrors.ErrValidation, input.Date)
	}

	adjustments := make([]domain.Adjustment, len(input.Adjustments))
	for i, adj := range input.Adjustments {
		adjustments[i] = domain.Adjustment{
			AdjustmentID: uuid.NewString(),
			Label:        adj.Label,
			Kind:         domain.AdjustmentKind(adj.Kind),
			Value:        adj.Value,
		}
	}

	txn := domain.Transaction{
		Kind:         kind,
		Date:         date,
		CurrencyCode: input.CurrencyCode,
		Amount:       input.Amount,
		FxRate:       input.FxRate,
		Adjustments:  adjustments,
		Split: domain.Split{
			Mode:        domain.SplitMode(input.Split.Mode),
			PartyAShare: input.Split.PartyAShare,
			PartyBShare: input.Split.PartyBShare,
		},
		ResponsibleParty: input.ResponsibleParty,
	}

	if _, err := finance.Normalize(txn.Amount, txn.CurrencyCode, txn.FxRate, s.cfg.ReportingCurrency); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}

// compute derives the presentation values for a stored row, including the
// non-blocking split consistency warnings.
func (s *ledgerService) compute(txn domain.Transaction) (dto.TransactionComputed, error) {
	net, err := finance.NetAmount(txn, s.cfg.ReportingCurrency)
	if err != nil {
		return dto.TransactionComputed{}, err
	}
	shareA, shareB := finance.ComputeSplit(net, txn.Split)

	var warnings []string
	shareSum := txn.Split.PartyAShare.Add(txn.Split.PartyBShare)
	switch txn.Split.Mode {
	case domain.SplitPercent:
		if !shareSum.Equal(decimal.NewFromInt(100)) {
			warnings = append(warnings, fmt.Sprintf("split percentages sum to %s, not 100", shareSum))
		}
	case domain.SplitAmount:
		if !shareSum.Equal(net) {
			warnings = append(warnings, fmt.Sprintf("split amounts sum to %s, net amount is %s", shareSum, net))
		}
	}

	return dto.TransactionComputed{
		NetAmount:   net,
		PartyAShare: shareA,
		PartyBShare: shareB,
		Warnings:    warnings,
	}, nil
}

func changePayload(transactionID string) json.RawMessage {
	payload, _ := json.Marshal(map[string]string{"transactionID": transactionID})
	return payload
}

func newChangeEntry(actor domain.Party, action domain.ChangeLogAction, payload json.RawMessage) domain.ChangeLogEntry {
	return domain.ChangeLogEntry{
		EntryID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Actor:     actor,
		Action:    action,
		Payload:   payload,
	}
}

// --- Income ---

// CreateIncome validates and persists a new income row.
func (s *ledgerService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, actor domain.Party) (*dto.IncomeResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	base, err := s.buildTransaction(req.TransactionInput, domain.Income)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	if req.CounterpartyID != "" {
		if cp, _ := doc.FindCounterparty(req.CounterpartyID); cp == nil {
			return nil, fmt.Errorf("%w: counterparty '%s' not found", apperrors.ErrValidation, req.CounterpartyID)
		}
	}

	now := time.Now().UTC()
	base.TransactionID = uuid.NewString()
	base.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: actor, LastUpdatedAt: now, LastUpdatedBy: actor}

	income := domain.IncomeTransaction{
		Transaction:    base,
		CounterpartyID: req.CounterpartyID,
		InvoiceNumber:  req.InvoiceNumber,
		Notes:          req.Notes,
	}

	next := doc.Clone()
	next.IncomeTransactions = append(next.IncomeTransactions, income)
	next.AppendChange(newChangeEntry(actor, domain.ActionIncomeCreated, changePayload(income.TransactionID)))

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save ledger document: %w", err)
	}

	computed, err := s.compute(income.Transaction)
	if err != nil {
		return nil, err
	}

	logger.Info("Income created", slog.String("transaction_id", income.TransactionID))
	resp := dto.ToIncomeResponse(&income, computed)
	return &resp, nil
}

// UpdateIncome replaces an income row wholesale.
func (s *ledgerService) UpdateIncome(ctx context.Context, transactionID string, req dto.UpdateIncomeRequest, actor domain.Party) (*dto.IncomeResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	base, err := s.buildTransaction(req.TransactionInput, domain.Income)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	existing, idx := doc.FindIncome(transactionID)
	if existing == nil {
		return nil, fmt.Errorf("%w: income transaction '%s'", apperrors.ErrNotFound, transactionID)
	}

	if req.CounterpartyID != "" {
		if cp, _ := doc.FindCounterparty(req.CounterpartyID); cp == nil {
			return nil, fmt.Errorf("%w: counterparty '%s' not found", apperrors.ErrValidation, req.CounterpartyID)
		}
	}

	base.TransactionID = transactionID
	base.AuditFields = existing.AuditFields
	base.LastUpdatedAt = time.Now().UTC()
	base.LastUpdatedBy = actor

	income := domain.IncomeTransaction{
		Transaction:    base,
		CounterpartyID: req.CounterpartyID,
		InvoiceNumber:  req.InvoiceNumber,
		Notes:          req.Notes,
	}

	next := doc.Clone()
	next.IncomeTransactions[idx] = income
	next.AppendChange(newChangeEntry(actor, domain.ActionIncomeUpdated, changePayload(transactionID)))

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save ledger document: %w", err)
	}

	computed, err := s.compute(income.Transaction)
	if err != nil {
		return nil, err
	}

	logger.Info("Income updated", slog.String("transaction_id", transactionID))
	resp := dto.ToIncomeResponse(&income, computed)
	return &resp, nil
}

// DeleteIncome removes an income row.
func (s *ledgerService) DeleteIncome(ctx context.Context, transactionID string, actor domain.Party) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger document: %w", err)
	}

	_, idx := doc.FindIncome(transactionID)
	if idx < 0 {
		return fmt.Errorf("%w: income transaction '%s'", apperrors.ErrNotFound, transactionID)
	}

	next := doc.Clone()
	next.IncomeTransactions = append(next.IncomeTransactions[:idx], next.IncomeTransactions[idx+1:]...)
	next.AppendChange(newChangeEntry(actor, domain.ActionIncomeDeleted, changePayload(transactionID)))

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save ledger document: %w", err)
	}

	logger.Info("Income deleted", slog.String("transaction_id", transactionID))
	return nil
}

// GetIncome retrieves one income row with derived values.
func (s *ledgerService) GetIncome(ctx context.Context, transactionID string) (*dto.IncomeResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	income, _ := doc.FindIncome(transactionID)
	if income == nil {
		return nil, fmt.Errorf("%w: income transaction '%s'", apperrors.ErrNotFound, transactionID)
	}

	computed, err := s.compute(income.Transaction)
	if err != nil {
		return nil, err
	}
	resp := dto.ToIncomeResponse(income, computed)
	return &resp, nil
}

// ListIncomes retrieves all income rows with derived values.
func (s *ledgerService) ListIncomes(ctx context.Context) ([]dto.IncomeResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	out := make([]dto.IncomeResponse, 0, len(doc.IncomeTransactions))
	for i := range doc.IncomeTransactions {
		computed, err := s.compute(doc.IncomeTransactions[i].Transaction)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ToIncomeResponse(&doc.IncomeTransactions[i], computed))
	}
	return out, nil
}

// --- Expense ---

// CreateExpense validates and persists a new expense row.
func (s *ledgerService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.Party) (*dto.ExpenseResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	base, err := s.buildTransaction(req.TransactionInput, domain.Expense)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	now := time.Now().UTC()
	base.TransactionID = uuid.NewString()
	base.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: actor, LastUpdatedAt: now, LastUpdatedBy: actor}

	expense := domain.ExpenseTransaction{
		Transaction: base,
		Description: req.Description,
	}

	next := doc.Clone()
	next.ExpenseTransactions = append(next.ExpenseTransactions, expense)
	next.AppendChange(newChangeEntry(actor, domain.ActionExpenseCreated, changePayload(expense.TransactionID)))

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save ledger document: %w", err)
	}

	computed, err := s.compute(expense.Transaction)
	if err != nil {
		return nil, err
	}

	logger.Info("Expense created", slog.String("transaction_id", expense.TransactionID))
	resp := dto.ToExpenseResponse(&expense, computed)
	return &resp, nil
}

// UpdateExpense replaces an expense row wholesale.
func (s *ledgerService) UpdateExpense(ctx context.Context, transactionID string, req dto.UpdateExpenseRequest, actor domain.Party) (*dto.ExpenseResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	base, err := s.buildTransaction(req.TransactionInput, domain.Expense)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	existing, idx := doc.FindExpense(transactionID)
	if existing == nil {
		return nil, fmt.Errorf("%w: expense transaction '%s'", apperrors.ErrNotFound, transactionID)
	}

	base.TransactionID = transactionID
	base.AuditFields = existing.AuditFields
	base.LastUpdatedAt = time.Now().UTC()
	base.LastUpdatedBy = actor

	expense := domain.ExpenseTransaction{
		Transaction: base,
		Description: req.Description,
	}

	next := doc.Clone()
	next.ExpenseTransactions[idx] = expense
	next.AppendChange(newChangeEntry(actor, domain.ActionExpenseUpdated, changePayload(transactionID)))

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save ledger document: %w", err)
	}

	computed, err := s.compute(expense.Transaction)
	if err != nil {
		return nil, err
	}

	logger.Info("Expense updated", slog.String("transaction_id", transactionID))
	resp := dto.ToExpenseResponse(&expense, computed)
	return &resp, nil
}

// DeleteExpense removes an expense row.
func (s *ledgerService) DeleteExpense(ctx context.Context, transactionID string, actor domain.Party) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger document: %w", err)
	}

	_, idx := doc.FindExpense(transactionID)
	if idx < 0 {
		return fmt.Errorf("%w: expense transaction '%s'", apperrors.ErrNotFound, transactionID)
	}

	next := doc.Clone()
	next.ExpenseTransactions = append(next.ExpenseTransactions[:idx], next.ExpenseTransactions[idx+1:]...)
	next.AppendChange(newChangeEntry(actor, domain.ActionExpenseDeleted, changePayload(transactionID)))

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save ledger document: %w", err)
	}

	logger.Info("Expense deleted", slog.String("transaction_id", transactionID))
	return nil
}

// GetExpense retrieves one expense row with derived values.
func (s *ledgerService) GetExpense(ctx context.Context, transactionID string) (*dto.ExpenseResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	expense, _ := doc.FindExpense(transactionID)
	if expense == nil {
		return nil, fmt.Errorf("%w: expense transaction '%s'", apperrors.ErrNotFound, transactionID)
	}

	computed, err := s.compute(expense.Transaction)
	if err != nil {
		return nil, err
	}
	resp := dto.ToExpenseResponse(expense, computed)
	return &resp, nil
}

// ListExpenses retrieves all expense rows with derived values.
func (s *ledgerService) ListExpenses(ctx context.Context) ([]dto.ExpenseResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	out := make([]dto.ExpenseResponse, 0, len(doc.ExpenseTransactions))
	for i := range doc.ExpenseTransactions {
		computed, err := s.compute(doc.ExpenseTransactions[i].Transaction)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ToExpenseResponse(&doc.ExpenseTransactions[i], computed))
	}
	return out, nil
}
