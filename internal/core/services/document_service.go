package services

import (
	"context"
	"fmt"
	"time"

	"github.com/splitbooks/splitbooks_app/internal/apperrors"
	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/core/finance"
	portsrepo "github.com/splitbooks/splitbooks_app/internal/core/ports/repositories"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
	"github.com/splitbooks/splitbooks_app/pkg/config"
)

// documentService handles whole-document operations: export, verbatim
// import, settings, logo and the audit trail.
type documentService struct {
	repo portsrepo.DocumentRepository
	cfg  *config.Config
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(repo portsrepo.DocumentRepository, cfg *config.Config) portssvc.DocumentSvcFacade {
	return &documentService{repo: repo, cfg: cfg}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// Export returns a deep copy of the document with a timestamped filename.
func (s *documentService) Export(ctx context.Context) (*dto.ExportResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}
	return &dto.ExportResponse{
		Filename: dto.ExportFilename(time.Now().UTC()),
		Document: *doc,
	}, nil
}

// validateDocument checks an imported document before adoption: every row
// must reference a known party slot and normalize cleanly. A rejected
// document leaves the stored state untouched.
func (s *documentService) validateDocument(doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is empty", apperrors.ErrValidation)
	}
	if doc.Meta.Parties[0] == "" || doc.Meta.Parties[1] == "" {
		return fmt.Errorf("%w: both party names must be set", apperrors.ErrValidation)
	}
	if doc.Settings.DefaultPeriod != "" && !doc.Settings.DefaultPeriod.IsValid() {
		return fmt.Errorf("%w: unknown default period '%s'", apperrors.ErrValidation, doc.Settings.DefaultPeriod)
	}

	check := func(txn domain.Transaction) error {
		if !txn.ResponsibleParty.IsValid() {
			return fmt.Errorf("%w: transaction %s has unknown responsible party '%s'", apperrors.ErrValidation, txn.TransactionID, txn.ResponsibleParty)
		}
		if txn.Amount.IsNegative() {
			return fmt.Errorf("%w: transaction %s has negative amount", apperrors.ErrValidation, txn.TransactionID)
		}
		if _, err := finance.Normalize(txn.Amount, txn.CurrencyCode, txn.FxRate, s.cfg.ReportingCurrency); err != nil {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, err)
		}
		return nil
	}

	for i := range doc.IncomeTransactions {
		if err := check(doc.IncomeTransactions[i].Transaction); err != nil {
			return err
		}
		if cpID := doc.IncomeTransactions[i].CounterpartyID; cpID != "" {
			if cp, _ := doc.FindCounterparty(cpID); cp == nil {
				return fmt.Errorf("%w: transaction %s references unknown counterparty '%s'", apperrors.ErrValidation, doc.IncomeTransactions[i].TransactionID, cpID)
			}
		}
	}
	for i := range doc.ExpenseTransactions {
		if err := check(doc.ExpenseTransactions[i].Transaction); err != nil {
			return err
		}
	}
	return nil
}

// Import replaces the stored document verbatim after validation. There is
// no merge and no schema migration; the incoming document, change log
// included, becomes the new state as-is.
func (s *documentService) Import(ctx context.Context, doc *domain.Document) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateDocument(doc); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save imported document: %w", err)
	}

	logger.Info("Document imported",
		"income_rows", len(doc.IncomeTransactions),
		"expense_rows", len(doc.ExpenseTransactions),
	)
	return nil
}

// UpdateLogo stores an opaque logo payload in the document meta.
func (s *documentService) UpdateLogo(ctx context.Context, req dto.UpdateLogoRequest, actor domain.Party) error {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger document: %w", err)
	}

	next := doc.Clone()
	next.Meta.Logo = req.Logo
	next.AppendChange(newChangeEntry(actor, domain.ActionLogoUpdated, nil))

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save ledger document: %w", err)
	}
	return nil
}

// UpdateSettings changes persisted preferences.
func (s *documentService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.Party) error {
	if !req.DefaultPeriod.IsValid() {
		return fmt.Errorf("%w: unknown period '%s'", apperrors.ErrValidation, req.DefaultPeriod)
	}

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger document: %w", err)
	}

	next := doc.Clone()
	next.Settings.DefaultPeriod = req.DefaultPeriod
	next.AppendChange(newChangeEntry(actor, domain.ActionSettingsUpdated, nil))

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save ledger document: %w", err)
	}
	return nil
}

// GetChangeLog returns the audit trail, most recent first.
func (s *documentService) GetChangeLog(ctx context.Context) ([]dto.ChangeLogEntryResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}
	return dto.ToChangeLogResponse(doc.ChangeLog), nil
}
