package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/splitbooks/splitbooks_app/internal/apperrors"
	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	portsrepo "github.com/splitbooks/splitbooks_app/internal/core/ports/repositories"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
)

// counterpartyService manages the flat client registry.
type counterpartyService struct {
	repo portsrepo.DocumentRepository
}

// NewCounterpartyService creates a new CounterpartyService.
func NewCounterpartyService(repo portsrepo.DocumentRepository) portssvc.CounterpartySvcFacade {
	return &counterpartyService{repo: repo}
}

var _ portssvc.CounterpartySvcFacade = (*counterpartyService)(nil)

// CreateCounterparty registers a new client. Names are unique
// case-insensitively to keep the registry usable as a dropdown.
func (s *counterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, actor domain.Party) (*domain.Counterparty, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: counterparty name is required", apperrors.ErrValidation)
	}

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	for i := range doc.Meta.Counterparties {
		if strings.EqualFold(doc.Meta.Counterparties[i].Name, name) {
			return nil, fmt.Errorf("%w: counterparty '%s'", apperrors.ErrDuplicate, name)
		}
	}

	now := time.Now().UTC()
	cp := domain.Counterparty{
		CounterpartyID: uuid.NewString(),
		Name:           name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	payload, _ := json.Marshal(map[string]string{"counterpartyID": cp.CounterpartyID, "name": cp.Name})

	next := doc.Clone()
	next.Meta.Counterparties = append(next.Meta.Counterparties, cp)
	next.AppendChange(newChangeEntry(actor, domain.ActionCounterpartyCreated, payload))

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save ledger document: %w", err)
	}

	logger.Info("Counterparty created", slog.String("counterparty_id", cp.CounterpartyID))
	return &cp, nil
}

// ListCounterparties retrieves the full registry.
func (s *counterpartyService) ListCounterparties(ctx context.Context) ([]domain.Counterparty, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}
	return doc.Meta.Counterparties, nil
}

// DeleteCounterparty removes a client unless income rows still reference it.
func (s *counterpartyService) DeleteCounterparty(ctx context.Context, counterpartyID string, actor domain.Party) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger document: %w", err)
	}

	_, idx := doc.FindCounterparty(counterpartyID)
	if idx < 0 {
		return fmt.Errorf("%w: counterparty '%s'", apperrors.ErrNotFound, counterpartyID)
	}
	if doc.CounterpartyInUse(counterpartyID) {
		return fmt.Errorf("%w: counterparty '%s'", apperrors.ErrCounterpartyInUse, counterpartyID)
	}

	payload, _ := json.Marshal(map[string]string{"counterpartyID": counterpartyID})

	next := doc.Clone()
	next.Meta.Counterparties = append(next.Meta.Counterparties[:idx], next.Meta.Counterparties[idx+1:]...)
	next.AppendChange(newChangeEntry(actor, domain.ActionCounterpartyDeleted, payload))

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save ledger document: %w", err)
	}

	logger.Info("Counterparty deleted", slog.String("counterparty_id", counterpartyID))
	return nil
}
