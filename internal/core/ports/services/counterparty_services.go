package services

import (
	"context"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/dto"
)

// CounterpartySvcFacade manages the flat client registry referenced by
// income transactions.
type CounterpartySvcFacade interface {
	CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, actor domain.Party) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context) ([]domain.Counterparty, error)

	// DeleteCounterparty removes a client; it fails with
	// apperrors.ErrCounterpartyInUse while income rows still reference it.
	DeleteCounterparty(ctx context.Context, counterpartyID string, actor domain.Party) error
}
