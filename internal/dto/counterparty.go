package dto

import (
	"time"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// CreateCounterpartyRequest defines the data needed to register a client.
type CreateCounterpartyRequest struct {
	Name string `json:"name" binding:"required"`
}

// CounterpartyResponse defines the data returned for a counterparty.
type CounterpartyResponse struct {
	CounterpartyID string    `json:"counterpartyID"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToCounterpartyResponse converts a domain.Counterparty to its DTO.
func ToCounterpartyResponse(cp *domain.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		CounterpartyID: cp.CounterpartyID,
		Name:           cp.Name,
		CreatedAt:      cp.CreatedAt,
	}
}

// ToListCounterpartyResponse converts a slice of counterparties.
func ToListCounterpartyResponse(cps []domain.Counterparty) []CounterpartyResponse {
	out := make([]CounterpartyResponse, len(cps))
	for i := range cps {
		out[i] = ToCounterpartyResponse(&cps[i])
	}
	return out
}
