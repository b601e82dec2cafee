package dto

import (
	"time"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// LoginRequest is the PIN-gate payload: a party slot and its PIN.
type LoginRequest struct {
	Party domain.Party `json:"party" binding:"required,partyslot"`
	PIN   string       `json:"pin" binding:"required,min=4"`
}

// LoginResponse carries the issued token and the resolved identity.
type LoginResponse struct {
	Token     string       `json:"token"`
	Party     domain.Party `json:"party"`
	PartyName string       `json:"partyName"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
