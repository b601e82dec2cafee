package services

import (
	"context"

	"github.com/splitbooks/splitbooks_app/internal/dto"
)

// TokenSvcFacade is the PIN gate: it verifies a party's PIN and issues a
// token whose subject is the party slot, fixing the "current user" used
// for share attribution.
type TokenSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
