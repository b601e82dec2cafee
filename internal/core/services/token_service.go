package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/splitbooks/splitbooks_app/internal/apperrors"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
	"github.com/splitbooks/splitbooks_app/internal/utils"
	"github.com/splitbooks/splitbooks_app/pkg/config"
)

// tokenService is the PIN gate: it checks a party's PIN against the
// configured bcrypt hash and issues a JWT whose subject is the party slot.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new TokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// Login verifies the PIN and returns a signed token. Failed attempts get
// the same error regardless of whether the slot has a hash configured, so
// the response does not leak setup state.
func (s *tokenService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash := s.cfg.PINHash(req.Party)
	if hash == "" || !utils.CheckPINHash(req.PIN, hash) {
		logger.Warn("PIN check failed", slog.String("party", string(req.Party)))
		return nil, fmt.Errorf("%w: invalid party or PIN", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   string(req.Party),
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("Party logged in", slog.String("party", string(req.Party)))
	return &dto.LoginResponse{
		Token:     token,
		Party:     req.Party,
		PartyName: s.cfg.PartyName(req.Party),
		ExpiresAt: expiresAt,
	}, nil
}
