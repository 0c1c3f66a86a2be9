package services

import (
	"context"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/platform/config"
	"github.com/finlearnhq/finlearn_backend/internal/utils"
)

// tokenService implements TokenSvcFacade. It is stateless; all state lives
// in the signed token itself.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// Issue signs a token encoding the subject and role, expiring after the
// configured duration (7 days by default).
func (s *tokenService) Issue(ctx context.Context, subjectID string, role domain.Role) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	token, err := utils.GenerateJWT(subjectID, role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

// Verify validates the token and returns the encoded subject and role.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (string, domain.Role, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Role, nil
}
