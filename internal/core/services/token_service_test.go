package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/finlearnhq/finlearn_backend/internal/core/services"
	"github.com/finlearnhq/finlearn_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: expiry,
		JWTIssuer:         "finlearn-test",
	}
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig(time.Hour))
	ctx := context.Background()

	token, expiresAt, err := svc.Issue(ctx, "user-42", domain.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, role, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", subject)
	assert.Equal(t, domain.RoleUser, role)
}

func TestTokenService_AdminRoleSurvivesRoundTrip(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig(time.Hour))
	ctx := context.Background()

	token, _, err := svc.Issue(ctx, "admin-7", domain.RoleAdmin)
	require.NoError(t, err)

	subject, role, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin-7", subject)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestTokenService_ExpiredTokenRejected(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig(-time.Minute))
	ctx := context.Background()

	token, _, err := svc.Issue(ctx, "user-42", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.Verify(ctx, token)
	assert.Error(t, err)
}

func TestTokenService_TokenFromOtherSecretRejected(t *testing.T) {
	issuer := services.NewTokenService(testTokenConfig(time.Hour))
	verifier := services.NewTokenService(&config.Config{
		JWTSecret:         "a-completely-different-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finlearn-test",
	})
	ctx := context.Background()

	token, _, err := issuer.Issue(ctx, "user-42", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = verifier.Verify(ctx, token)
	assert.Error(t, err)
}

func TestTokenService_GarbageRejected(t *testing.T) {
	svc := services.NewTokenService(testTokenConfig(time.Hour))

	_, _, err := svc.Verify(context.Background(), "garbage")
	assert.Error(t, err)
}
