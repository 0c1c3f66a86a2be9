package utils_test

import (
	"testing"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/finlearnhq/finlearn_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndValidateJWT_RoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", domain.RoleUser, testSecret, time.Hour, "finlearn-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, "finlearn-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", domain.RoleUser, testSecret, time.Hour, "finlearn-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", domain.RoleUser, testSecret, -time.Minute, "finlearn-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_Malformed(t *testing.T) {
	_, err := utils.ParseAndValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_RejectsUnexpectedSigningMethod(t *testing.T) {
	// A token signed with "none" must never validate.
	claims := utils.AuthClaims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(signed, testSecret)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_RejectsInvalidRole(t *testing.T) {
	claims := utils.AuthClaims{
		Role: domain.Role("superuser"),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(signed, testSecret)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_RejectsEmptySubject(t *testing.T) {
	token, err := utils.GenerateJWT("", domain.RoleUser, testSecret, time.Hour, "finlearn-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}
