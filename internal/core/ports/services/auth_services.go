package services

import (
	"context"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade issues and verifies the signed bearer tokens that carry
// subject identity and role. The service is stateless; invalidation is
// purely by expiry.
type TokenSvcFacade interface {
	// Issue signs a token for the subject. Returns the token and its expiry.
	Issue(ctx context.Context, subjectID string, role domain.Role) (string, time.Time, error)
	// Verify validates a token and returns the encoded subject and role.
	Verify(ctx context.Context, tokenString string) (string, domain.Role, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the OAuth bridge.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchProfile resolves provider-verified profile fields for the token,
	// preferring the signed ID token and falling back to the userinfo endpoint.
	FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
