package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_NoSessionDeniesWithRedirect(t *testing.T) {
	c := New("http://localhost:8080", NewMemoryStore())

	decision := c.Guard(RoleUser)
	assert.False(t, decision.Authorized)
	assert.Equal(t, "/user/login", decision.RedirectTo)
	assert.True(t, decision.ReplaceHistory)
}

func TestGuard_AdminRouteRedirectsToAdminLogin(t *testing.T) {
	c := New("http://localhost:8080", NewMemoryStore())

	decision := c.Guard(RoleAdmin)
	assert.False(t, decision.Authorized)
	assert.Equal(t, "/admin/login", decision.RedirectTo)
}

func TestGuard_RoleMismatchDenied(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Save(Session{Token: "t", Role: RoleUser})
	c := New("http://localhost:8080", store)

	decision := c.Guard(RoleAdmin)
	assert.False(t, decision.Authorized)
	assert.Equal(t, "/admin/login", decision.RedirectTo)
}

func TestGuard_MatchingSessionAuthorized(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Save(Session{Token: "t", Role: RoleAdmin})
	c := New("http://localhost:8080", store)

	decision := c.Guard(RoleAdmin)
	assert.True(t, decision.Authorized)
	assert.Empty(t, decision.RedirectTo)
}

func TestGuard_TokenlessSessionDenied(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Save(Session{Role: RoleUser})
	c := New("http://localhost:8080", store)

	assert.False(t, c.Guard(RoleUser).Authorized)
}
