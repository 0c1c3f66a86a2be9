package services_test

import (
	"testing"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/finlearnhq/finlearn_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func contentWith(status domain.ContentStatus, premium bool) *domain.Content {
	now := time.Now()
	c := &domain.Content{
		ContentID: "content-1",
		Title:     "Budgeting 101",
		Slug:      "budgeting-101",
		Status:    status,
		IsPremium: premium,
	}
	if status == domain.StatusPublished {
		c.PublishedAt = &now
	}
	return c
}

func TestCanViewFull(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.ContentStatus
		premium   bool
		role      domain.Role
		isPremium bool
		want      bool
	}{
		{"published free, anonymous", domain.StatusPublished, false, "", false, true},
		{"published free, user", domain.StatusPublished, false, domain.RoleUser, false, true},
		{"published free, premium user", domain.StatusPublished, false, domain.RoleUser, true, true},
		{"published free, admin", domain.StatusPublished, false, domain.RoleAdmin, false, true},

		{"published premium, anonymous", domain.StatusPublished, true, "", false, false},
		{"published premium, free user", domain.StatusPublished, true, domain.RoleUser, false, false},
		{"published premium, premium user", domain.StatusPublished, true, domain.RoleUser, true, true},
		{"published premium, admin", domain.StatusPublished, true, domain.RoleAdmin, false, true},

		{"draft free, user", domain.StatusDraft, false, domain.RoleUser, false, false},
		{"draft free, premium user", domain.StatusDraft, false, domain.RoleUser, true, false},
		{"draft premium, premium user", domain.StatusDraft, true, domain.RoleUser, true, false},
		{"draft, admin", domain.StatusDraft, false, domain.RoleAdmin, false, true},
		{"archived, user", domain.StatusArchived, false, domain.RoleUser, false, false},
		{"archived, admin", domain.StatusArchived, true, domain.RoleAdmin, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := contentWith(tt.status, tt.premium)
			got := services.CanViewFull(content, tt.role, tt.isPremium)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanViewFull_PremiumFlagDoesNotLeakAcrossRoles(t *testing.T) {
	// The premium flag only entitles the user role; an unknown role with the
	// flag set still gets a teaser.
	content := contentWith(domain.StatusPublished, true)
	assert.False(t, services.CanViewFull(content, domain.Role("other"), true))
}
