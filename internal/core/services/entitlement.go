package services

import "github.com/finlearnhq/finlearn_backend/internal/core/domain"

// CanViewFull decides whether a viewer may see a content item's full body.
// An anonymous viewer is represented by an empty role.
//
// Unpublished content is visible only to admins. Published free content is
// visible to everyone, including anonymous viewers. Published premium content
// requires the admin role or the premium flag.
func CanViewFull(content *domain.Content, viewerRole domain.Role, viewerIsPremium bool) bool {
	if !content.IsPublished() {
		return viewerRole == domain.RoleAdmin
	}
	if !content.IsPremium {
		return true
	}
	return viewerRole == domain.RoleAdmin || (viewerRole == domain.RoleUser && viewerIsPremium)
}
