package dto

import "github.com/finlearnhq/finlearn_backend/internal/core/domain"

// UserProfileResponse mirrors the profile shape the client session is built
// from. The "_id" key is part of the external contract.
type UserProfileResponse struct {
	ID        string      `json:"_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	IsPremium bool        `json:"isPremium"`
	Role      domain.Role `json:"role"`
}

// ToUserProfileResponse converts a domain user to its profile representation.
func ToUserProfileResponse(user *domain.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		IsPremium: user.IsPremium,
		Role:      domain.RoleUser,
	}
}

// UpdateProfileRequest carries the updatable profile fields. Pointers
// distinguish omitted fields from zero values.
type UpdateProfileRequest struct {
	Name *string `json:"name"`
}

// UserSummaryResponse is the admin-facing user listing row.
type UserSummaryResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Provider  domain.AuthProvider `json:"provider"`
	IsPremium bool                `json:"isPremium"`
}

// ToUserSummaryResponse converts a domain user to a listing row.
func ToUserSummaryResponse(user *domain.User) UserSummaryResponse {
	return UserSummaryResponse{
		ID:        user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Provider:  user.Provider,
		IsPremium: user.IsPremium,
	}
}
