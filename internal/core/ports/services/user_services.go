package services

import (
	"context"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
)

// UserSvcFacade manages end-user identities.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateUserName(ctx context.Context, userID, name string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	// UpgradeToPremium flips the premium flag and records the purchase.
	UpgradeToPremium(ctx context.Context, userID string) (*domain.User, error)
	// FindOrCreateGoogleUser resolves an OAuth identity to a local user,
	// linking the Google id onto an existing account with the same email or
	// creating a fresh user with role "user" and provider "google".
	FindOrCreateGoogleUser(ctx context.Context, name, email, googleID string) (*domain.User, error)
}

// AdminSvcFacade manages back-office admin identities.
type AdminSvcFacade interface {
	RegisterAdmin(ctx context.Context, req dto.AdminRegisterRequest) (*domain.Admin, error)
	AuthenticateAdmin(ctx context.Context, email, password string) (*domain.Admin, error)
	GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)
}
