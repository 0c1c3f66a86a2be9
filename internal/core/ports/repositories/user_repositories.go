package repositories

import (
	"context"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
)

// UserRepository persists end-user identities.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateUser(ctx context.Context, user domain.User) error
	LinkGoogleAccount(ctx context.Context, userID, googleID string) error
	SetPremium(ctx context.Context, userID string, isPremium bool) error
	DeleteUser(ctx context.Context, userID string) error
}

// AdminRepository persists back-office admin identities.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin domain.Admin) error
	FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

// PurchaseRepository records premium plan purchases.
type PurchaseRepository interface {
	RecordPurchase(ctx context.Context, purchase domain.PremiumPurchase) error
}
