package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
	"github.com/finlearnhq/finlearn_backend/internal/platform/config"
	"github.com/finlearnhq/finlearn_backend/internal/utils"
	"github.com/google/uuid"
)

// UserService implements UserSvcFacade over the user and purchase repositories.
type UserService struct {
	userRepo     portsrepo.UserRepository
	purchaseRepo portsrepo.PurchaseRepository
	cfg          *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository, purchaseRepo portsrepo.PurchaseRepository, cfg *config.Config) *UserService {
	return &UserService{userRepo: userRepo, purchaseRepo: purchaseRepo, cfg: cfg}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser creates a local-credential user account.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Provider:     domain.ProviderLocal,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// AuthenticateUser checks credentials and returns the user on success. The
// error is identical whether the email is unknown or the password is wrong.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// GetUserByID fetches a user or returns apperrors.ErrNotFound.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// ListUsers returns a page of users with the total count.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	users, total, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// UpdateUserName changes the display name of a user.
func (s *UserService) UpdateUserName(ctx context.Context, userID, name string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user account; likes and comments cascade with it.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// UpgradeToPremium flips the premium flag and records the purchase at the
// configured plan price. Clients must refresh their session afterwards so
// the premium flag they gate on is not stale.
func (s *UserService) UpgradeToPremium(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsPremium {
		return user, nil
	}

	if err := s.userRepo.SetPremium(ctx, userID, true); err != nil {
		return nil, fmt.Errorf("failed to set premium flag: %w", err)
	}

	purchase := domain.PremiumPurchase{
		PurchaseID: uuid.NewString(),
		UserID:     userID,
		Amount:     s.cfg.PremiumPlanPrice,
		Currency:   "INR",
		CreatedAt:  time.Now(),
	}
	if err := s.purchaseRepo.RecordPurchase(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to record premium purchase: %w", err)
	}

	user.IsPremium = true
	return user, nil
}

// FindOrCreateGoogleUser resolves an OAuth identity to a local user. Lookup
// order is provider id first, then email (linking the Google id onto an
// existing local account), then a fresh account with an empty password hash.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, name, email, googleID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByGoogleID(ctx, googleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by google ID: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user != nil {
		if err := s.userRepo.LinkGoogleAccount(ctx, user.UserID, googleID); err != nil {
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
		user.GoogleID = googleID
		return user, nil
	}

	now := time.Now()
	newUser := domain.User{
		UserID:      uuid.NewString(),
		Name:        name,
		Email:       email,
		GoogleID:    googleID,
		Provider:    domain.ProviderGoogle,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.userRepo.CreateUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}
	return &newUser, nil
}
