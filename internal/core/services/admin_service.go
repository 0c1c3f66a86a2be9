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
	"github.com/finlearnhq/finlearn_backend/internal/utils"
	"github.com/google/uuid"
)

// AdminService implements AdminSvcFacade over the admin repository.
type AdminService struct {
	adminRepo portsrepo.AdminRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo portsrepo.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

var _ portssvc.AdminSvcFacade = (*AdminService)(nil)

// RegisterAdmin creates a back-office admin account.
func (s *AdminService) RegisterAdmin(ctx context.Context, req dto.AdminRegisterRequest) (*domain.Admin, error) {
	existing, err := s.adminRepo.FindAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	admin := domain.Admin{
		AdminID:      uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.adminRepo.CreateAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &admin, nil
}

// AuthenticateAdmin checks credentials and returns the admin on success. The
// error is identical whether the email is unknown or the password is wrong.
func (s *AdminService) AuthenticateAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	if admin == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return admin, nil
}

// GetAdminByID fetches an admin or returns apperrors.ErrNotFound.
func (s *AdminService) GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by ID: %w", err)
	}
	if admin == nil {
		return nil, apperrors.ErrNotFound
	}
	return admin, nil
}
