package pgsql

import (
	"context"
	"fmt"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// AdminRepository persists back-office admins in PostgreSQL.
type AdminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

var _ portsrepo.AdminRepository = (*AdminRepository)(nil)

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var admin domain.Admin
	err := row.Scan(
		&admin.AdminID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, admin domain.Admin) error {
	query := `
        INSERT INTO admins (admin_id, name, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		admin.AdminID,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	query := `SELECT admin_id, name, email, password_hash, created_at, updated_at FROM admins WHERE admin_id = $1;`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, adminID))
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by ID: %w", err)
	}
	return admin, nil
}

func (r *AdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT admin_id, name, email, password_hash, created_at, updated_at FROM admins WHERE email = $1;`
	admin, err := scanAdmin(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return admin, nil
}
