package pgsql

import (
	"context"
	"fmt"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
)

// PurchaseRepository records premium plan purchases in PostgreSQL.
type PurchaseRepository struct {
	db DBTX
}

func NewPurchaseRepository(db DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

var _ portsrepo.PurchaseRepository = (*PurchaseRepository)(nil)

func (r *PurchaseRepository) RecordPurchase(ctx context.Context, purchase domain.PremiumPurchase) error {
	query := `
        INSERT INTO premium_purchases (purchase_id, user_id, amount, currency, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		purchase.PurchaseID,
		purchase.UserID,
		purchase.Amount,
		purchase.Currency,
		purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record premium purchase: %w", err)
	}
	return nil
}
