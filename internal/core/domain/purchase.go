package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PremiumPurchase records a completed upgrade to the premium plan. Payment
// capture itself happens outside this service; only the outcome is stored.
type PremiumPurchase struct {
	PurchaseID string          `json:"purchaseID"`
	UserID     string          `json:"userID"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"createdAt"`
}
