package port

import (
	"context"

	"github.com/MikeRez0/automarket/internal/core/domain"
)

// Notifier delivers receipts to the buyer. Fire-and-forget: a delivery
// failure never rolls back payment state.
//
//go:generate mockgen -source=notify.go -destination=mock/notify.go -package=mock
type Notifier interface {
	OrderReceipt(ctx context.Context, order *domain.Order, email string) error
}
