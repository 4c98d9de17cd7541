package port

import (
	"context"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/google/uuid"
)

// UpdateOrderFn mutates the aggregate inside a repository transaction.
// Returning an error rolls the whole transition back.
type UpdateOrderFn func(order *domain.Order) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID uint64) ([]*domain.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID uint64) ([]*domain.Order, error)

	// UpdateOrderTx loads the order under a row lock, applies fn and
	// persists the result atomically. This is the single mutation path
	// serializing concurrent triggers per order.
	UpdateOrderTx(ctx context.Context, orderID uuid.UUID, fn UpdateOrderFn) (*domain.Order, error)
}
