package port

import (
	"context"
	"net/url"
	"time"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/google/uuid"
)

// CreateOrderRequest carries buyer selections into order creation.
type CreateOrderRequest struct {
	ListingID         string
	DeliveryOption    domain.DeliveryOption
	ShowroomID        string
	UseProfileAddress bool
	Address           *domain.ShippingAddress
	Method            string
}

// OrderPlacement is the result of creating or re-initiating a payment:
// the order plus the gateway URL the buyer's browser should be sent to.
type OrderPlacement struct {
	Order       *domain.Order
	RedirectURL string
}

type Service interface {
	LoginUser(ctx context.Context, login string, password string) (string, error)

	CreateDepositOrder(ctx context.Context, buyerID uint64, req CreateOrderRequest) (*OrderPlacement, error)
	CreateFullPaymentOrder(ctx context.Context, buyerID uint64, req CreateOrderRequest) (*OrderPlacement, error)
	ConfirmFullPayment(ctx context.Context, buyerID uint64, orderID uuid.UUID,
		method string, actualDeliveryDate *time.Time) (*OrderPlacement, error)

	GetOrder(ctx context.Context, callerID uint64, orderID uuid.UUID) (*domain.Order, error)
	ListOrdersForBuyer(ctx context.Context, buyerID uint64) ([]*domain.Order, error)
	ListOrdersForSeller(ctx context.Context, sellerID uint64) ([]*domain.Order, error)

	UpdateDeliveryStatus(ctx context.Context, sellerID uint64, orderID uuid.UUID,
		status domain.OrderStatus, expected, actual *time.Time, notes string) (*domain.Order, error)
	CancelOrder(ctx context.Context, callerID uint64, orderID uuid.UUID, reason string) (*domain.Order, error)
	RefundOrder(ctx context.Context, callerID uint64, orderID uuid.UUID, reason string) (*domain.Order, error)

	RenderAgreement(ctx context.Context, callerID uint64, orderID uuid.UUID) (*domain.Agreement, error)

	HandleGatewayReturn(ctx context.Context, params url.Values) (*domain.Order, error)
	HandleGatewayNotification(ctx context.Context, payload []byte) (*domain.Order, error)
}
