package port

import (
	"context"
	"net/url"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// InitiateRequest asks the gateway to open a payment for one purpose of
// one order.
type InitiateRequest struct {
	OrderID     uuid.UUID
	Purpose     domain.PaymentPurpose
	Amount      decimal.Decimal
	Method      string
	Description string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type GatewayClient interface {
	// Initiate registers a pending attempt keyed by (orderID, purpose)
	// and returns the redirect URL for the buyer's browser.
	Initiate(ctx context.Context, req InitiateRequest) (string, error)

	// DecodeReturn verifies and normalizes the browser redirect-return
	// parameters into a payment attempt.
	DecodeReturn(ctx context.Context, params url.Values) (*domain.PaymentAttempt, error)

	// DecodeNotification does the same for the server-to-server callback
	// body. Both channels must decode the same transaction identically.
	DecodeNotification(ctx context.Context, payload []byte) (*domain.PaymentAttempt, error)
}
