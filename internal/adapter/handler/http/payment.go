package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler receives both gateway confirmation channels. They carry
// the same logical fields and produce the identical effect on the order.
type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// ReturnFromGateway handles the browser redirect back from the gateway.
// A declined payment keeps the order in its prior state so the buyer can
// retry it.
func (ph *PaymentHandler) ReturnFromGateway(ctx *gin.Context) {
	order, err := ph.service.HandleGatewayReturn(ctx, ctx.Request.URL.Query())
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newOrderResp(order))
}

type notifyResp struct {
	Message string `json:"message"`
}

// GatewayNotification handles the server-to-server callback. Declined
// payments are acknowledged with 200 so the gateway stops re-sending;
// verification failures are not.
func (ph *PaymentHandler) GatewayNotification(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	defer ctx.Request.Body.Close()

	_, err = ph.service.HandleGatewayNotification(ctx, payload)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentFailed) {
			ph.handleSuccessWithStatus(ctx, notifyResp{Message: "payment declined, order unchanged"}, http.StatusOK)
			return
		}
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, notifyResp{Message: "confirmed"}, http.StatusOK)
}
