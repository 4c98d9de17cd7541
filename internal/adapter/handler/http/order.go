package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/MikeRez0/automarket/internal/core/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type addressRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type createOrderRequest struct {
	ListingID         string          `json:"listing_id"`
	DeliveryOption    string          `json:"delivery_option"`
	ShowroomID        string          `json:"showroom_id"`
	UseProfileAddress bool            `json:"use_profile_address"`
	Address           *addressRequest `json:"address"`
	Method            string          `json:"method"`
}

func (r *createOrderRequest) toPort() port.CreateOrderRequest {
	req := port.CreateOrderRequest{
		ListingID:         r.ListingID,
		DeliveryOption:    domain.DeliveryOption(r.DeliveryOption),
		ShowroomID:        r.ShowroomID,
		UseProfileAddress: r.UseProfileAddress,
		Method:            r.Method,
	}
	if r.Address != nil {
		req.Address = &domain.ShippingAddress{
			Name:    r.Address.Name,
			Address: r.Address.Address,
			Phone:   r.Address.Phone,
		}
	}
	return req
}

type paymentResp struct {
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transaction_id"`
	PaidAt        time.Time       `json:"paid_at"`
}

type historyResp struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type orderResp struct {
	OrderID          string          `json:"order_id"`
	ListingID        string          `json:"listing_id"`
	VehicleMake      string          `json:"vehicle_make,omitempty"`
	VehicleModel     string          `json:"vehicle_model,omitempty"`
	VehicleYear      int             `json:"vehicle_year,omitempty"`
	Status           string          `json:"status"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	DeliveryOption   string          `json:"delivery_option"`
	ShowroomID       string          `json:"showroom_id,omitempty"`
	ExpectedDelivery *time.Time      `json:"expected_delivery,omitempty"`
	ActualDelivery   *time.Time      `json:"actual_delivery,omitempty"`
	DepositPayment   *paymentResp    `json:"deposit_payment,omitempty"`
	FullPayment      *paymentResp    `json:"full_payment,omitempty"`
	History          []historyResp   `json:"history"`
	CreatedAt        time.Time       `json:"created_at"`
}

func newOrderResp(o *domain.Order) orderResp {
	resp := orderResp{
		OrderID:          o.ID.String(),
		ListingID:        o.ListingID,
		VehicleMake:      o.VehicleMake,
		VehicleModel:     o.VehicleModel,
		VehicleYear:      o.VehicleYear,
		Status:           string(o.Status()),
		TotalPrice:       o.TotalPrice,
		DepositAmount:    o.DepositAmount,
		RemainingBalance: o.RemainingBalance(),
		DeliveryOption:   string(o.DeliveryOption),
		ShowroomID:       o.ShowroomID,
		ExpectedDelivery: o.ExpectedDeliveryDate,
		ActualDelivery:   o.ActualDeliveryDate,
		CreatedAt:        o.CreatedAt,
	}
	for _, p := range []*domain.Payment{o.DepositPayment, o.FullPayment} {
		if p == nil {
			continue
		}
		pr := &paymentResp{
			Amount:        p.Amount,
			Method:        p.Method,
			TransactionID: p.TransactionID,
			PaidAt:        p.PaidAt,
		}
		if p == o.DepositPayment {
			resp.DepositPayment = pr
		} else {
			resp.FullPayment = pr
		}
	}
	for _, e := range o.StatusHistory {
		resp.History = append(resp.History, historyResp{
			Status:    string(e.Status),
			Timestamp: e.Timestamp,
			Notes:     e.Notes,
		})
	}
	return resp
}

type placementResp struct {
	Order       orderResp `json:"order"`
	RedirectURL string    `json:"redirect_url,omitempty"`
}

func (oh *OrderHandler) CreateDepositOrder(ctx *gin.Context) {
	oh.createOrder(ctx, oh.service.CreateDepositOrder)
}

func (oh *OrderHandler) CreateFullPaymentOrder(ctx *gin.Context) {
	oh.createOrder(ctx, oh.service.CreateFullPaymentOrder)
}

func (oh *OrderHandler) createOrder(ctx *gin.Context,
	create func(ctx context.Context, buyerID uint64, req port.CreateOrderRequest) (*port.OrderPlacement, error)) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	buyerID := getAuthPayload(ctx).UserID
	placement, err := create(ctx, buyerID, req.toPort())
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, placementResp{
		Order:       newOrderResp(placement.Order),
		RedirectURL: placement.RedirectURL,
	}, http.StatusCreated)
}

type confirmPaymentRequest struct {
	Method             string     `json:"method"`
	ActualDeliveryDate *time.Time `json:"actual_delivery_date"`
}

func (oh *OrderHandler) ConfirmFullPayment(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("order"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := confirmPaymentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	buyerID := getAuthPayload(ctx).UserID
	placement, err := oh.service.ConfirmFullPayment(ctx, buyerID, orderID, req.Method, req.ActualDeliveryDate)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, placementResp{
		Order:       newOrderResp(placement.Order),
		RedirectURL: placement.RedirectURL,
	})
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("order"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, getAuthPayload(ctx).UserID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

// ListOrdersByBuyer returns one record per vehicle: historical attempts
// for the same vehicle are reconciled into the current one.
func (oh *OrderHandler) ListOrdersByBuyer(ctx *gin.Context) {
	buyerID := getAuthPayload(ctx).UserID

	list, err := oh.service.ListOrdersForBuyer(ctx, buyerID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.respondOrderList(ctx, service.Reconcile(list))
}

func (oh *OrderHandler) ListOrdersBySeller(ctx *gin.Context) {
	sellerID := getAuthPayload(ctx).UserID

	list, err := oh.service.ListOrdersForSeller(ctx, sellerID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.respondOrderList(ctx, service.Reconcile(list))
}

func (oh *OrderHandler) respondOrderList(ctx *gin.Context, list []*domain.Order) {
	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}
	oh.handleSuccess(ctx, result)
}

type deliveryUpdateRequest struct {
	Status       string     `json:"status"`
	ExpectedDate *time.Time `json:"expected_date"`
	ActualDate   *time.Time `json:"actual_date"`
	Notes        string     `json:"notes"`
}

func (oh *OrderHandler) UpdateDeliveryStatus(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("order"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := deliveryUpdateRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	sellerID := getAuthPayload(ctx).UserID
	order, err := oh.service.UpdateDeliveryStatus(ctx, sellerID, orderID,
		domain.OrderStatus(req.Status), req.ExpectedDate, req.ActualDate, req.Notes)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

type closeOrderRequest struct {
	Reason string `json:"reason"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	oh.closeOrder(ctx, oh.service.CancelOrder)
}

func (oh *OrderHandler) RefundOrder(ctx *gin.Context) {
	oh.closeOrder(ctx, oh.service.RefundOrder)
}

func (oh *OrderHandler) closeOrder(ctx *gin.Context,
	close func(ctx context.Context, callerID uint64, orderID uuid.UUID, reason string) (*domain.Order, error)) {
	orderID, err := uuid.Parse(ctx.Param("order"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := closeOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := close(ctx, getAuthPayload(ctx).UserID, orderID, req.Reason)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) RenderAgreement(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("order"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	agreement, err := oh.service.RenderAgreement(ctx, getAuthPayload(ctx).UserID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, agreement)
}
