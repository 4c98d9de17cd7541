package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// deliveryDays is the fixed offset the source system uses for the
// expected delivery date, anchored at payment-completion time.
const deliveryDays = 30

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	gateway      port.GatewayClient
	directory    port.DirectoryClient
	notifier     port.Notifier
	metrics      port.Metrics
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	gateway port.GatewayClient, directory port.DirectoryClient,
	notifier port.Notifier, metrics port.Metrics, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		gateway:      gateway,
		directory:    directory,
		notifier:     notifier,
		metrics:      metrics,
		logger:       logger,
	}, nil
}

func (s *Service) LoginUser(ctx context.Context, login string, password string) (string, error) {
	profile, err := s.directory.Authenticate(ctx, login, password)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	token, err := s.tokenService.CreateToken(port.TokenPayload{
		UserID: profile.ID,
		Role:   profile.Role,
	})
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) CreateDepositOrder(ctx context.Context, buyerID uint64, req port.CreateOrderRequest) (*port.OrderPlacement, error) {
	return s.createOrder(ctx, buyerID, req, domain.PurposeDeposit)
}

func (s *Service) CreateFullPaymentOrder(ctx context.Context, buyerID uint64, req port.CreateOrderRequest) (*port.OrderPlacement, error) {
	return s.createOrder(ctx, buyerID, req, domain.PurposeFullPayment)
}

// createOrder validates buyer selections, snapshots the price and opens
// the first payment with the gateway. Validation happens before any
// state is written.
func (s *Service) createOrder(ctx context.Context, buyerID uint64,
	req port.CreateOrderRequest, purpose domain.PaymentPurpose) (*port.OrderPlacement, error) {
	if req.Method == "" {
		return nil, domain.ErrMissingPaymentMethod
	}

	listing, err := s.directory.GetListing(ctx, req.ListingID)
	if err != nil {
		s.logger.Error("Get listing", zap.String("listing", req.ListingID), zap.Error(err))
		return nil, err
	}

	order := &domain.Order{
		ID:           uuid.New(),
		ListingID:    listing.ID,
		BuyerID:      buyerID,
		SellerID:     listing.SellerID,
		VehicleMake:  listing.Make,
		VehicleModel: listing.Model,
		VehicleYear:  listing.Year,
	}

	shipping := decimal.Zero
	switch req.DeliveryOption {
	case domain.DeliveryPickup:
		if req.ShowroomID == "" {
			return nil, domain.ErrMissingShowroom
		}
		showroom, ok := findShowroom(listing.Showrooms, req.ShowroomID)
		if !ok {
			return nil, domain.ErrMissingShowroom
		}
		seller, err := s.directory.GetSellerForShowroom(ctx, showroom.ID)
		if err != nil {
			return nil, err
		}
		order.ShowroomID = showroom.ID
		order.SellerID = seller.ID
	case domain.DeliveryShipping:
		addr := req.Address
		if req.UseProfileAddress {
			profile, err := s.directory.GetUser(ctx, buyerID)
			if err != nil {
				return nil, err
			}
			addr = &domain.ShippingAddress{
				Name:    profile.Name,
				Address: profile.Address,
				Phone:   profile.Phone,
			}
		}
		if !addr.Complete() {
			return nil, domain.ErrMissingShippingInfo
		}
		order.ShippingAddress = addr
		shipping = listing.ShippingFee
	default:
		return nil, domain.ErrBadRequest
	}
	order.DeliveryOption = req.DeliveryOption

	totals, err := domain.ComputeTotals(listing.Price, listing.RegistrationFee,
		listing.DealerFee, listing.TaxRate, shipping)
	if err != nil {
		return nil, err
	}
	deposit, err := domain.ComputeDeposit(totals.Total)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.VehiclePrice = totals.VehiclePrice
	order.RegistrationFee = totals.RegistrationFee
	order.DealerFee = totals.DealerFee
	order.Tax = totals.Tax
	order.ShippingCost = totals.ShippingCost
	order.TotalPrice = totals.Total
	order.DepositAmount = deposit
	order.CreatedAt = now
	order.StatusHistory = []domain.StatusEntry{
		{Status: domain.StatusPendingDeposit, Timestamp: now},
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}
	s.metrics.OrderCreated()

	amount := newOrder.DepositAmount
	if purpose == domain.PurposeFullPayment {
		amount = newOrder.TotalPrice
	}

	redirect, err := s.gateway.Initiate(ctx, port.InitiateRequest{
		OrderID:     newOrder.ID,
		Purpose:     purpose,
		Amount:      amount,
		Method:      req.Method,
		Description: listing.Make + " " + listing.Model,
	})
	if err != nil {
		// The order stays in PENDING_DEPOSIT. An abandoned attempt is
		// superseded by the next one and collapsed by reconciliation.
		s.logger.Error("Initiate payment", zap.String("order", newOrder.ID.String()), zap.Error(err))
		return nil, err
	}

	return &port.OrderPlacement{Order: newOrder, RedirectURL: redirect}, nil
}

func findShowroom(showrooms []port.Showroom, id string) (port.Showroom, bool) {
	for _, sr := range showrooms {
		if sr.ID == id {
			return sr, true
		}
	}
	return port.Showroom{}, false
}

// ConfirmFullPayment opens the remaining-balance payment for an order
// whose deposit is already paid. The buyer may name the handover date
// here; it is recorded write-once as the actual delivery date.
func (s *Service) ConfirmFullPayment(ctx context.Context, buyerID uint64, orderID uuid.UUID,
	method string, actualDeliveryDate *time.Time) (*port.OrderPlacement, error) {
	if method == "" {
		return nil, domain.ErrMissingPaymentMethod
	}

	order, err := s.repo.UpdateOrderTx(ctx, orderID, func(o *domain.Order) error {
		if o.BuyerID != buyerID {
			return domain.ErrForbidden
		}
		if err := o.RequestFullPayment(time.Now()); err != nil {
			return err
		}
		if actualDeliveryDate != nil && o.ActualDeliveryDate == nil {
			d := *actualDeliveryDate
			o.ActualDeliveryDate = &d
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	redirect, err := s.gateway.Initiate(ctx, port.InitiateRequest{
		OrderID: order.ID,
		Purpose: domain.PurposeFullPayment,
		Amount:  order.RemainingBalance(),
		Method:  method,
	})
	if err != nil {
		s.logger.Error("Initiate payment", zap.String("order", order.ID.String()), zap.Error(err))
		return nil, err
	}

	return &port.OrderPlacement{Order: order, RedirectURL: redirect}, nil
}

// HandleGatewayReturn applies the browser redirect-return channel.
func (s *Service) HandleGatewayReturn(ctx context.Context, params url.Values) (*domain.Order, error) {
	attempt, err := s.gateway.DecodeReturn(ctx, params)
	if err != nil {
		return nil, s.rejectCallback(err)
	}
	return s.ApplyPaymentResult(ctx, attempt)
}

// HandleGatewayNotification applies the server-to-server channel. The
// effect is identical to the return channel for the same transaction.
func (s *Service) HandleGatewayNotification(ctx context.Context, payload []byte) (*domain.Order, error) {
	attempt, err := s.gateway.DecodeNotification(ctx, payload)
	if err != nil {
		return nil, s.rejectCallback(err)
	}
	return s.ApplyPaymentResult(ctx, attempt)
}

func (s *Service) rejectCallback(err error) error {
	if errors.Is(err, domain.ErrUntrustedCallback) {
		s.metrics.UntrustedCallback()
		s.logger.Warn("Untrusted gateway callback rejected", zap.Error(err))
	}
	return err
}

// ApplyPaymentResult is the single idempotent command handler both
// gateway channels funnel into. Replaying a transaction id is a no-op
// success; a failed result leaves the order untouched and retryable.
func (s *Service) ApplyPaymentResult(ctx context.Context, attempt *domain.PaymentAttempt) (*domain.Order, error) {
	if !attempt.Succeeded {
		s.logger.Info("Payment declined by gateway",
			zap.String("order", attempt.OrderID.String()),
			zap.String("result", attempt.ResultCode))
		return nil, domain.ErrPaymentFailed
	}

	payment := domain.Payment{
		Amount:        attempt.Amount,
		Method:        attempt.Method,
		TransactionID: attempt.TransactionID,
		PaidAt:        time.Now(),
	}

	order, err := s.repo.UpdateOrderTx(ctx, attempt.OrderID, func(o *domain.Order) error {
		now := time.Now()
		switch attempt.Purpose {
		case domain.PurposeDeposit:
			return o.ApplyDeposit(payment, now)
		case domain.PurposeFullPayment:
			if err := o.ApplyFullPayment(payment, now); err != nil {
				return err
			}
			if o.ExpectedDeliveryDate == nil {
				d := now.AddDate(0, 0, deliveryDays)
				o.ExpectedDeliveryDate = &d
			}
			return nil
		default:
			return domain.ErrBadRequest
		}
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateConfirmation) {
			// at-least-once delivery: the other channel got here first
			s.metrics.DuplicateConfirmation()
			s.logger.Info("Duplicate payment confirmation ignored",
				zap.String("order", attempt.OrderID.String()),
				zap.String("transaction", attempt.TransactionID))
			return s.repo.ReadOrder(ctx, attempt.OrderID)
		}
		return nil, err
	}

	s.metrics.PaymentApplied(string(attempt.Purpose))
	go s.sendReceipt(order)

	return order, nil
}

// sendReceipt is fire-and-forget: failures are logged, never propagated
// into payment state.
func (s *Service) sendReceipt(order *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profile, err := s.directory.GetUser(ctx, order.BuyerID)
	if err != nil {
		s.logger.Warn("Receipt skipped, buyer lookup failed",
			zap.String("order", order.ID.String()), zap.Error(err))
		return
	}
	if err := s.notifier.OrderReceipt(ctx, order, profile.Email); err != nil {
		s.logger.Warn("Receipt delivery failed",
			zap.String("order", order.ID.String()), zap.Error(err))
	}
}

func (s *Service) GetOrder(ctx context.Context, callerID uint64, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != callerID && order.SellerID != callerID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *Service) ListOrdersForBuyer(ctx context.Context, buyerID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByBuyer(ctx, buyerID)
	if err != nil {
		s.logger.Error("List orders for buyer", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListOrdersForSeller(ctx context.Context, sellerID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersBySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error("List orders for seller", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) UpdateDeliveryStatus(ctx context.Context, sellerID uint64, orderID uuid.UUID,
	status domain.OrderStatus, expected, actual *time.Time, notes string) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrBadRequest
	}
	return s.repo.UpdateOrderTx(ctx, orderID, func(o *domain.Order) error {
		if o.SellerID != sellerID {
			return domain.ErrForbidden
		}
		return o.AdvanceDelivery(status, expected, actual, notes, time.Now())
	})
}

func (s *Service) CancelOrder(ctx context.Context, callerID uint64, orderID uuid.UUID, reason string) (*domain.Order, error) {
	return s.closeOrder(ctx, callerID, orderID, domain.StatusCancelled, reason)
}

func (s *Service) RefundOrder(ctx context.Context, callerID uint64, orderID uuid.UUID, reason string) (*domain.Order, error) {
	return s.closeOrder(ctx, callerID, orderID, domain.StatusRefunded, reason)
}

func (s *Service) closeOrder(ctx context.Context, callerID uint64, orderID uuid.UUID,
	target domain.OrderStatus, reason string) (*domain.Order, error) {
	order, err := s.repo.UpdateOrderTx(ctx, orderID, func(o *domain.Order) error {
		if o.BuyerID != callerID && o.SellerID != callerID {
			return domain.ErrForbidden
		}
		return o.Close(target, reason, time.Now())
	})
	if err != nil {
		return nil, err
	}
	s.metrics.OrderClosed(string(target))
	return order, nil
}

func (s *Service) RenderAgreement(ctx context.Context, callerID uint64, orderID uuid.UUID) (*domain.Agreement, error) {
	order, err := s.GetOrder(ctx, callerID, orderID)
	if err != nil {
		return nil, err
	}

	buyer, err := s.directory.GetUser(ctx, order.BuyerID)
	if err != nil {
		return nil, err
	}
	seller, err := s.directory.GetSeller(ctx, order.SellerID)
	if err != nil {
		return nil, err
	}

	return BuildAgreement(order, buyer, seller), nil
}
