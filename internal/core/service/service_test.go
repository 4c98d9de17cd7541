package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/MikeRez0/automarket/internal/core/port/mock"
	"github.com/MikeRez0/automarket/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mocks struct {
	repo      *mock.MockRepository
	gateway   *mock.MockGatewayClient
	directory *mock.MockDirectoryClient
	notifier  *mock.MockNotifier
	metrics   *mock.MockMetrics
	ts        *mock.MockTokenService
}

type prepareMocks func(m mocks)

func newTestService(t *testing.T, ctrl *gomock.Controller, prepare prepareMocks) (*service.Service, mocks) {
	t.Helper()

	m := mocks{
		repo:      mock.NewMockRepository(ctrl),
		gateway:   mock.NewMockGatewayClient(ctrl),
		directory: mock.NewMockDirectoryClient(ctrl),
		notifier:  mock.NewMockNotifier(ctrl),
		metrics:   mock.NewMockMetrics(ctrl),
		ts:        mock.NewMockTokenService(ctrl),
	}
	if prepare != nil {
		prepare(m)
	}

	logger, _ := zap.NewProduction()
	s, err := service.NewService(m.repo, m.ts, m.gateway, m.directory, m.notifier, m.metrics, logger)
	assert.NoError(t, err)

	return s, m
}

func testListing() *port.Listing {
	return &port.Listing{
		ID:              "lst-1",
		SellerID:        2,
		Make:            "Toyota",
		Model:           "Camry",
		Year:            2023,
		Price:           decimal.MustParse("60000000"),
		RegistrationFee: decimal.MustParse("0"),
		DealerFee:       decimal.MustParse("0"),
		TaxRate:         decimal.MustParse("0.1"),
		ShippingFee:     decimal.MustParse("250000"),
		Showrooms: []port.Showroom{
			{ID: "sr-1", SellerID: 2, Name: "District 1"},
		},
	}
}

// depositPaidOrder is an order one step into its lifecycle, owned by
// buyer 1 and seller 2.
func depositPaidOrder(id uuid.UUID) *domain.Order {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Order{
		ID:            id,
		ListingID:     "lst-1",
		BuyerID:       1,
		SellerID:      2,
		TotalPrice:    decimal.MustParse("66000000"),
		DepositAmount: decimal.MustParse("6600000"),
		DepositPayment: &domain.Payment{
			Amount:        decimal.MustParse("6600000"),
			TransactionID: "tx-1",
		},
		CreatedAt: created,
		StatusHistory: []domain.StatusEntry{
			{Status: domain.StatusPendingDeposit, Timestamp: created},
			{Status: domain.StatusDepositPaid, Timestamp: created.Add(time.Hour)},
		},
	}
}

func TestService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type loginTest struct {
		name     string
		login    string
		password string
		mock     prepareMocks
		expToken string
		expError error
	}

	profile := &port.UserProfile{ID: 1, Name: "Binh", Role: port.RoleBuyer}

	tests := []loginTest{
		{
			name:     "login good",
			login:    "binh",
			password: "secret",
			mock: func(m mocks) {
				m.directory.EXPECT().Authenticate(gomock.Any(), "binh", "secret").
					Return(profile, nil)
				m.ts.EXPECT().CreateToken(port.TokenPayload{UserID: 1, Role: port.RoleBuyer}).
					Return("token-1", nil)
			},
			expToken: "token-1",
		},
		{
			name:     "unknown user",
			login:    "hacker",
			password: "secret",
			mock: func(m mocks) {
				m.directory.EXPECT().Authenticate(gomock.Any(), "hacker", "secret").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			token, err := s.LoginUser(context.Background(), test.login, test.password)

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expToken, token)
		})
	}
}

func TestService_CreateDepositOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type createOrderTest struct {
		name     string
		req      port.CreateOrderRequest
		mock     prepareMocks
		expError error
	}

	tests := []createOrderTest{
		{
			name: "missing payment method",
			req: port.CreateOrderRequest{
				ListingID:      "lst-1",
				DeliveryOption: domain.DeliveryPickup,
				ShowroomID:     "sr-1",
			},
			expError: domain.ErrMissingPaymentMethod,
		},
		{
			name: "pickup without showroom",
			req: port.CreateOrderRequest{
				ListingID:      "lst-1",
				DeliveryOption: domain.DeliveryPickup,
				Method:         "VNPAYQR",
			},
			mock: func(m mocks) {
				m.directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(testListing(), nil)
			},
			expError: domain.ErrMissingShowroom,
		},
		{
			name: "pickup at showroom the listing does not offer",
			req: port.CreateOrderRequest{
				ListingID:      "lst-1",
				DeliveryOption: domain.DeliveryPickup,
				ShowroomID:     "sr-9",
				Method:         "VNPAYQR",
			},
			mock: func(m mocks) {
				m.directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(testListing(), nil)
			},
			expError: domain.ErrMissingShowroom,
		},
		{
			name: "shipping with incomplete address",
			req: port.CreateOrderRequest{
				ListingID:      "lst-1",
				DeliveryOption: domain.DeliveryShipping,
				Address:        &domain.ShippingAddress{Name: "Binh", Address: "12 Ly Thuong Kiet"},
				Method:         "VNPAYQR",
			},
			mock: func(m mocks) {
				m.directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(testListing(), nil)
			},
			expError: domain.ErrMissingShippingInfo,
		},
		{
			name: "unknown delivery option",
			req: port.CreateOrderRequest{
				ListingID: "lst-1",
				Method:    "VNPAYQR",
			},
			mock: func(m mocks) {
				m.directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(testListing(), nil)
			},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			placement, err := s.CreateDepositOrder(context.Background(), 1, test.req)

			assert.Nil(t, placement)
			assert.Equal(t, test.expError, err)
		})
	}

	t.Run("pickup order opens deposit payment", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(testListing(), nil)
			m.directory.EXPECT().GetSellerForShowroom(gomock.Any(), "sr-1").
				Return(&port.Seller{ID: 2, Name: "AutoHouse"}, nil)
			m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
					return o, nil
				})
			m.metrics.EXPECT().OrderCreated()
			m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req port.InitiateRequest) (string, error) {
					assert.Equal(t, domain.PurposeDeposit, req.Purpose)
					assert.Zero(t, decimal.MustParse("6600000").Cmp(req.Amount))
					return "https://gateway.example/pay/1", nil
				})
		})

		placement, err := s.CreateDepositOrder(context.Background(), 1, port.CreateOrderRequest{
			ListingID:      "lst-1",
			DeliveryOption: domain.DeliveryPickup,
			ShowroomID:     "sr-1",
			Method:         "VNPAYQR",
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://gateway.example/pay/1", placement.RedirectURL)
		assert.Equal(t, domain.StatusPendingDeposit, placement.Order.Status())
		assert.Equal(t, uint64(2), placement.Order.SellerID)
		assert.Zero(t, decimal.MustParse("66000000").Cmp(placement.Order.TotalPrice))
		// price snapshot excludes shipping on pickup
		assert.Zero(t, decimal.Zero.Cmp(placement.Order.ShippingCost))
	})

	t.Run("shipping order uses profile address and shipping fee", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(testListing(), nil)
			m.directory.EXPECT().GetUser(gomock.Any(), uint64(1)).
				Return(&port.UserProfile{
					ID: 1, Name: "Binh", Address: "12 Ly Thuong Kiet", Phone: "0900000000",
				}, nil)
			m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
					return o, nil
				})
			m.metrics.EXPECT().OrderCreated()
			m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
				Return("https://gateway.example/pay/2", nil)
		})

		placement, err := s.CreateDepositOrder(context.Background(), 1, port.CreateOrderRequest{
			ListingID:         "lst-1",
			DeliveryOption:    domain.DeliveryShipping,
			UseProfileAddress: true,
			Method:            "VNPAYQR",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Binh", placement.Order.ShippingAddress.Name)
		assert.Zero(t, decimal.MustParse("250000").Cmp(placement.Order.ShippingCost))
		assert.Zero(t, decimal.MustParse("66250000").Cmp(placement.Order.TotalPrice))
	})

	t.Run("gateway failure surfaces after order is stored", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(testListing(), nil)
			m.directory.EXPECT().GetSellerForShowroom(gomock.Any(), "sr-1").
				Return(&port.Seller{ID: 2}, nil)
			m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
					return o, nil
				})
			m.metrics.EXPECT().OrderCreated()
			m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
				Return("", domain.ErrGatewayUnavailable)
		})

		placement, err := s.CreateDepositOrder(context.Background(), 1, port.CreateOrderRequest{
			ListingID:      "lst-1",
			DeliveryOption: domain.DeliveryPickup,
			ShowroomID:     "sr-1",
			Method:         "VNPAYQR",
		})

		assert.Nil(t, placement)
		assert.Equal(t, domain.ErrGatewayUnavailable, err)
	})
}

func TestService_CreateFullPaymentOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, _ := newTestService(t, mockCtrl, func(m mocks) {
		m.directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(testListing(), nil)
		m.directory.EXPECT().GetSellerForShowroom(gomock.Any(), "sr-1").
			Return(&port.Seller{ID: 2}, nil)
		m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				return o, nil
			})
		m.metrics.EXPECT().OrderCreated()
		m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req port.InitiateRequest) (string, error) {
				assert.Equal(t, domain.PurposeFullPayment, req.Purpose)
				assert.Zero(t, decimal.MustParse("66000000").Cmp(req.Amount))
				return "https://gateway.example/pay/3", nil
			})
	})

	placement, err := s.CreateFullPaymentOrder(context.Background(), 1, port.CreateOrderRequest{
		ListingID:      "lst-1",
		DeliveryOption: domain.DeliveryPickup,
		ShowroomID:     "sr-1",
		Method:         "VNPAYQR",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://gateway.example/pay/3", placement.RedirectURL)
}

func TestService_ConfirmFullPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	t.Run("missing payment method", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, nil)

		placement, err := s.ConfirmFullPayment(context.Background(), 1, orderID, "", nil)

		assert.Nil(t, placement)
		assert.Equal(t, domain.ErrMissingPaymentMethod, err)
	})

	t.Run("opens remaining balance payment", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					order := depositPaidOrder(orderID)
					if err := fn(order); err != nil {
						return nil, err
					}
					return order, nil
				})
			m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req port.InitiateRequest) (string, error) {
					assert.Equal(t, domain.PurposeFullPayment, req.Purpose)
					assert.Zero(t, decimal.MustParse("59400000").Cmp(req.Amount))
					return "https://gateway.example/pay/4", nil
				})
		})

		placement, err := s.ConfirmFullPayment(context.Background(), 1, orderID, "VNPAYQR", nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPendingFullPayment, placement.Order.Status())
	})

	t.Run("buyer names the handover date", func(t *testing.T) {
		handover := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					order := depositPaidOrder(orderID)
					if err := fn(order); err != nil {
						return nil, err
					}
					return order, nil
				})
			m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
				Return("https://gateway.example/pay/5", nil)
		})

		placement, err := s.ConfirmFullPayment(context.Background(), 1, orderID, "VNPAYQR", &handover)

		assert.NoError(t, err)
		if assert.NotNil(t, placement.Order.ActualDeliveryDate) {
			assert.Equal(t, handover, *placement.Order.ActualDeliveryDate)
		}
	})

	t.Run("handover date is write-once", func(t *testing.T) {
		first := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
		second := first.AddDate(0, 0, 7)
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					order := depositPaidOrder(orderID)
					order.ActualDeliveryDate = &first
					if err := fn(order); err != nil {
						return nil, err
					}
					return order, nil
				})
			m.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
				Return("https://gateway.example/pay/6", nil)
		})

		placement, err := s.ConfirmFullPayment(context.Background(), 1, orderID, "VNPAYQR", &second)

		assert.NoError(t, err)
		assert.Equal(t, &first, placement.Order.ActualDeliveryDate)
	})

	t.Run("foreign buyer forbidden", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					if err := fn(depositPaidOrder(orderID)); err != nil {
						return nil, err
					}
					return nil, nil
				})
		})

		placement, err := s.ConfirmFullPayment(context.Background(), 99, orderID, "VNPAYQR", nil)

		assert.Nil(t, placement)
		assert.Equal(t, domain.ErrForbidden, err)
	})
}

func TestService_ApplyPaymentResult(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	t.Run("declined payment leaves order untouched", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, nil)

		order, err := s.ApplyPaymentResult(context.Background(), &domain.PaymentAttempt{
			OrderID:    orderID,
			Purpose:    domain.PurposeDeposit,
			Succeeded:  false,
			ResultCode: "24",
		})

		assert.Nil(t, order)
		assert.Equal(t, domain.ErrPaymentFailed, err)
	})

	t.Run("duplicate confirmation is a no-op success", func(t *testing.T) {
		current := depositPaidOrder(orderID)
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				Return(nil, domain.ErrDuplicateConfirmation)
			m.metrics.EXPECT().DuplicateConfirmation()
			m.repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(current, nil)
		})

		order, err := s.ApplyPaymentResult(context.Background(), &domain.PaymentAttempt{
			OrderID:       orderID,
			Purpose:       domain.PurposeDeposit,
			Amount:        decimal.MustParse("6600000"),
			TransactionID: "tx-1",
			Succeeded:     true,
		})

		assert.NoError(t, err)
		assert.Same(t, current, order)
	})

	t.Run("deposit confirmation advances order and sends receipt", func(t *testing.T) {
		receiptSent := make(chan struct{})
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					order := depositPaidOrder(orderID)
					order.StatusHistory = order.StatusHistory[:1]
					order.DepositPayment = nil
					if err := fn(order); err != nil {
						return nil, err
					}
					return order, nil
				})
			m.metrics.EXPECT().PaymentApplied("DEPOSIT")
			m.directory.EXPECT().GetUser(gomock.Any(), uint64(1)).
				Return(&port.UserProfile{ID: 1, Email: "binh@example.com"}, nil)
			m.notifier.EXPECT().OrderReceipt(gomock.Any(), gomock.Any(), "binh@example.com").
				DoAndReturn(func(context.Context, *domain.Order, string) error {
					close(receiptSent)
					return nil
				})
		})

		order, err := s.ApplyPaymentResult(context.Background(), &domain.PaymentAttempt{
			OrderID:       orderID,
			Purpose:       domain.PurposeDeposit,
			Amount:        decimal.MustParse("6600000"),
			Method:        "VNPAYQR",
			TransactionID: "tx-1",
			Succeeded:     true,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDepositPaid, order.Status())

		select {
		case <-receiptSent:
		case <-time.After(time.Second):
			t.Fatal("receipt was not sent")
		}
	})

	t.Run("full payment sets expected delivery date", func(t *testing.T) {
		receiptSent := make(chan struct{})
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					order := depositPaidOrder(orderID)
					if err := fn(order); err != nil {
						return nil, err
					}
					return order, nil
				})
			m.metrics.EXPECT().PaymentApplied("FULL_PAYMENT")
			m.directory.EXPECT().GetUser(gomock.Any(), uint64(1)).
				Return(&port.UserProfile{ID: 1, Email: "binh@example.com"}, nil)
			m.notifier.EXPECT().OrderReceipt(gomock.Any(), gomock.Any(), "binh@example.com").
				DoAndReturn(func(context.Context, *domain.Order, string) error {
					close(receiptSent)
					return nil
				})
		})

		order, err := s.ApplyPaymentResult(context.Background(), &domain.PaymentAttempt{
			OrderID:       orderID,
			Purpose:       domain.PurposeFullPayment,
			Amount:        decimal.MustParse("59400000"),
			Method:        "VNPAYQR",
			TransactionID: "tx-2",
			Succeeded:     true,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPaymentComplete, order.Status())
		if assert.NotNil(t, order.ExpectedDeliveryDate) {
			assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *order.ExpectedDeliveryDate, time.Minute)
		}

		select {
		case <-receiptSent:
		case <-time.After(time.Second):
			t.Fatal("receipt was not sent")
		}
	})

	t.Run("amount mismatch propagates", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					if err := fn(depositPaidOrder(orderID)); err != nil {
						return nil, err
					}
					return nil, nil
				})
		})

		order, err := s.ApplyPaymentResult(context.Background(), &domain.PaymentAttempt{
			OrderID:       orderID,
			Purpose:       domain.PurposeFullPayment,
			Amount:        decimal.MustParse("100"),
			TransactionID: "tx-3",
			Succeeded:     true,
		})

		assert.Nil(t, order)
		assert.Equal(t, domain.ErrAmountMismatch, err)
	})
}

func TestService_GatewayChannels(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("untrusted return rejected", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.gateway.EXPECT().DecodeReturn(gomock.Any(), gomock.Any()).
				Return(nil, domain.ErrUntrustedCallback)
			m.metrics.EXPECT().UntrustedCallback()
		})

		order, err := s.HandleGatewayReturn(context.Background(), nil)

		assert.Nil(t, order)
		assert.Equal(t, domain.ErrUntrustedCallback, err)
	})

	t.Run("untrusted notification rejected", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.gateway.EXPECT().DecodeNotification(gomock.Any(), gomock.Any()).
				Return(nil, domain.ErrUntrustedCallback)
			m.metrics.EXPECT().UntrustedCallback()
		})

		order, err := s.HandleGatewayNotification(context.Background(), []byte("{}"))

		assert.Nil(t, order)
		assert.Equal(t, domain.ErrUntrustedCallback, err)
	})

	t.Run("declined result routed through either channel", func(t *testing.T) {
		attempt := &domain.PaymentAttempt{
			OrderID:    uuid.New(),
			Purpose:    domain.PurposeDeposit,
			Succeeded:  false,
			ResultCode: "24",
		}
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.gateway.EXPECT().DecodeNotification(gomock.Any(), gomock.Any()).
				Return(attempt, nil)
		})

		order, err := s.HandleGatewayNotification(context.Background(), []byte("{}"))

		assert.Nil(t, order)
		assert.Equal(t, domain.ErrPaymentFailed, err)
	})
}

func TestService_GetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	type getOrderTest struct {
		name     string
		callerID uint64
		expError error
	}

	tests := []getOrderTest{
		{name: "buyer reads own order", callerID: 1},
		{name: "seller reads own order", callerID: 2},
		{name: "stranger forbidden", callerID: 99, expError: domain.ErrForbidden},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := depositPaidOrder(orderID)
			s, _ := newTestService(t, mockCtrl, func(m mocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(order, nil)
			})

			result, err := s.GetOrder(context.Background(), test.callerID, orderID)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Same(t, order, result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_UpdateDeliveryStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	t.Run("unknown status", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, nil)

		order, err := s.UpdateDeliveryStatus(context.Background(), 2, orderID,
			"SHIPPED", nil, nil, "")

		assert.Nil(t, order)
		assert.Equal(t, domain.ErrBadRequest, err)
	})

	t.Run("seller readies a paid order", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					order := depositPaidOrder(orderID)
					order.FullPayment = &domain.Payment{
						Amount:        decimal.MustParse("59400000"),
						TransactionID: "tx-2",
					}
					order.StatusHistory = append(order.StatusHistory, domain.StatusEntry{
						Status: domain.StatusPaymentComplete, Timestamp: time.Now(),
					})
					if err := fn(order); err != nil {
						return nil, err
					}
					return order, nil
				})
		})

		order, err := s.UpdateDeliveryStatus(context.Background(), 2, orderID,
			domain.StatusReadyForDelivery, nil, nil, "washed and fueled")

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusReadyForDelivery, order.Status())
	})

	t.Run("foreign seller forbidden", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					if err := fn(depositPaidOrder(orderID)); err != nil {
						return nil, err
					}
					return nil, nil
				})
		})

		order, err := s.UpdateDeliveryStatus(context.Background(), 99, orderID,
			domain.StatusReadyForDelivery, nil, nil, "")

		assert.Nil(t, order)
		assert.Equal(t, domain.ErrForbidden, err)
	})
}

func TestService_CloseOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	t.Run("buyer cancels", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					order := depositPaidOrder(orderID)
					if err := fn(order); err != nil {
						return nil, err
					}
					return order, nil
				})
			m.metrics.EXPECT().OrderClosed("CANCELLED")
		})

		order, err := s.CancelOrder(context.Background(), 1, orderID, "changed mind")

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, order.Status())
	})

	t.Run("seller refunds", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					order := depositPaidOrder(orderID)
					if err := fn(order); err != nil {
						return nil, err
					}
					return order, nil
				})
			m.metrics.EXPECT().OrderClosed("REFUNDED")
		})

		order, err := s.RefundOrder(context.Background(), 2, orderID, "defect found")

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusRefunded, order.Status())
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl, func(m mocks) {
			m.repo.EXPECT().UpdateOrderTx(gomock.Any(), orderID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
					if err := fn(depositPaidOrder(orderID)); err != nil {
						return nil, err
					}
					return nil, nil
				})
		})

		order, err := s.CancelOrder(context.Background(), 99, orderID, "")

		assert.Nil(t, order)
		assert.Equal(t, domain.ErrForbidden, err)
	})
}

func TestService_RenderAgreement(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	order := depositPaidOrder(orderID)

	s, _ := newTestService(t, mockCtrl, func(m mocks) {
		m.repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(order, nil)
		m.directory.EXPECT().GetUser(gomock.Any(), uint64(1)).
			Return(&port.UserProfile{ID: 1, Name: "Binh"}, nil)
		m.directory.EXPECT().GetSeller(gomock.Any(), uint64(2)).
			Return(&port.Seller{ID: 2, Name: "AutoHouse"}, nil)
	})

	doc, err := s.RenderAgreement(context.Background(), 1, orderID)

	assert.NoError(t, err)
	assert.Equal(t, order.ID.String(), doc.OrderID)
	assert.Equal(t, "Binh", doc.Buyer.Name)
	assert.Equal(t, "AutoHouse", doc.Seller.Name)
}
