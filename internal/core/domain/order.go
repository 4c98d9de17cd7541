package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	StatusPendingDeposit     OrderStatus = "PENDING_DEPOSIT"
	StatusDepositPaid        OrderStatus = "DEPOSIT_PAID"
	StatusPendingFullPayment OrderStatus = "PENDING_FULL_PAYMENT"
	StatusPaymentComplete    OrderStatus = "PAYMENT_COMPLETE"
	StatusReadyForDelivery   OrderStatus = "READY_FOR_DELIVERY"
	StatusDelivered          OrderStatus = "DELIVERED"
	StatusCancelled          OrderStatus = "CANCELLED"
	StatusRefunded           OrderStatus = "REFUNDED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPendingDeposit, StatusDepositPaid, StatusPendingFullPayment,
		StatusPaymentComplete, StatusReadyForDelivery, StatusDelivered,
		StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

// Priority orders statuses for reconciliation tie-breaks.
// Higher value wins on an exact timestamp tie.
func (s OrderStatus) Priority() int {
	switch s {
	case StatusDelivered:
		return 6
	case StatusPaymentComplete:
		return 5
	case StatusReadyForDelivery:
		return 4
	case StatusDepositPaid:
		return 3
	case StatusPendingFullPayment:
		return 2
	case StatusPendingDeposit:
		return 1
	default: // cancelled, refunded
		return 0
	}
}

type DeliveryOption string

const (
	DeliveryPickup   DeliveryOption = "PICKUP"
	DeliveryShipping DeliveryOption = "SHIPPING"
)

type PaymentPurpose string

const (
	PurposeDeposit     PaymentPurpose = "DEPOSIT"
	PurposeFullPayment PaymentPurpose = "FULL_PAYMENT"
)

type ShippingAddress struct {
	Name    string
	Address string
	Phone   string
}

func (a *ShippingAddress) Complete() bool {
	return a != nil && a.Name != "" && a.Address != "" && a.Phone != ""
}

// Payment is a write-once confirmation snapshot recorded from the gateway.
type Payment struct {
	Amount        decimal.Decimal
	Method        string
	TransactionID string
	PaidAt        time.Time
}

type StatusEntry struct {
	Status    OrderStatus
	Timestamp time.Time
	Notes     string
}

// PaymentAttempt carries a normalized gateway callback into the state
// machine. It is transient and never persisted on its own.
type PaymentAttempt struct {
	OrderID       uuid.UUID
	Purpose       PaymentPurpose
	Amount        decimal.Decimal
	Method        string
	TransactionID string
	Succeeded     bool
	ResultCode    string
}

type Order struct {
	ID        uuid.UUID
	ListingID string
	BuyerID   uint64
	SellerID  uint64

	VehicleMake  string
	VehicleModel string
	VehicleYear  int

	VehiclePrice    decimal.Decimal
	RegistrationFee decimal.Decimal
	DealerFee       decimal.Decimal
	Tax             decimal.Decimal
	ShippingCost    decimal.Decimal
	TotalPrice      decimal.Decimal
	DepositAmount   decimal.Decimal

	DeliveryOption  DeliveryOption
	ShowroomID      string
	ShippingAddress *ShippingAddress

	DepositPayment *Payment
	FullPayment    *Payment

	StatusHistory []StatusEntry

	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time

	CreatedAt time.Time
}

// Status is the last entry of the append-only history.
func (o *Order) Status() OrderStatus {
	if len(o.StatusHistory) == 0 {
		return StatusPendingDeposit
	}
	return o.StatusHistory[len(o.StatusHistory)-1].Status
}

// RemainingBalance is always recomputed from the recorded payments,
// never stored or decremented in place.
func (o *Order) RemainingBalance() decimal.Decimal {
	rest := o.TotalPrice
	for _, p := range []*Payment{o.DepositPayment, o.FullPayment} {
		if p == nil {
			continue
		}
		r, err := rest.Sub(p.Amount)
		if err != nil {
			return decimal.Zero
		}
		rest = r
	}
	if rest.IsNeg() {
		return decimal.Zero
	}
	return rest
}

func (o *Order) appendStatus(status OrderStatus, at time.Time, notes string) {
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:    status,
		Timestamp: at,
		Notes:     notes,
	})
}

// seenTransaction reports whether a gateway transaction id was already
// recorded on this order. Replays of the same id are no-ops.
func (o *Order) seenTransaction(txID string) bool {
	if o.DepositPayment != nil && o.DepositPayment.TransactionID == txID {
		return true
	}
	if o.FullPayment != nil && o.FullPayment.TransactionID == txID {
		return true
	}
	return false
}

func (o *Order) failClosed() error {
	if o.Status().Terminal() {
		return ErrOrderClosed
	}
	return ErrIllegalTransition
}

// ApplyDeposit records a confirmed deposit payment. Legal only from
// PENDING_DEPOSIT. A replayed transaction id returns
// ErrDuplicateConfirmation, which callers treat as success.
func (o *Order) ApplyDeposit(p Payment, now time.Time) error {
	if o.seenTransaction(p.TransactionID) {
		return ErrDuplicateConfirmation
	}
	if o.Status() != StatusPendingDeposit {
		return o.failClosed()
	}
	if p.Amount.Cmp(o.DepositAmount) != 0 {
		return ErrAmountMismatch
	}

	o.DepositPayment = &p
	o.appendStatus(StatusDepositPaid, now, "deposit confirmed: "+p.TransactionID)
	return nil
}

// ApplyFullPayment records the confirmed final payment. Legal from
// DEPOSIT_PAID and PENDING_FULL_PAYMENT for the remaining balance, and
// directly from PENDING_DEPOSIT for the immediate full-payment purchase
// type, where the amount must equal the total price.
func (o *Order) ApplyFullPayment(p Payment, now time.Time) error {
	if o.seenTransaction(p.TransactionID) {
		return ErrDuplicateConfirmation
	}

	var due decimal.Decimal
	switch o.Status() {
	case StatusDepositPaid, StatusPendingFullPayment:
		due = o.RemainingBalance()
	case StatusPendingDeposit:
		due = o.TotalPrice
	default:
		return o.failClosed()
	}
	if p.Amount.Cmp(due) != 0 {
		return ErrAmountMismatch
	}

	o.FullPayment = &p
	o.appendStatus(StatusPaymentComplete, now, "payment confirmed: "+p.TransactionID)
	return nil
}

// RequestFullPayment marks the order as awaiting the remaining-balance
// payment. Re-requesting while already pending is an idempotent no-op.
func (o *Order) RequestFullPayment(now time.Time) error {
	switch o.Status() {
	case StatusPendingFullPayment:
		return nil
	case StatusDepositPaid:
		o.appendStatus(StatusPendingFullPayment, now, "")
		return nil
	default:
		return o.failClosed()
	}
}

// AdvanceDelivery moves the order along the seller-driven
// PAYMENT_COMPLETE -> READY_FOR_DELIVERY -> DELIVERED path. Entering
// DELIVERED requires an actual delivery date, immutable once set.
func (o *Order) AdvanceDelivery(target OrderStatus, expected, actual *time.Time, notes string, now time.Time) error {
	cur := o.Status()
	if target == cur {
		// idempotent, no duplicate history entry
		return nil
	}

	legal := (cur == StatusPaymentComplete && target == StatusReadyForDelivery) ||
		(cur == StatusReadyForDelivery && target == StatusDelivered)
	if !legal {
		return o.failClosed()
	}

	if target == StatusDelivered && actual == nil && o.ActualDeliveryDate == nil {
		return ErrMissingDeliveryDate
	}

	if expected != nil {
		d := *expected
		o.ExpectedDeliveryDate = &d
	}
	if actual != nil && o.ActualDeliveryDate == nil {
		d := *actual
		o.ActualDeliveryDate = &d
	}
	o.appendStatus(target, now, notes)
	return nil
}

// Close cancels or refunds the order. Legal from any non-terminal state.
func (o *Order) Close(target OrderStatus, reason string, now time.Time) error {
	if !target.Terminal() {
		return ErrIllegalTransition
	}
	if o.Status() == target {
		return nil
	}
	if o.Status().Terminal() {
		return ErrOrderClosed
	}
	o.appendStatus(target, now, reason)
	return nil
}
