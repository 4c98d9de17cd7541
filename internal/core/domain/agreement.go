package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// InspectionDays is the buyer's inspection window after delivery.
const InspectionDays = 7

type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type Goods struct {
	ListingID string
	Make      string
	Model     string
	Year      int
}

type PriceBreakdown struct {
	VehiclePrice    decimal.Decimal
	RegistrationFee decimal.Decimal
	DealerFee       decimal.Decimal
	Tax             decimal.Decimal
	ShippingCost    decimal.Decimal
	Total           decimal.Decimal
	Deposit         decimal.Decimal
	Remaining       decimal.Decimal
}

type DeliveryTerms struct {
	Option       DeliveryOption
	ShowroomID   string
	Address      *ShippingAddress
	ExpectedDate *time.Time
	ActualDate   *time.Time
}

// Agreement is a purchase-agreement snapshot. It is a pure projection of
// an order and its parties: the same inputs always render the same
// document, before or after completion.
type Agreement struct {
	OrderID        string
	CreatedAt      time.Time
	Status         OrderStatus
	Buyer          Party
	Seller         Party
	Goods          Goods
	Price          PriceBreakdown
	Delivery       DeliveryTerms
	PaymentDue     *time.Time
	InspectionDays int
	Payments       []Payment
}
