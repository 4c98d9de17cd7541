package service

import (
	"time"

	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/MikeRez0/automarket/internal/core/port"
)

// BuildAgreement projects an order snapshot plus its parties into a
// purchase-agreement document. Pure: the same inputs always produce the
// same document, whenever it is rendered.
func BuildAgreement(order *domain.Order, buyer *port.UserProfile, seller *port.Seller) *domain.Agreement {
	var due *time.Time
	if order.ExpectedDeliveryDate != nil {
		d := order.ExpectedDeliveryDate.AddDate(0, 0, -1)
		due = &d
	}

	payments := make([]domain.Payment, 0, 2)
	for _, p := range []*domain.Payment{order.DepositPayment, order.FullPayment} {
		if p != nil {
			payments = append(payments, *p)
		}
	}

	return &domain.Agreement{
		OrderID:   order.ID.String(),
		CreatedAt: order.CreatedAt,
		Status:    order.Status(),
		Buyer: domain.Party{
			Name:    buyer.Name,
			Address: buyer.Address,
			Phone:   buyer.Phone,
			Email:   buyer.Email,
		},
		Seller: domain.Party{
			Name:    seller.Name,
			Address: seller.Address,
			Phone:   seller.Phone,
			Email:   seller.Email,
		},
		Goods: domain.Goods{
			ListingID: order.ListingID,
			Make:      order.VehicleMake,
			Model:     order.VehicleModel,
			Year:      order.VehicleYear,
		},
		Price: domain.PriceBreakdown{
			VehiclePrice:    order.VehiclePrice,
			RegistrationFee: order.RegistrationFee,
			DealerFee:       order.DealerFee,
			Tax:             order.Tax,
			ShippingCost:    order.ShippingCost,
			Total:           order.TotalPrice,
			Deposit:         order.DepositAmount,
			Remaining:       order.RemainingBalance(),
		},
		Delivery: domain.DeliveryTerms{
			Option:       order.DeliveryOption,
			ShowroomID:   order.ShowroomID,
			Address:      order.ShippingAddress,
			ExpectedDate: order.ExpectedDeliveryDate,
			ActualDate:   order.ActualDeliveryDate,
		},
		PaymentDue:     due,
		InspectionDays: domain.InspectionDays,
		Payments:       payments,
	}
}
