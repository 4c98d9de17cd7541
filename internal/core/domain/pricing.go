package domain

import (
	"github.com/govalues/decimal"
)

// Deposit bounds in whole currency units.
var (
	MinDeposit  = decimal.MustParse("5000000")
	MaxDeposit  = decimal.MustParse("10000000")
	depositRate = decimal.MustParse("0.1")
)

// Totals is the monetary breakdown of a purchase.
type Totals struct {
	VehiclePrice    decimal.Decimal
	RegistrationFee decimal.Decimal
	DealerFee       decimal.Decimal
	Tax             decimal.Decimal
	ShippingCost    decimal.Decimal
	Total           decimal.Decimal
}

// ComputeTotals derives the tax and the total price from a listing price
// and fee schedule. Tax is vehiclePrice * taxRate rounded to whole units.
// Pure, no I/O. Any negative input fails with ErrInvalidAmount.
func ComputeTotals(vehiclePrice, registrationFee, dealerFee, taxRate, shippingCost decimal.Decimal) (Totals, error) {
	for _, d := range []decimal.Decimal{vehiclePrice, registrationFee, dealerFee, taxRate, shippingCost} {
		if d.IsNeg() {
			return Totals{}, ErrInvalidAmount
		}
	}

	tax, err := vehiclePrice.Mul(taxRate)
	if err != nil {
		return Totals{}, ErrInvalidAmount
	}
	tax = tax.Round(0)

	total := vehiclePrice
	for _, d := range []decimal.Decimal{registrationFee, dealerFee, tax, shippingCost} {
		total, err = total.Add(d)
		if err != nil {
			return Totals{}, ErrInvalidAmount
		}
	}

	return Totals{
		VehiclePrice:    vehiclePrice,
		RegistrationFee: registrationFee,
		DealerFee:       dealerFee,
		Tax:             tax,
		ShippingCost:    shippingCost,
		Total:           total,
	}, nil
}

// ComputeDeposit is 10% of the total, clamped to [MinDeposit, MaxDeposit].
func ComputeDeposit(total decimal.Decimal) (decimal.Decimal, error) {
	if total.IsNeg() {
		return decimal.Zero, ErrInvalidAmount
	}

	deposit, err := total.Mul(depositRate)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	deposit = deposit.Round(0)

	if deposit.Cmp(MinDeposit) < 0 {
		return MinDeposit, nil
	}
	if deposit.Cmp(MaxDeposit) > 0 {
		return MaxDeposit, nil
	}
	return deposit, nil
}
