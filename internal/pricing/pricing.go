package pricing

import "errors"

// TaxRatePercent is the flat tax rate applied to every booking subtotal.
const TaxRatePercent = 6

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidPrice    = errors.New("unit price must be non-negative")
)

// Quote holds the derived amounts for a booking before any discount.
// Amounts are whole currency units.
type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Taxes    int64 `json:"taxes"`
	Total    int64 `json:"total"`
}

// Compute derives subtotal, taxes and total from a unit price and quantity.
func Compute(unitPrice int64, quantity int) (Quote, error) {
	if quantity < 1 {
		return Quote{}, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return Quote{}, ErrInvalidPrice
	}

	subtotal := unitPrice * int64(quantity)
	taxes := TaxOn(subtotal)

	return Quote{
		Subtotal: subtotal,
		Taxes:    taxes,
		Total:    subtotal + taxes,
	}, nil
}

// TaxOn returns the tax on a subtotal, rounded half-up to the nearest
// whole currency unit.
func TaxOn(subtotal int64) int64 {
	return (subtotal*TaxRatePercent + 50) / 100
}

// ApplyDiscount returns the payable total after a discount. The result is
// deliberately not clamped at zero: fixed discounts are capped at the
// subtotal by the promo engine, percentage discounts are not.
func ApplyDiscount(q Quote, discount int64) int64 {
	return q.Total - discount
}
