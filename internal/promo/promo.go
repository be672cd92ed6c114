package promo

import (
	"errors"
	"math"
	"strings"
)

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

var (
	ErrCodeRequired = errors.New("promo code is required")
	ErrInvalidCode  = errors.New("invalid promo code")
)

// Promo is a single discount entry: a percentage of the subtotal or a
// fixed amount in whole currency units.
type Promo struct {
	Kind     Kind
	Discount int64
}

// Table maps uppercase promo codes to their discounts. It is built once
// and injected read-only; lookups are case-insensitive.
type Table map[string]Promo

// NewTable canonicalises the entry codes to uppercase.
func NewTable(entries map[string]Promo) Table {
	t := make(Table, len(entries))
	for code, p := range entries {
		t[strings.ToUpper(code)] = p
	}
	return t
}

// DefaultTable returns the built-in promo catalog.
func DefaultTable() Table {
	return NewTable(map[string]Promo{
		"SAVE10":  {Kind: KindPercentage, Discount: 10},
		"FLAT100": {Kind: KindFixed, Discount: 100},
	})
}

// Result describes a successful validation. DiscountAmount is only set
// when a positive subtotal was supplied.
type Result struct {
	Code           string `json:"code"`
	Valid          bool   `json:"valid"`
	Kind           Kind   `json:"type"`
	Discount       int64  `json:"discount"`
	DiscountAmount *int64 `json:"discountAmount,omitempty"`
}

// Validate resolves a code against the table and, when a positive
// subtotal is given, computes the discount amount: percentage promos take
// round(subtotal*discount/100), fixed promos are capped at the subtotal
// so the discount can never exceed it.
func (t Table) Validate(code string, subtotal *float64) (Result, error) {
	if code == "" {
		return Result{}, ErrCodeRequired
	}

	canonical := strings.ToUpper(code)
	p, ok := t[canonical]
	if !ok {
		return Result{}, ErrInvalidCode
	}

	res := Result{
		Code:     canonical,
		Valid:    true,
		Kind:     p.Kind,
		Discount: p.Discount,
	}

	if subtotal != nil && *subtotal > 0 {
		var amount int64
		switch p.Kind {
		case KindPercentage:
			amount = int64(math.Round(*subtotal * float64(p.Discount) / 100))
		case KindFixed:
			amount = int64(math.Round(math.Min(float64(p.Discount), *subtotal)))
		}
		res.DiscountAmount = &amount
	}

	return res, nil
}
