package reservation

import (
	"barangay-reservation/internal/domain/resource"
)

type FeeCalculator interface {
	Fee(res *resource.Resource, quantity int) resource.Money
}

// FlatFeeCalculator charges a resource's payment amount once per
// reservation regardless of quantity.
type FlatFeeCalculator struct{}

func NewFlatFeeCalculator() *FlatFeeCalculator {
	return &FlatFeeCalculator{}
}

func (FlatFeeCalculator) Fee(res *resource.Resource, _ int) resource.Money {
	if !res.RequiresPayment() {
		return resource.Money{}
	}
	return res.PaymentAmount()
}

// PerUnitFeeCalculator charges the payment amount for every unit.
type PerUnitFeeCalculator struct{}

func NewPerUnitFeeCalculator() *PerUnitFeeCalculator {
	return &PerUnitFeeCalculator{}
}

func (PerUnitFeeCalculator) Fee(res *resource.Resource, quantity int) resource.Money {
	if !res.RequiresPayment() {
		return resource.Money{}
	}
	return res.PaymentAmount().Times(quantity)
}

// NewFeeCalculator picks the calculator for a configured mode ("flat" or
// "per_unit"); anything else falls back to flat.
func NewFeeCalculator(mode string) FeeCalculator {
	if mode == "per_unit" {
		return NewPerUnitFeeCalculator()
	}
	return NewFlatFeeCalculator()
}
