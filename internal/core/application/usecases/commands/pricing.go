package commands

import "moveout/internal/pkg/errs"

// Pricing holds the money knobs command handlers need: how much of an
// order's price a mover earns per job, and the per-day rate used for
// early-return refunds and late-return fees.
type Pricing struct {
	moverShareRate float64
	perDiemRate    float64
}

const (
	// DefaultMoverShareRate is the fraction of the order's total price a
	// mover earns for completing one of its jobs.
	DefaultMoverShareRate = 0.2

	// DefaultPerDiemRate is the per-day adjustment for returns that are
	// earlier or later than agreed at checkout.
	DefaultPerDiemRate = 5.0
)

// NewPricing validates and builds a pricing policy.
func NewPricing(moverShareRate, perDiemRate float64) (Pricing, error) {
	if moverShareRate <= 0 || moverShareRate > 1 {
		return Pricing{}, errs.NewValueIsOutOfRangeError("moverShareRate", moverShareRate, 0, 1)
	}
	if perDiemRate < 0 {
		return Pricing{}, errs.NewValueIsInvalidError("perDiemRate")
	}
	return Pricing{moverShareRate: moverShareRate, perDiemRate: perDiemRate}, nil
}

// DefaultPricing returns the policy used unless configuration overrides it.
func DefaultPricing() Pricing {
	p, err := NewPricing(DefaultMoverShareRate, DefaultPerDiemRate)
	if err != nil {
		panic(err) // constants, cannot fail
	}
	return p
}

// MoverJobPrice is the credit a mover earns for one job of the given order.
func (p Pricing) MoverJobPrice(orderTotalPrice float64) float64 {
	return orderTotalPrice * p.moverShareRate
}

// ReturnAdjustment is the absolute per-diem amount for a return that is
// daysDifference whole days away from the agreed return time.
func (p Pricing) ReturnAdjustment(daysDifference int) float64 {
	if daysDifference < 0 {
		daysDifference = -daysDifference
	}
	return float64(daysDifference) * p.perDiemRate
}

// PerDiemRate returns the configured per-day rate.
func (p Pricing) PerDiemRate() float64 {
	return p.perDiemRate
}
