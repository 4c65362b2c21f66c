package ports

import "context"

// PaymentClient charges and refunds students. Results are synchronous; a
// failed charge for a late return must prevent the return job from being
// created, so handlers call Charge before touching state.
type PaymentClient interface {
	// Charge collects amount from the student. The returned error wraps
	// PaymentFailed when the provider declines.
	Charge(ctx context.Context, studentID string, amount float64, description string) error

	// Refund returns amount to the student.
	Refund(ctx context.Context, studentID string, amount float64, description string) error
}
