// Package payments implements the payment client port against Stripe.
package payments

import (
	"context"
	"log/slog"
	"math"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/customerbalancetransaction"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"moveout/internal/pkg/errs"
)

// StripeClient charges and refunds students through Stripe. Students are
// mapped to Stripe customers by ID, and refunds are credited to the
// customer balance.
type StripeClient struct {
	logger *slog.Logger
}

func NewStripeClient(apiKey string, logger *slog.Logger) *StripeClient {
	stripe.Key = apiKey
	return &StripeClient{logger: logger}
}

// Charge collects amount from the student with an off-session payment
// intent against their saved payment method.
func (c *StripeClient) Charge(ctx context.Context, studentID string, amount float64, description string) error {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(toCents(amount)),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Customer:    stripe.String(studentID),
		Description: stripe.String(description),
		Confirm:     stripe.Bool(true),
		OffSession:  stripe.Bool(true),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return errs.NewPaymentFailedError("charge", amount, err)
	}

	c.logger.Info("charged student",
		"student_id", studentID, "amount", amount, "payment_intent", intent.ID)
	return nil
}

// Refund credits amount back to the student's customer balance. Stripe
// balance transactions use negative amounts for credits.
func (c *StripeClient) Refund(ctx context.Context, studentID string, amount float64, description string) error {
	params := &stripe.CustomerBalanceTransactionParams{
		Customer:    stripe.String(studentID),
		Amount:      stripe.Int64(-toCents(amount)),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(description),
	}
	params.Context = ctx

	txn, err := customerbalancetransaction.New(params)
	if err != nil {
		return errs.NewPaymentFailedError("refund", amount, err)
	}

	c.logger.Info("refunded student",
		"student_id", studentID, "amount", amount, "balance_transaction", txn.ID)
	return nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
