package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

const chargeDescription = "Processing Payment"

// ChargeRequest carries the client-posted payment fields. Price is in whole
// currency units; the token comes from the client-side Stripe widget.
type ChargeRequest struct {
	Product    string
	TokenID    string
	TokenEmail string
	Price      float64
}

// Charger creates a charge at the payment processor. Consumers define the
// interface, not the Stripe implementation.
type Charger interface {
	ChargeCard(ctx context.Context, req *ChargeRequest) (*stripe.Charge, error)
}

type StripeCharger struct {
	sc *client.API
}

// NewStripeCharger builds a charger with Stripe's default backends.
func NewStripeCharger(secretKey string) *StripeCharger {
	return &StripeCharger{sc: client.New(secretKey, nil)}
}

// NewStripeChargerWithBackends lets tests point the client at a fake
// processor.

func NewStripeChargerWithBackends(secretKey string, backends *stripe.Backends) *StripeCharger {
	return &StripeCharger{sc: client.New(secretKey, backends)}
}

// ChargeCard creates a customer from the token, then charges that customer
// for the price converted to minor units (paise). The customer call must
// succeed before the charge is attempted; a customer created before a failed
// charge is not rolled back. No idempotency key is attached and the posted
// price is trusted, so client retries can double-charge.
func (c *StripeCharger) ChargeCard(ctx context.Context, req *ChargeRequest) (*stripe.Charge, error) {
	customerParams := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(req.TokenEmail),
	}
	if err := customerParams.SetSource(req.TokenID); err != nil {
		return nil, fmt.Errorf("failed to set customer source: %w", err)
	}

	customer, err := c.sc.Customers.New(customerParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	charge, err := c.sc.Charges.New(&stripe.ChargeParams{
		Params:       stripe.Params{Context: ctx},
		Amount:       stripe.Int64(MinorUnits(req.Price)),
		Currency:     stripe.String(string(stripe.CurrencyINR)),
		Customer:     stripe.String(customer.ID),
		ReceiptEmail: stripe.String(req.TokenEmail),
		Description:  stripe.String(chargeDescription),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create charge: %w", err)
	}

	return charge, nil
}

// MinorUnits converts a price in whole currency units to the processor's
// minor units (e.g. 250.50 rupees -> 25050 paise).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
