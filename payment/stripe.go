package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Bridge mints payment-intent client secrets for client-side capture.
type Bridge interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type StripeBridge struct{}

func NewStripeBridge(secretKey string) *StripeBridge {
	stripe.Key = secretKey
	return &StripeBridge{}
}

// CreateIntent creates a card-only USD payment intent for the given amount in
// cents and returns its client secret.
func (b *StripeBridge) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
