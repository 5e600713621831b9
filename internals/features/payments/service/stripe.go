package service

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// InitStripe must be called once at bootstrap.
func InitStripe(secretKey string) {
	stripe.Key = secretKey
}

// CreatePaymentIntent asks the processor for a card intent and returns its
// client secret. Amount is in minor units (cents).
func CreatePaymentIntent(amountMinorUnits int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
