package tools

import (
	"fmt"

	"lumoxcloud/models"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// SetStripeKey configura a chave global do cliente Stripe.
func SetStripeKey(key string) {
	stripe.Key = key
}

// CreateCheckoutSession opens a Stripe checkout session for a single plan
// purchase and returns its redirectable URL. The success URL carries the
// user and plan ids back to /payment_success.
// Declared as a var so tests can swap it out.
var CreateCheckoutSession = func(userID int64, plan *models.Plan, baseURL string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(plan.Name),
					},
					UnitAmount: stripe.Int64(int64(plan.Price * 100)), // cents
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/payment_success?user_id=%d&plan_id=%d", baseURL, userID, plan.ID)),
		CancelURL:  stripe.String(baseURL + "/dashboard"),
	}

	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}
