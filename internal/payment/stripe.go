package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

type StripeProvider struct {
	sc *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeProvider{sc: sc}
}

// CreateSession creates a one-time-payment checkout session with dynamic
// pricing. An existing Stripe customer is reused when one matches the
// player's email.
func (p *StripeProvider) CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error) {
	listParams := &stripe.CustomerListParams{
		Email: stripe.String(params.CustomerEmail),
	}
	listParams.Context = ctx
	listParams.Limit = stripe.Int64(1)

	var customerID string
	iter := p.sc.Customers.List(listParams)
	if iter.Next() {
		customerID = iter.Customer().ID
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Venue Booking: " + params.VenueName),
						Description: stripe.String(fmt.Sprintf("Booking for %s at %s", params.BookingDate, params.TimeSlot)),
					},
					UnitAmount: stripe.Int64(int64(math.Round(params.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	sessionParams.Context = ctx
	if customerID != "" {
		sessionParams.Customer = stripe.String(customerID)
	} else {
		sessionParams.CustomerEmail = stripe.String(params.CustomerEmail)
	}
	sessionParams.AddMetadata("booking_id", params.BookingID)
	sessionParams.AddMetadata("user_id", params.UserID)

	sess, err := p.sc.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

func (p *StripeProvider) IsSessionPaid(ctx context.Context, sessionID string) (bool, error) {
	getParams := &stripe.CheckoutSessionParams{}
	getParams.Context = ctx

	sess, err := p.sc.CheckoutSessions.Get(sessionID, getParams)
	if err != nil {
		return false, fmt.Errorf("fetching checkout session: %w", err)
	}

	return sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
