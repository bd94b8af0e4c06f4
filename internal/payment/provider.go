package payment

import "context"

// Session is a hosted checkout session at the payment provider. The URL is
// where the client is redirected to pay.
type Session struct {
	ID  string
	URL string
}

type CreateSessionParams struct {
	BookingID     string
	UserID        string
	CustomerEmail string
	VenueName     string
	BookingDate   string
	TimeSlot      string
	Amount        float64
	SuccessURL    string
	CancelURL     string
}

// Provider abstracts the hosted-checkout provider so the service can be
// tested without network calls.
type Provider interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error)
	IsSessionPaid(ctx context.Context, sessionID string) (bool, error)
}
