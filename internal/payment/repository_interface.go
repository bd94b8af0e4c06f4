package payment

import "context"

type Repository interface {
	RecordPayment(ctx context.Context, bookingID, userID string, amount, creditsEarned float64) (*Payment, error)
	GetByBookingID(ctx context.Context, bookingID string) (*Payment, error)
}
