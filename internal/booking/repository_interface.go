package booking

import "context"

type Repository interface {
	Create(ctx context.Context, userID, venueID, bookingDate, timeSlot string, price float64) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to Status) error
	SetSessionID(ctx context.Context, id, sessionID string) error
	UserHasBookingForSlot(ctx context.Context, userID, venueID, bookingDate, timeSlot string) (bool, error)
	GetUserBookings(ctx context.Context, userID string) ([]BookingWithVenue, error)
	GetWithVenue(ctx context.Context, id string) (*BookingWithVenue, error)
	GetBookingsByVenue(ctx context.Context, venueID string) ([]BookingWithVenue, error)
}
