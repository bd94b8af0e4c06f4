package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Ved-B18/ground-finder-pro/internal/metrics"
	"github.com/Ved-B18/ground-finder-pro/internal/venue"
)

var (
	ErrVenueNotBookable = errors.New("venue is not published")
	ErrDateInPast       = errors.New("cannot book a date in the past")
	ErrInvalidTimeSlot  = errors.New("invalid time slot")
	ErrInvalidDate      = errors.New("invalid booking date")
	ErrAlreadyBooked    = errors.New("you already have a booking for this slot")
	ErrNotOwner         = errors.New("booking belongs to another user")
)

type Service interface {
	Create(ctx context.Context, userID string, req *CreateBookingRequest) (*Booking, error)
	Get(ctx context.Context, userID, bookingID string) (*BookingWithVenue, error)
	ListMine(ctx context.Context, userID string) ([]BookingWithVenue, error)
	ListByVenue(ctx context.Context, hostID, venueID string) ([]BookingWithVenue, error)
	Cancel(ctx context.Context, userID, bookingID string) error
}

type service struct {
	repo      Repository
	venueRepo venue.Repository
}

func NewService(repo Repository, venueRepo venue.Repository) Service {
	return &service{repo: repo, venueRepo: venueRepo}
}

// Create records a pending booking. The price is copied from the venue's
// published rate at creation time; the client never supplies it. Overlap
// with other users' bookings for the same slot is not prevented.
func (s *service) Create(ctx context.Context, userID string, req *CreateBookingRequest) (*Booking, error) {
	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrDateInPast
	}

	if !ValidTimeSlot(req.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	v, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}
	if v.Status != venue.StatusPublished {
		return nil, ErrVenueNotBookable
	}

	exists, err := s.repo.UserHasBookingForSlot(ctx, userID, req.VenueID, req.BookingDate, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyBooked
	}

	b, err := s.repo.Create(ctx, userID, req.VenueID, req.BookingDate, req.TimeSlot, v.PricePerHour)
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking(string(StatusPending))

	return b, nil
}

func (s *service) Get(ctx context.Context, userID, bookingID string) (*BookingWithVenue, error) {
	b, err := s.repo.GetWithVenue(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotOwner
	}
	return b, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]BookingWithVenue, error) {
	return s.repo.GetUserBookings(ctx, userID)
}

// ListByVenue returns bookings on one of the host's own venues.
func (s *service) ListByVenue(ctx context.Context, hostID, venueID string) ([]BookingWithVenue, error) {
	v, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if v.HostID != hostID {
		return nil, ErrNotOwner
	}
	return s.repo.GetBookingsByVenue(ctx, venueID)
}

func (s *service) Cancel(ctx context.Context, userID, bookingID string) error {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if b.UserID != userID {
		return ErrNotOwner
	}

	if !b.Status.CanTransition(StatusCancelled) {
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, b.Status, StatusCancelled); err != nil {
		return err
	}

	metrics.RecordBookingCancellation()

	return nil
}
