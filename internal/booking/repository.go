package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

const bookingColumns = `
	id, user_id, venue_id, booking_date, time_slot, price, status,
	credits_earned, credits_used, session_id, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID, venueID, bookingDate, timeSlot string, price float64) (*Booking, error) {
	query := `
		INSERT INTO bookings (user_id, venue_id, booking_date, time_slot, price, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, userID, venueID, bookingDate, timeSlot, price)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// UpdateStatus moves a booking between statuses. The current status is
// part of the WHERE clause so an illegal or raced transition affects zero
// rows instead of clobbering state.
func (r *repository) UpdateStatus(ctx context.Context, id string, from, to Status) error {
	query := `
		UPDATE bookings
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

func (r *repository) SetSessionID(ctx context.Context, id, sessionID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET session_id = $2, updated_at = NOW() WHERE id = $1`,
		id, sessionID)
	return err
}

func (r *repository) UserHasBookingForSlot(ctx context.Context, userID, venueID, bookingDate, timeSlot string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND venue_id = $2 AND booking_date = $3
			  AND time_slot = $4 AND status IN ('pending', 'confirmed')
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, venueID, bookingDate, timeSlot)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID string) ([]BookingWithVenue, error) {
	query := `
		SELECT
			b.id, b.user_id, b.venue_id, b.booking_date, b.time_slot,
			b.price, b.status, b.credits_earned, b.credits_used,
			b.session_id, b.created_at, b.updated_at,
			v.name AS venue_name,
			v.sport AS venue_sport,
			v.sport_emoji AS venue_emoji,
			v.location AS venue_location
		FROM bookings b
		JOIN venues v ON b.venue_id = v.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	var bookings []BookingWithVenue
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetWithVenue(ctx context.Context, id string) (*BookingWithVenue, error) {
	query := `
		SELECT
			b.id, b.user_id, b.venue_id, b.booking_date, b.time_slot,
			b.price, b.status, b.credits_earned, b.credits_used,
			b.session_id, b.created_at, b.updated_at,
			v.name AS venue_name,
			v.sport AS venue_sport,
			v.sport_emoji AS venue_emoji,
			v.location AS venue_location
		FROM bookings b
		JOIN venues v ON b.venue_id = v.id
		WHERE b.id = $1
	`

	var b BookingWithVenue
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBookingsByVenue(ctx context.Context, venueID string) ([]BookingWithVenue, error) {
	query := `
		SELECT
			b.id, b.user_id, b.venue_id, b.booking_date, b.time_slot,
			b.price, b.status, b.credits_earned, b.credits_used,
			b.session_id, b.created_at, b.updated_at,
			v.name AS venue_name,
			v.sport AS venue_sport,
			v.sport_emoji AS venue_emoji,
			v.location AS venue_location
		FROM bookings b
		JOIN venues v ON b.venue_id = v.id
		WHERE b.venue_id = $1
		ORDER BY b.booking_date DESC, b.created_at DESC
	`

	var bookings []BookingWithVenue
	err := r.db.SelectContext(ctx, &bookings, query, venueID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
