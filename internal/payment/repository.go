package payment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Ved-B18/ground-finder-pro/internal/booking"
)

var ErrPaymentNotFound = errors.New("payment not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// RecordPayment confirms the pending booking, writes the payment row, and
// adds the earned credits to the player's profile balance in one
// transaction. A booking that is no longer pending means another
// confirmation already won; that surfaces as booking.ErrInvalidTransition
// and nothing is written.
func (r *repository) RecordPayment(ctx context.Context, bookingID, userID string, amount, creditsEarned float64) (*Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings
		 SET status = 'confirmed', credits_earned = $2, updated_at = NOW()
		 WHERE id = $1 AND status = 'pending'`,
		bookingID, creditsEarned,
	)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, booking.ErrInvalidTransition
	}

	var p Payment
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO payments (booking_id, user_id, amount, credits_earned, payment_status)
		 VALUES ($1, $2, $3, $4, 'completed')
		 RETURNING id, booking_id, user_id, amount, credits_earned, payment_status, created_at`,
		bookingID, userID, amount, creditsEarned,
	).StructScan(&p)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE profiles SET credits = credits + $2, updated_at = NOW() WHERE id = $1`,
		userID, creditsEarned,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetByBookingID(ctx context.Context, bookingID string) (*Payment, error) {
	var p Payment
	err := r.db.GetContext(ctx, &p,
		`SELECT id, booking_id, user_id, amount, credits_earned, payment_status, created_at
		 FROM payments
		 WHERE booking_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
