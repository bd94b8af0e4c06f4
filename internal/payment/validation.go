package payment

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxCheckoutAmount = 100000

var bookingDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var (
	ErrInvalidBookingID  = errors.New("invalid booking ID format")
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrAmountTooLarge    = errors.New("amount exceeds maximum limit")
	ErrVenueNameRequired = errors.New("venue name is required")
	ErrVenueNameTooLong  = errors.New("venue name too long")
	ErrInvalidDateFormat = errors.New("invalid date format (use YYYY-MM-DD)")
	ErrTimeSlotRequired  = errors.New("time slot is required")
	ErrTimeSlotTooLong   = errors.New("time slot too long")
)

// Validate normalizes the request in place and returns the first violation.
func (r *CheckoutRequest) Validate() error {
	if _, err := uuid.Parse(r.BookingID); err != nil {
		return ErrInvalidBookingID
	}

	if r.Amount <= 0 {
		return ErrAmountNotPositive
	}
	if r.Amount > maxCheckoutAmount {
		return ErrAmountTooLarge
	}

	r.VenueName = strings.TrimSpace(r.VenueName)
	if r.VenueName == "" {
		return ErrVenueNameRequired
	}
	if len(r.VenueName) > 200 {
		return ErrVenueNameTooLong
	}

	if !bookingDatePattern.MatchString(r.BookingDate) {
		return ErrInvalidDateFormat
	}

	r.TimeSlot = strings.TrimSpace(r.TimeSlot)
	if r.TimeSlot == "" {
		return ErrTimeSlotRequired
	}
	if len(r.TimeSlot) > 50 {
		return ErrTimeSlotTooLong
	}

	return nil
}
