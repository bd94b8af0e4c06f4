package booking

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// CanTransition encodes the booking lifecycle: a pending booking is
// confirmed by payment or cancelled; a confirmed booking may still be
// cancelled. Cancelled is terminal.
func (s Status) CanTransition(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCancelled
	default:
		return false
	}
}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// TimeSlots is the fixed list of bookable slot labels shown on the venue
// page. The persisted time_slot is the label, not a structured interval.
var TimeSlots = []string{
	"06:00 - 07:00",
	"07:00 - 08:00",
	"08:00 - 09:00",
	"09:00 - 10:00",
	"10:00 - 11:00",
	"16:00 - 17:00",
	"17:00 - 18:00",
	"18:00 - 19:00",
	"19:00 - 20:00",
	"20:00 - 21:00",
	"21:00 - 22:00",
}

func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type Booking struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	VenueID       string    `db:"venue_id" json:"venue_id"`
	BookingDate   string    `db:"booking_date" json:"booking_date"`
	TimeSlot      string    `db:"time_slot" json:"time_slot"`
	Price         float64   `db:"price" json:"price"`
	Status        Status    `db:"status" json:"status"`
	CreditsEarned float64   `db:"credits_earned" json:"credits_earned"`
	CreditsUsed   float64   `db:"credits_used" json:"credits_used"`
	SessionID     *string   `db:"session_id" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type BookingWithVenue struct {
	Booking
	VenueName     string  `db:"venue_name" json:"venue_name"`
	VenueSport    string  `db:"venue_sport" json:"venue_sport"`
	VenueEmoji    *string `db:"venue_emoji" json:"venue_emoji,omitempty"`
	VenueLocation string  `db:"venue_location" json:"venue_location"`
}

type CreateBookingRequest struct {
	VenueID     string `json:"venue_id" binding:"required,uuid"`
	BookingDate string `json:"booking_date" binding:"required"`
	TimeSlot    string `json:"time_slot" binding:"required,max=50"`
}

type CancelBookingResponse struct {
	Message string `json:"message" example:"Booking cancelled successfully"`
}
