package payment

import "time"

// CreditRate is the share of a successful payment credited back to the
// player's profile.
const CreditRate = 0.05

type Payment struct {
	ID            string    `db:"id" json:"id"`
	BookingID     string    `db:"booking_id" json:"booking_id"`
	UserID        string    `db:"user_id" json:"user_id"`
	Amount        float64   `db:"amount" json:"amount"`
	CreditsEarned float64   `db:"credits_earned" json:"credits_earned"`
	PaymentStatus string    `db:"payment_status" json:"payment_status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CheckoutRequest is the body of POST /checkout. Field names follow the
// client payload. Amount is cross-checked against the booking's stored
// price; the session is always priced from the booking row.
type CheckoutRequest struct {
	BookingID   string  `json:"bookingId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	VenueName   string  `json:"venueName" binding:"required"`
	BookingDate string  `json:"bookingDate" binding:"required"`
	TimeSlot    string  `json:"timeSlot" binding:"required"`
}

type ConfirmResponse struct {
	Message string      `json:"message" example:"Payment successful"`
	Booking interface{} `json:"booking"`
	Payment *Payment    `json:"payment,omitempty"`
}
