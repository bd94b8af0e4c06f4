package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		BookingID:   "de305d54-75b4-431b-adb2-eb6b9e546014",
		Amount:      450,
		VenueName:   "Eastside Turf",
		BookingDate: "2026-09-15",
		TimeSlot:    "18:00 - 19:00",
	}
}

func TestCheckoutRequestValid(t *testing.T) {
	assert.NoError(t, validCheckoutRequest().Validate())
}

func TestCheckoutRequestBookingID(t *testing.T) {
	req := validCheckoutRequest()
	req.BookingID = "not-a-uuid"
	assert.ErrorIs(t, req.Validate(), ErrInvalidBookingID)

	req.BookingID = ""
	assert.ErrorIs(t, req.Validate(), ErrInvalidBookingID)
}

func TestCheckoutRequestAmount(t *testing.T) {
	req := validCheckoutRequest()
	req.Amount = 0
	assert.ErrorIs(t, req.Validate(), ErrAmountNotPositive)

	req.Amount = -10
	assert.ErrorIs(t, req.Validate(), ErrAmountNotPositive)

	req.Amount = 100000
	assert.NoError(t, req.Validate())

	req.Amount = 100000.01
	assert.ErrorIs(t, req.Validate(), ErrAmountTooLarge)
}

func TestCheckoutRequestVenueName(t *testing.T) {
	req := validCheckoutRequest()
	req.VenueName = "   "
	assert.ErrorIs(t, req.Validate(), ErrVenueNameRequired)

	req.VenueName = strings.Repeat("a", 201)
	assert.ErrorIs(t, req.Validate(), ErrVenueNameTooLong)

	req.VenueName = "  Eastside Turf  "
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Eastside Turf", req.VenueName)
}

func TestCheckoutRequestDate(t *testing.T) {
	for _, bad := range []string{"15-09-2026", "2026/09/15", "2026-9-15", "tomorrow", ""} {
		req := validCheckoutRequest()
		req.BookingDate = bad
		assert.ErrorIs(t, req.Validate(), ErrInvalidDateFormat, "date %q", bad)
	}
}

func TestCheckoutRequestTimeSlot(t *testing.T) {
	req := validCheckoutRequest()
	req.TimeSlot = " "
	assert.ErrorIs(t, req.Validate(), ErrTimeSlotRequired)

	req.TimeSlot = strings.Repeat("x", 51)
	assert.ErrorIs(t, req.Validate(), ErrTimeSlotTooLong)
}
