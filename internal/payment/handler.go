package payment

import (
	"errors"
	"net/http"

	"github.com/Ved-B18/ground-finder-pro/internal/api"
	"github.com/Ved-B18/ground-finder-pro/internal/auth"
	"github.com/Ved-B18/ground-finder-pro/internal/booking"
	"github.com/Ved-B18/ground-finder-pro/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidBookingID),
		errors.Is(err, ErrAmountNotPositive),
		errors.Is(err, ErrAmountTooLarge),
		errors.Is(err, ErrVenueNameRequired),
		errors.Is(err, ErrVenueNameTooLong),
		errors.Is(err, ErrInvalidDateFormat),
		errors.Is(err, ErrTimeSlotRequired),
		errors.Is(err, ErrTimeSlotTooLong):
		return true
	}
	return false
}

// CreateCheckout godoc
// @Summary      Create checkout session
// @Description  Opens a hosted payment session for a pending booking and returns the redirect URL.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRequest  true  "Checkout details"
// @Success      200      {object}  api.CheckoutResponse
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /checkout [post]
func (h *Handler) CreateCheckout(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	userEmail, _ := auth.GetUserEmail(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	url, err := h.svc.CreateCheckout(c.Request.Context(), userID, userEmail, &req)
	if err != nil {
		switch {
		case isValidationError(err):
			// Detail stays in the log; the client gets a generic message.
			logger.Error("Checkout validation failed", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		case errors.Is(err, ErrAmountMismatch), errors.Is(err, ErrBookingNotPayable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only pay for your own bookings"})
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			logger.Error("Checkout failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to process checkout. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, api.CheckoutResponse{URL: url})
}

// PaymentSuccess godoc
// @Summary      Confirm paid booking
// @Description  Verifies the checkout session was paid, confirms the booking, and grants credits. Safe to revisit.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        booking_id  query     string  true  "Booking ID"
// @Success      200         {object}  ConfirmResponse
// @Failure      400         {object}  gin.H
// @Failure      402         {object}  gin.H
// @Failure      403         {object}  gin.H
// @Failure      404         {object}  gin.H
// @Router       /payment-success [get]
func (h *Handler) PaymentSuccess(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookingID := c.Query("booking_id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	b, p, err := h.svc.ConfirmBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only confirm your own bookings"})
		case errors.Is(err, ErrBookingNotPayable), errors.Is(err, ErrNoCheckoutSession):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrPaymentNotVerified):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			logger.Error("Payment confirmation failed", "booking_id", bookingID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking"})
		}
		return
	}

	c.JSON(http.StatusOK, ConfirmResponse{Message: "Payment successful", Booking: b, Payment: p})
}
