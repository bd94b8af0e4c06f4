package booking

import (
	"errors"
	"net/http"

	"github.com/Ved-B18/ground-finder-pro/internal/auth"
	"github.com/Ved-B18/ground-finder-pro/internal/venue"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create godoc
// @Summary      Create booking
// @Description  Creates a pending booking for the chosen date and slot. Price is taken from the venue's rate.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking details"
// @Success      201      {object}  Booking
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.svc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrDateInPast), errors.Is(err, ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, venue.ErrVenueNotFound), errors.Is(err, ErrVenueNotBookable):
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		case errors.Is(err, ErrAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// Get godoc
// @Summary      Get booking
// @Description  Returns one of the authenticated user's bookings with venue details.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  BookingWithVenue
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /bookings/{bookingID} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	b, err := h.svc.Get(c.Request.Context(), userID, c.Param("bookingID"))
	if err != nil {
		if errors.Is(err, ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own bookings"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListMine godoc
// @Summary      List my bookings
// @Description  Returns bookings of the authenticated user.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingWithVenue
// @Failure      500  {object}  gin.H
// @Router       /bookings [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookings, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListByVenue godoc
// @Summary      List bookings for a venue
// @Description  Returns all bookings for one of the host's venues.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {array}   BookingWithVenue
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /host/venues/{venueID}/bookings [get]
func (h *Handler) ListByVenue(c *gin.Context) {
	hostID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookings, err := h.svc.ListByVenue(c.Request.Context(), hostID, c.Param("venueID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view bookings on your own venues"})
		case errors.Is(err, venue.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		}
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Cancel godoc
// @Summary      Cancel booking
// @Description  Cancels an existing booking of the current user.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  CancelBookingResponse
// @Failure      400        {object}  gin.H
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	err := h.svc.Cancel(c.Request.Context(), userID, c.Param("bookingID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only cancel your own bookings"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Booking is already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, CancelBookingResponse{Message: "Booking cancelled successfully"})
}
