package venue

import (
	"errors"
	"net/http"

	"github.com/Ved-B18/ground-finder-pro/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// SaveDraft godoc
// @Summary      Save venue draft
// @Description  Creates or updates a draft listing from the wizard's accumulated state.
// @Tags         venues
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        venueID  query     string        false  "Existing draft ID"
// @Param        request  body      DraftRequest  true   "Draft fields"
// @Success      200      {object}  Venue
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /host/venues/draft [post]
func (h *Handler) SaveDraft(c *gin.Context) {
	hostID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draftID := c.Query("venueID")

	v, err := h.svc.SaveDraft(c.Request.Context(), hostID, draftID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own venues"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		}
		return
	}

	c.JSON(http.StatusOK, v)
}

// Publish godoc
// @Summary      Publish venue listing
// @Description  Validates required fields and makes the listing publicly bookable.
// @Tags         venues
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        venueID  query     string        false  "Existing draft ID"
// @Param        request  body      DraftRequest  true   "Listing fields"
// @Success      200      {object}  Venue
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /host/venues/publish [post]
func (h *Handler) Publish(c *gin.Context) {
	hostID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draftID := c.Query("venueID")

	v, err := h.svc.Publish(c.Request.Context(), hostID, draftID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingRequiredFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		case errors.Is(err, ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only publish your own venues"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish venue"})
		}
		return
	}

	c.JSON(http.StatusOK, v)
}

// Browse godoc
// @Summary      Browse published venues
// @Description  Lists published venues, optionally filtered by sport and city.
// @Tags         venues
// @Produce      json
// @Param        sport  query     string  false  "Filter by sport"
// @Param        city   query     string  false  "Filter by city"
// @Success      200    {array}   Venue
// @Failure      500    {object}  gin.H
// @Router       /venues [get]
func (h *Handler) Browse(c *gin.Context) {
	venues, err := h.svc.Browse(c.Request.Context(), c.Query("sport"), c.Query("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venues"})
		return
	}

	c.JSON(http.StatusOK, venues)
}

// Get godoc
// @Summary      Get venue
// @Description  Returns a published venue, or a draft for its owning host.
// @Tags         venues
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {object}  Venue
// @Failure      404      {object}  gin.H
// @Router       /venues/{venueID} [get]
func (h *Handler) Get(c *gin.Context) {
	requesterID, _ := auth.GetUserID(c)

	v, err := h.svc.Get(c.Request.Context(), c.Param("venueID"), requesterID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	c.JSON(http.StatusOK, v)
}

// ListMine godoc
// @Summary      List my venues
// @Description  Returns all listings of the authenticated host, drafts included.
// @Tags         venues
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Venue
// @Failure      500  {object}  gin.H
// @Router       /host/venues [get]
func (h *Handler) ListMine(c *gin.Context) {
	hostID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	venues, err := h.svc.ListMine(c.Request.Context(), hostID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venues"})
		return
	}

	c.JSON(http.StatusOK, venues)
}
