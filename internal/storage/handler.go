package storage

import (
	"errors"
	"net/http"

	"github.com/Ved-B18/ground-finder-pro/internal/auth"
	"github.com/Ved-B18/ground-finder-pro/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadAvatar godoc
// @Summary      Upload avatar image
// @Description  Stores a profile picture under the user's own folder and returns its public URL.
// @Tags         uploads
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file (JPG, PNG, or WebP, max 5MB)"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  gin.H
// @Failure      500   {object}  gin.H
// @Router       /uploads/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	h.upload(c, BucketAvatars, userID)
}

// UploadVenueImage godoc
// @Summary      Upload venue image
// @Description  Stores a venue photo and returns its public URL. Hosts only.
// @Tags         uploads
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true   "Image file (JPG, PNG, or WebP, max 10MB)"
// @Param        folder  formData  string  false  "Venue folder"
// @Success      200     {object}  uploadResponse
// @Failure      400     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /uploads/venue-image [post]
func (h *Handler) UploadVenueImage(c *gin.Context) {
	if _, exists := auth.GetUserID(c); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	h.upload(c, BucketVenueImages, c.PostForm("folder"))
}

func (h *Handler) upload(c *gin.Context, bucket, folder string) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := ValidateUpload(bucket, contentType, fileHeader.Size); err != nil {
		metrics.RecordUpload(bucket, "rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	url, err := h.svc.Upload(c.Request.Context(), bucket, folder, file, fileHeader.Size, contentType)
	if err != nil {
		if errors.Is(err, ErrInvalidFileType) || errors.Is(err, ErrFileTooLarge) {
			metrics.RecordUpload(bucket, "rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		metrics.RecordUpload(bucket, "failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	metrics.RecordUpload(bucket, "success")
	c.JSON(http.StatusOK, uploadResponse{URL: url})
}
