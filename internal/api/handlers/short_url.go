package handlers

import (
	"net/http"

	"shortlink-backend/internal/auth"
	apperrors "shortlink-backend/internal/errors"
	"shortlink-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShortURLHandler handles HTTP requests for short URL operations
type ShortURLHandler struct {
	shortURLService service.ShortURLServiceInterface
}

// NewShortURLHandler creates a new short URL handler
func NewShortURLHandler(shortURLService service.ShortURLServiceInterface) *ShortURLHandler {
	return &ShortURLHandler{
		shortURLService: shortURLService,
	}
}

// CreateShortURL handles POST /api/v1/urls
// @Summary Shorten a URL
// @Description Create a short URL, optionally with a custom alias and an expiration option (never, 1h, 1d, 7d, 30d). Anonymous callers may create links too; authenticated callers own theirs.
// @Tags urls
// @Accept json
// @Produce json
// @Param request body service.CreateShortURLRequest true "URL to shorten"
// @Success 201 {object} service.ShortURLResponse "Short URL created"
// @Failure 400 {object} map[string]interface{} "Invalid URL, alias or expiry option"
// @Failure 409 {object} map[string]interface{} "Alias already taken"
// @Failure 429 {object} map[string]interface{} "Rate limited"
// @Failure 500 {object} map[string]interface{} "Could not allocate an id"
// @Security BearerAuth
// @Router /urls [post]
func (h *ShortURLHandler) CreateShortURL(c *gin.Context) {
	var req service.CreateShortURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var ownerID *uuid.UUID
	if id, ok := auth.GetUserID(c); ok {
		ownerID = &id
	}

	resp, err := h.shortURLService.Create(&req, ownerID)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": "This custom alias is already in use. Please choose another one."})
		case apperrors.IsTransient(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage temporarily unavailable, please retry"})
		default:
			// Includes the exhausted-generation case; safe to retry the request.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to shorten URL", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListShortURLs handles GET /api/v1/urls
// @Summary List own short URLs
// @Description Get all short URLs owned by the authenticated caller, newest first
// @Tags urls
// @Produce json
// @Success 200 {object} service.ShortURLListResponse "Short URLs"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Security BearerAuth
// @Router /urls [get]
func (h *ShortURLHandler) ListShortURLs(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.shortURLService.ListByOwner(ownerID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to list short URLs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteShortURL handles DELETE /api/v1/urls/:id
// @Summary Delete a short URL
// @Description Delete a short URL owned by the authenticated caller. Anonymous links cannot be deleted.
// @Tags urls
// @Produce json
// @Param id path string true "Short URL record ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 401 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Unknown short URL"
// @Security BearerAuth
// @Router /urls/{id} [delete]
func (h *ShortURLHandler) DeleteShortURL(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid short URL ID"})
		return
	}

	if err := h.shortURLService.Delete(id, ownerID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to delete short URL", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetQRCode handles GET /api/v1/urls/:id/qrcode
// @Summary QR code for a short URL
// @Description Render the short URL as a QR code data URL. Owner only.
// @Tags urls
// @Produce json
// @Param id path string true "Short URL record ID"
// @Success 200 {object} map[string]interface{} "QR code data URL"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 401 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Unknown short URL"
// @Security BearerAuth
// @Router /urls/{id}/qrcode [get]
func (h *ShortURLHandler) GetQRCode(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid short URL ID"})
		return
	}

	dataURL, err := h.shortURLService.QRCode(id, ownerID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "qr_code": dataURL})
}
