package handlers

import (
	"errors"
	"net/http"

	apperrors "shortlink-backend/internal/errors"
	"shortlink-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RedirectHandler serves the public redirect path
type RedirectHandler struct {
	shortURLService service.ShortURLServiceInterface
}

// NewRedirectHandler creates a new redirect handler
func NewRedirectHandler(shortURLService service.ShortURLServiceInterface) *RedirectHandler {
	return &RedirectHandler{
		shortURLService: shortURLService,
	}
}

// Redirect handles GET /:shortId
// @Summary Resolve a short URL
// @Description Redirect to the original URL, counting the click. Unknown ids yield 404; expired ones 410 with the record kept.
// @Tags redirect
// @Produce json
// @Param shortId path string true "Short identifier"
// @Success 302 "Redirects to the original URL"
// @Failure 404 {object} map[string]interface{} "Unknown short URL"
// @Failure 410 {object} map[string]interface{} "Short URL expired"
// @Router /{shortId} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortID := c.Param("shortId")

	originalURL, err := h.shortURLService.Resolve(shortID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		case errors.Is(err, apperrors.ErrShortURLExpired):
			c.JSON(http.StatusGone, gin.H{"error": "This URL has expired"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to resolve URL", "details": err.Error()})
		}
		return
	}

	c.Redirect(http.StatusFound, originalURL)
}
