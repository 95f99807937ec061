package auth

import (
	"net/http"

	apperrors "shortlink-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Description Create an account and receive a JWT for it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register", "details": err.Error()})
		}
		return
	}

	h.setTokenCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange credentials for a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse "Logged in"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "details": err.Error()})
		}
		return
	}

	h.setTokenCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/auth/me
// @Summary Current account
// @Description Return the account behind the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse "Current account"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	})
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Clear the auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.service.CookieName(), "", -1, "/", "", h.service.cfg.SecureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	maxAge := int(h.service.cfg.TokenTTL().Seconds())
	c.SetCookie(h.service.CookieName(), token, maxAge, "/", "", h.service.cfg.SecureCookies, true)
}
