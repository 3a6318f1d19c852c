package handlers

import (
	"errors"
	"net/http"

	"pawbase-backend/internal/auth"
	apperrors "pawbase-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and identity endpoints
type AuthHandler struct {
	service *auth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in with email and password
// @Description Exchange credentials for a bearer access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} auth.LoginResponse "Access token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Incorrect email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/v1/auth/me
// @Summary Get the authenticated user
// @Description Return the profile of the user identified by the bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Authenticated user"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"full_name":  user.FullName,
		"role":       user.Role,
		"avatar_url": user.AvatarURL,
	})
}
