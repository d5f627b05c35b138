package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"finboard/internal/common"
	"finboard/internal/services"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	authService services.AuthService
}

func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login handles POST /auth/login. A failed credential check returns the
// short code "CredentialsSignin"; any other fault is a server error.
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return common.SendClientError(c, "Email and password are required")
	}

	token, err := h.authService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "CredentialsSignin"})
		}
		return common.SendServerError(c, "Authentication failed")
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
