package handlers

import (
	"net/http"

	"corebank/internal/dto"
	"corebank/internal/errors"
	"corebank/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	auth     services.AuthServiceInterface
	password services.PasswordServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth services.AuthServiceInterface, password services.PasswordServiceInterface) *AuthHandler {
	return &AuthHandler{auth: auth, password: password}
}

// Login verifies credentials and issues an access token
// @Summary Login
// @Description Verify credentials and issue a JWT access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Access token and user profile"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, err.Error())
	}

	res := h.auth.Login(req.Email, req.Password)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, res.Value)
}

// ChangePassword sets a new password for a user
// @Summary Change password
// @Description Change a user's password. Users changing their own must present the current password; administrators resetting someone else's do not.
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Target user ID (UUID)"
// @Param request body dto.ChangePasswordRequest true "Password change details"
// @Success 200 {object} object{message=string} "Password changed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Weak password or invalid payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Wrong current password"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - Target outside the acting user's scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - User not found"
// @Router /users/{id}/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	targetID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid user ID")
	}

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, err.Error())
	}

	st := h.password.ChangePassword(actorID, targetID, req.CurrentPassword, req.NewPassword)
	if st.IsFailure() {
		return SendStatus(c, st)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password changed successfully"})
}
