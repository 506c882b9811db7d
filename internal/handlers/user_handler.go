package handlers

import (
	"net/http"

	"corebank/internal/errors"
	"corebank/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles user directory HTTP requests
type UserHandler struct {
	users services.UserServiceInterface
	audit services.AuditServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(users services.UserServiceInterface, audit services.AuditServiceInterface) *UserHandler {
	return &UserHandler{users: users, audit: audit}
}

// GetUser retrieves one user record
// @Summary Get user
// @Description Retrieve one user record visible to the acting user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} models.User "User record"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid user ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - User outside the acting user's scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	targetID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid user ID")
	}

	res := h.users.GetUser(actorID, targetID)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, res.Value)
}

// ListUsers retrieves the user records visible to the actor
// @Summary List users
// @Description Retrieve paginated user records within the acting user's scope
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(50)
// @Success 200 {object} dto.UserListResponse "Scoped user list"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	res := h.users.ListUsers(actorID, offset, limit)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, res.Value)
}

// GetMyActivity retrieves the acting user's audit trail
// @Summary Get own activity
// @Description Retrieve the acting user's recorded money movement activity
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(50)
// @Success 200 {object} object{activity=[]models.AuditLog,total=int} "Audit trail"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Router /users/me/activity [get]
func (h *UserHandler) GetMyActivity(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	activity, total, err := h.audit.GetUserActivity(actorID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"activity": activity,
		"total":    total,
		"offset":   offset,
		"limit":    limit,
	})
}
