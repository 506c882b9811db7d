package handlers

import (
	"net/http"

	"corebank/internal/dto"
	"corebank/internal/errors"
	"corebank/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accounts services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// GetAccount retrieves one account
// @Summary Get account
// @Description Retrieve one account visible to the acting user, with derived overdraft figures
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Account with derived figures"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - Account outside the acting user's scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid account ID")
	}

	res := h.accounts.GetAccount(actorID, accountID)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(res.Value))
}

// ListAccounts retrieves the accounts visible to the actor
// @Summary List accounts
// @Description Retrieve paginated accounts within the acting user's scope
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(50)
// @Success 200 {object} dto.AccountListResponse "Scoped account list"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	res := h.accounts.ListAccounts(actorID, offset, limit)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, res.Value)
}

// ListAccountTransactions retrieves one account's ledger history
// @Summary List account transactions
// @Description Retrieve paginated ledger entries touching one account the acting user may view
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(50)
// @Success 200 {object} dto.TransactionListResponse "Account transaction history"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - Account outside the acting user's scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id}/transactions [get]
func (h *AccountHandler) ListAccountTransactions(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid account ID")
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	res := h.accounts.ListAccountTransactions(actorID, accountID, offset, limit)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, res.Value)
}

// SetAccountActive freezes or unfreezes an account
// @Summary Freeze or unfreeze account
// @Description Set an account's active flag. Users may never freeze their own accounts.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.SetAccountActiveRequest true "Desired active state"
// @Success 200 {object} dto.AccountResponse "Updated account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid account ID or payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - Operation outside the acting user's scope"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "SYSTEM_002 - Concurrent update detected"
// @Router /accounts/{id}/active [put]
func (h *AccountHandler) SetAccountActive(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid account ID")
	}

	var req dto.SetAccountActiveRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid request body")
	}

	res := h.accounts.SetAccountActive(actorID, accountID, req.Active)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(res.Value))
}
