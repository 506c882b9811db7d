package handlers

import (
	"net/http"

	"corebank/internal/dto"
	"corebank/internal/errors"
	"corebank/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles money movement HTTP requests
type TransactionHandler struct {
	moneyMovement services.MoneyMovementServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(moneyMovement services.MoneyMovementServiceInterface) *TransactionHandler {
	return &TransactionHandler{moneyMovement: moneyMovement}
}

// Deposit credits an account
// @Summary Deposit funds
// @Description Credit an account the acting user is authorized to operate
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DepositRequest true "Deposit details"
// @Success 201 {object} dto.TransactionView "Created ledger entry"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload or amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - Account belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_004 - Account frozen or concurrent update"
// @Router /transactions/deposit [post]
func (h *TransactionHandler) Deposit(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.DepositRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, err.Error())
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, err.Error())
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid account ID")
	}

	res := h.moneyMovement.Deposit(actorID, accountID, amount)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusCreated, res.Value)
}

// Withdraw debits an account
// @Summary Withdraw funds
// @Description Debit an account the acting user is authorized to operate
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.WithdrawRequest true "Withdrawal details"
// @Success 201 {object} dto.TransactionView "Created ledger entry"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload or amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - Account belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_003 - Insufficient funds or overdraft exceeded"
// @Router /transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, err.Error())
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, err.Error())
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid account ID")
	}

	res := h.moneyMovement.Withdraw(actorID, accountID, amount)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusCreated, res.Value)
}

// Transfer moves funds between two accounts
// @Summary Transfer funds
// @Description Atomically debit the source account (amount plus fee) and credit the target account
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionView "Created ledger entry"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload, amount, or same-account transfer"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - Source account belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_004 - Insufficient funds, frozen party, or concurrent update"
// @Router /transactions/transfer [post]
func (h *TransactionHandler) Transfer(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, err.Error())
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, err.Error())
	}

	sourceID, err := uuid.Parse(req.SourceAccountID)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid source account ID")
	}
	targetID, err := uuid.Parse(req.TargetAccountID)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid target account ID")
	}

	res := h.moneyMovement.Transfer(actorID, sourceID, targetID, amount)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusCreated, res.Value)
}

// GetTransaction retrieves one ledger entry
// @Summary Get transaction
// @Description Retrieve one ledger entry visible to the acting user
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Ledger entry with its lines"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_003 - Transaction outside the acting user's scope"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, "Invalid transaction ID")
	}

	res := h.moneyMovement.GetTransaction(actorID, transactionID)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, res.Value)
}

// ListTransactions retrieves the ledger entries visible to the actor
// @Summary List transactions
// @Description Retrieve paginated ledger entries within the acting user's scope
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(50)
// @Success 200 {object} dto.TransactionListResponse "Scoped transaction history"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	actorID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	res := h.moneyMovement.ListTransactions(actorID, offset, limit)
	if res.IsFailure() {
		return SendStatus(c, res.Status)
	}

	return c.JSON(http.StatusOK, res.Value)
}
