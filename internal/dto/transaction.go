package dto

import (
	"time"

	"corebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money movement request DTOs. Amounts travel as strings so the handler
// controls decimal parsing instead of float JSON decoding.

// DepositRequest represents the request payload for a deposit
type DepositRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
	Amount    string `json:"amount" validate:"required"`
}

// WithdrawRequest represents the request payload for a withdrawal
type WithdrawRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
	Amount    string `json:"amount" validate:"required"`
}

// TransferRequest represents the request payload for a transfer
type TransferRequest struct {
	SourceAccountID string `json:"source_account_id" validate:"required,uuid"`
	TargetAccountID string `json:"target_account_id" validate:"required,uuid"`
	Amount          string `json:"amount" validate:"required"`
}

// TransactionView is the projection returned after a completed money
// movement. NewBalance is the acted-on account's balance after the
// mutation; for transfers that is the source account.
type TransactionView struct {
	ID              uuid.UUID       `json:"id"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	CurrencyCode    string          `json:"currency_code"`
	SourceAccountID *uuid.UUID      `json:"source_account_id,omitempty"`
	TargetAccountID *uuid.UUID      `json:"target_account_id,omitempty"`
	CreditedAmount  decimal.Decimal `json:"credited_amount"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionListResponse represents a paginated list of ledger entries
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}
