package dto

import (
	"corebank/internal/models"

	"github.com/shopspring/decimal"
)

// AccountResponse represents a single account in API responses,
// enriched with the derived overdraft figures.
type AccountResponse struct {
	*models.Account
	AvailableBalance         decimal.Decimal `json:"available_balance"`
	MaxWithdrawalAmount      decimal.Decimal `json:"max_withdrawal_amount"`
	OverdraftUsed            decimal.Decimal `json:"overdraft_used"`
	AvailableOverdraftCredit decimal.Decimal `json:"available_overdraft_credit"`
	Overdrawn                bool            `json:"overdrawn"`
}

// NewAccountResponse projects an account with its derived figures.
func NewAccountResponse(account *models.Account) *AccountResponse {
	return &AccountResponse{
		Account:                  account,
		AvailableBalance:         account.AvailableBalance(),
		MaxWithdrawalAmount:      account.MaxWithdrawalAmount(),
		OverdraftUsed:            account.OverdraftUsed(),
		AvailableOverdraftCredit: account.AvailableOverdraftCredit(),
		Overdrawn:                account.IsOverdrawn(),
	}
}

// AccountListResponse represents a paginated list of accounts
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int64             `json:"total"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}

// SetAccountActiveRequest represents a freeze or unfreeze request
type SetAccountActiveRequest struct {
	Active bool `json:"active"`
}
