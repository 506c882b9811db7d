package services

import (
	"context"
	"time"

	"corebank/internal/authz"
	"corebank/internal/dto"
	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountAuthorizerInterface gates single-account operations and scoped
// account listing.
type AccountAuthorizerInterface interface {
	Authorize(actorID, accountID uuid.UUID, op authz.Operation) result.Result[*models.Account]
	ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status)
}

// UserAuthorizerInterface gates single-user operations and scoped user
// listing.
type UserAuthorizerInterface interface {
	Authorize(actorID, targetUserID uuid.UUID, op authz.Operation) result.Result[*models.User]
	ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status)
}

// TransactionAuthorizerInterface gates ledger reads.
type TransactionAuthorizerInterface interface {
	Authorize(actorID, transactionID uuid.UUID, op authz.Operation) result.Result[*models.Transaction]
	ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status)
}

// MoneyMovementServiceInterface defines the three money movement
// commands and the scoped ledger reads.
type MoneyMovementServiceInterface interface {
	Deposit(actorID, accountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView]
	Withdraw(actorID, accountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView]
	Transfer(actorID, sourceAccountID, targetAccountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView]
	GetTransaction(actorID, transactionID uuid.UUID) result.Result[*models.Transaction]
	ListTransactions(actorID uuid.UUID, offset, limit int) result.Result[dto.TransactionListResponse]
}

// AccountServiceInterface defines scoped account reads and the
// freeze/unfreeze command.
type AccountServiceInterface interface {
	GetAccount(actorID, accountID uuid.UUID) result.Result[*models.Account]
	ListAccounts(actorID uuid.UUID, offset, limit int) result.Result[dto.AccountListResponse]
	ListAccountTransactions(actorID, accountID uuid.UUID, offset, limit int) result.Result[dto.TransactionListResponse]
	SetAccountActive(actorID, accountID uuid.UUID, active bool) result.Result[*models.Account]
}

// UserServiceInterface defines scoped user reads.
type UserServiceInterface interface {
	GetUser(actorID, targetUserID uuid.UUID) result.Result[*models.User]
	ListUsers(actorID uuid.UUID, offset, limit int) result.Result[dto.UserListResponse]
}

// InterestServiceInterface applies due interest to savings accounts.
type InterestServiceInterface interface {
	ApplyDueInterest(now time.Time) (int, error)
	Start(ctx context.Context, interval time.Duration)
}

// CurrencyConverterInterface converts amounts between currencies via
// their base-currency rates.
type CurrencyConverterInterface interface {
	Convert(amount decimal.Decimal, from, to models.Currency) decimal.Decimal
}

// TokenServiceInterface issues and validates JWT access tokens.
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// AuthServiceInterface handles credential verification and token
// issuance.
type AuthServiceInterface interface {
	Login(email, password string) result.Result[dto.LoginResponse]
}

// PasswordServiceInterface handles password hashing, verification, and
// the authorized change-password flow.
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) error
	ChangePassword(actorID, targetUserID uuid.UUID, currentPassword, newPassword string) result.Status
}

// AuditServiceInterface records money movement for compliance. All
// writes are best-effort.
type AuditServiceInterface interface {
	LogDeposit(userID, accountID uuid.UUID, amount decimal.Decimal, currencyCode string)
	LogWithdraw(userID, accountID uuid.UUID, amount decimal.Decimal, currencyCode string)
	LogTransfer(userID, transactionID uuid.UUID, amount, fee decimal.Decimal, currencyCode string)
	LogTransferFailed(userID uuid.UUID, sourceAccountID, targetAccountID uuid.UUID, reason string)
	LogInterestApplied(accountID uuid.UUID, amount decimal.Decimal)
	GetUserActivity(userID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error)
}

// MetricsRecorderInterface abstracts metrics collection
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
