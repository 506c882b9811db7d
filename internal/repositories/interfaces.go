package repositories

import (
	"time"

	"corebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopePredicate narrows a list query to what an actor may see. It is
// produced by the authorization layer and applied verbatim, so list
// results and per-item checks cannot diverge.
type ScopePredicate func(*gorm.DB) *gorm.DB

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByIDs(ids []uuid.UUID) ([]models.Account, error)
	GetByAccountNumber(accountNumber string) (*models.Account, error)
	List(predicate ScopePredicate, offset, limit int) ([]models.Account, int64, error)
	ListSavingsDueForInterest(now time.Time) ([]models.Account, error)
	Update(account *models.Account) error
	AppendInterestLog(entry *models.InterestLogEntry) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(predicate ScopePredicate, offset, limit int) ([]models.User, int64, error)
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
}

// BankRepositoryInterface defines the contract for bank repository operations
type BankRepositoryInterface interface {
	Create(bank *models.Bank) error
	GetByID(id uuid.UUID) (*models.Bank, error)
	GetByIDs(ids []uuid.UUID) ([]models.Bank, error)
}

// CurrencyRepositoryInterface defines the contract for currency repository operations
type CurrencyRepositoryInterface interface {
	Create(currency *models.Currency) error
	GetByID(id uuid.UUID) (*models.Currency, error)
	GetByCode(code string) (*models.Currency, error)
}

// TransactionRepositoryInterface defines the contract for ledger repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	List(predicate ScopePredicate, offset, limit int) ([]models.Transaction, int64, error)
	ListByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error)
}
