package repositories

import (
	"errors"
	"fmt"
	"time"

	"corebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account with its owner, currency, and interest
// log loaded.
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.
		Preload("User").
		Preload("User.Bank").
		Preload("Currency").
		Preload("InterestLog").
		First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByIDs retrieves several accounts in one batch query, owners and
// currencies loaded.
func (r *accountRepository) GetByIDs(ids []uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.
		Preload("User").
		Preload("User.Bank").
		Preload("Currency").
		Where("id IN ?", ids).
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// GetByAccountNumber retrieves an account by account number
func (r *accountRepository) GetByAccountNumber(accountNumber string) (*models.Account, error) {
	var account models.Account
	if err := r.db.
		Preload("User").
		Preload("Currency").
		Where("account_number = ?", accountNumber).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return &account, nil
}

// List retrieves accounts visible under the given scope predicate with
// pagination.
func (r *accountRepository) List(predicate ScopePredicate, offset, limit int) ([]models.Account, int64, error) {
	var accounts []models.Account
	var total int64

	query := r.db.Model(&models.Account{}).Scopes(predicate)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("accounts.created_at DESC").Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, total, nil
}

// ListSavingsDueForInterest retrieves active savings accounts with
// their interest logs for the due-interest pass. Cadence evaluation
// happens in the entity, not in SQL.
func (r *accountRepository) ListSavingsDueForInterest(now time.Time) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.
		Preload("User").
		Preload("InterestLog").
		Where("account_type = ? AND active = ?", models.AccountTypeSavings, true).
		Where("created_at <= ?", now).
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list savings accounts: %w", err)
	}
	return accounts, nil
}

// Update persists a mutated account conditioned on the version token
// being unchanged. A stale token is reported as ErrVersionConflict; the
// token advances by one on success so every persisted mutation changes
// it.
func (r *accountRepository) Update(account *models.Account) error {
	currentVersion := account.Version

	res := r.db.Model(&models.Account{}).
		Where("id = ? AND version = ?", account.ID, currentVersion).
		Updates(map[string]interface{}{
			"balance":    account.Balance,
			"active":     account.Active,
			"version":    currentVersion + 1,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}

	account.Version = currentVersion + 1
	return nil
}

// AppendInterestLog appends one interest log entry.
func (r *accountRepository) AppendInterestLog(entry *models.InterestLogEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append interest log entry: %w", err)
	}
	return nil
}
