package repositories

import (
	"errors"
	"fmt"

	"corebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new ledger repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create persists a ledger header together with its lines. Ledger rows
// are append-only; there is deliberately no Update.
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction with its lines and their accounts.
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.
		Preload("Lines").
		Preload("Lines.Account").
		Preload("Lines.Account.User").
		First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// List retrieves transactions visible under the given scope predicate
// with pagination.
func (r *transactionRepository) List(predicate ScopePredicate, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Scopes(predicate)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := query.Preload("Lines").Offset(offset).Limit(limit).
		Order("transactions.created_at DESC").Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// ListByAccountID retrieves transactions touching one account.
func (r *transactionRepository) ListByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).
		Where(`transactions.id IN (
			SELECT transaction_id FROM account_transactions WHERE account_id = ?)`,
			accountID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count account transactions: %w", err)
	}

	if err := query.Preload("Lines").Offset(offset).Limit(limit).
		Order("transactions.created_at DESC").Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list account transactions: %w", err)
	}

	return transactions, total, nil
}
