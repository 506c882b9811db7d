package repositories

import (
	"errors"
	"fmt"

	"corebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBankNotFound = errors.New("bank not found")

// bankRepository implements BankRepositoryInterface
type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *gorm.DB) BankRepositoryInterface {
	return &bankRepository{db: db}
}

// Create creates a new bank
func (r *bankRepository) Create(bank *models.Bank) error {
	if err := r.db.Create(bank).Error; err != nil {
		return fmt.Errorf("failed to create bank: %w", err)
	}
	return nil
}

// GetByID retrieves a bank by ID
func (r *bankRepository) GetByID(id uuid.UUID) (*models.Bank, error) {
	var bank models.Bank
	if err := r.db.First(&bank, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return &bank, nil
}

// GetByIDs retrieves several banks in one batch query.
func (r *bankRepository) GetByIDs(ids []uuid.UUID) ([]models.Bank, error) {
	var banks []models.Bank
	if err := r.db.Where("id IN ?", ids).Find(&banks).Error; err != nil {
		return nil, fmt.Errorf("failed to get banks: %w", err)
	}
	return banks, nil
}
