package repositories

import (
	"errors"
	"fmt"

	"corebank/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCurrencyNotFound = errors.New("currency not found")

// currencyRepository implements CurrencyRepositoryInterface
type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a new currency repository
func NewCurrencyRepository(db *gorm.DB) CurrencyRepositoryInterface {
	return &currencyRepository{db: db}
}

// Create creates a new currency
func (r *currencyRepository) Create(currency *models.Currency) error {
	if err := r.db.Create(currency).Error; err != nil {
		return fmt.Errorf("failed to create currency: %w", err)
	}
	return nil
}

// GetByID retrieves a currency by ID
func (r *currencyRepository) GetByID(id uuid.UUID) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.First(&currency, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCurrencyNotFound
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return &currency, nil
}

// GetByCode retrieves a currency by its ISO code
func (r *currencyRepository) GetByCode(code string) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.Where("code = ?", code).First(&currency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCurrencyNotFound
		}
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return &currency, nil
}
