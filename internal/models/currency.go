package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Currency holds an ISO code and its rate against the base currency.
// RateToBase is the value of one unit expressed in the base currency.
type Currency struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Code       string          `gorm:"type:varchar(3);uniqueIndex;not null" json:"code"`
	Name       string          `gorm:"type:varchar(100);not null" json:"name"`
	RateToBase decimal.Decimal `gorm:"type:decimal(18,8);not null;default:1" json:"rate_to_base"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

func (c *Currency) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Currency) Validate() error {
	if len(c.Code) != 3 {
		return errors.New("currency code must be 3 characters")
	}

	if c.Name == "" {
		return errors.New("currency name is required")
	}

	if c.RateToBase.LessThanOrEqual(decimal.Zero) {
		return errors.New("currency rate must be positive")
	}

	return nil
}

func (c *Currency) TableName() string {
	return "currencies"
}
