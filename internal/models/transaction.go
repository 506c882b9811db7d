package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypeWithdraw = "withdraw"
	TransactionTypeTransfer = "transfer"

	LedgerRoleSource = "source"
	LedgerRoleTarget = "target"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidLedgerRole      = errors.New("invalid ledger line role")
	ErrInvalidLineCount       = errors.New("transaction has the wrong number of ledger lines")
)

// Transaction is the ledger header. A deposit or withdrawal owns one
// line; a transfer owns exactly two, one Source and one Target. Rows
// are created atomically with the balance mutation and never updated.
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionType string    `gorm:"type:varchar(20);not null" json:"transaction_type"`
	CreatedAt       time.Time `gorm:"not null;index" json:"created_at"`

	// Associations
	Lines []AccountTransaction `gorm:"foreignKey:TransactionID" json:"lines"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the header and its lines as a unit
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	switch t.TransactionType {
	case TransactionTypeTransfer:
		if len(t.Lines) != 2 {
			return ErrInvalidLineCount
		}
		sources, targets := 0, 0
		for i := range t.Lines {
			switch t.Lines[i].Role {
			case LedgerRoleSource:
				sources++
			case LedgerRoleTarget:
				targets++
			}
		}
		if sources != 1 || targets != 1 {
			return errors.New("transfer requires exactly one source and one target line")
		}
	default:
		if len(t.Lines) != 1 {
			return ErrInvalidLineCount
		}
	}

	return nil
}

// SourceLine returns the Source-role line, or nil.
func (t *Transaction) SourceLine() *AccountTransaction {
	return t.lineByRole(LedgerRoleSource)
}

// TargetLine returns the Target-role line, or nil.
func (t *Transaction) TargetLine() *AccountTransaction {
	return t.lineByRole(LedgerRoleTarget)
}

func (t *Transaction) lineByRole(role string) *AccountTransaction {
	for i := range t.Lines {
		if t.Lines[i].Role == role {
			return &t.Lines[i]
		}
	}
	return nil
}

// GrossAmount is the amount moved, taken from the single line for
// deposits and withdrawals and from the source line for transfers.
func (t *Transaction) GrossAmount() decimal.Decimal {
	if t.TransactionType == TransactionTypeTransfer {
		if line := t.SourceLine(); line != nil {
			return line.Amount
		}
		return decimal.Zero
	}
	if len(t.Lines) > 0 {
		return t.Lines[0].Amount
	}
	return decimal.Zero
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// AccountTransaction is one debit or credit ledger line. Amount is
// always the positive gross amount moved; Fee is zero except on a
// transfer's source line. The source account is debited Amount plus
// Fee; the target account is credited Amount.
type AccountTransaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CurrencyCode  string          `gorm:"type:varchar(3);not null" json:"currency_code"`
	Fee           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"fee"`
	Role          string          `gorm:"type:varchar(10);not null" json:"role"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for AccountTransaction
func (l *AccountTransaction) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	return l.Validate()
}

// Validate validates the ledger line fields
func (l *AccountTransaction) Validate() error {
	if l.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if l.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("ledger line amount must be positive")
	}

	if l.Fee.IsNegative() {
		return errors.New("ledger line fee cannot be negative")
	}

	if l.Role != LedgerRoleSource && l.Role != LedgerRoleTarget {
		return ErrInvalidLedgerRole
	}

	if l.CurrencyCode == "" {
		return errors.New("currency code snapshot is required")
	}

	return nil
}

// TotalDebited is the amount plus fee charged to a source account.
func (l *AccountTransaction) TotalDebited() decimal.Decimal {
	return l.Amount.Add(l.Fee)
}

// TableName returns the table name for AccountTransaction
func (l *AccountTransaction) TableName() string {
	return "account_transactions"
}

// Helper functions

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
