package models

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"

	// Account number prefixes by type
	CheckingPrefix = "10"
	SavingsPrefix  = "20"
)

// Interest cadences for savings accounts. Every5Minutes is a fast
// cadence used only by tests and demo environments.
const (
	CadenceMonthly       = "monthly"
	CadenceQuarterly     = "quarterly"
	CadenceAnnually      = "annually"
	CadenceEvery5Minutes = "every_5_minutes"
)

const daysPerYear = 365

var (
	ErrInvalidAccountType     = errors.New("invalid account type")
	ErrInvalidCadence         = errors.New("invalid interest cadence")
	ErrNonPositiveAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrNegativeOverdraftLimit = errors.New("overdraft limit cannot be negative")
)

// OverdraftExceededError reports a checking withdrawal beyond the
// overdraft allowance, carrying the figures the caller embeds in the
// failure message.
type OverdraftExceededError struct {
	MaxWithdrawal   decimal.Decimal
	Balance         decimal.Decimal
	AvailableCredit decimal.Decimal
}

func (e *OverdraftExceededError) Error() string {
	return fmt.Sprintf(
		"insufficient funds: maximum withdrawal amount is %s (balance %s, available overdraft credit %s)",
		e.MaxWithdrawal.StringFixed(2), e.Balance.StringFixed(2), e.AvailableCredit.StringFixed(2),
	)
}

// Account is the balance-holding aggregate. Checking accounts carry an
// overdraft limit; savings accounts carry interest configuration and an
// append-only interest log. The Version column is the optimistic
// concurrency token and changes on every persisted mutation.
type Account struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountNumber   string          `gorm:"type:varchar(10);uniqueIndex;not null" json:"account_number"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountType     string          `gorm:"type:varchar(20);not null" json:"account_type"`
	Balance         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CurrencyID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"currency_id"`
	Active          bool            `gorm:"not null;default:true" json:"active"`
	OverdraftLimit  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"overdraft_limit"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(8,6);not null;default:0" json:"interest_rate,omitempty"`
	InterestCadence string          `gorm:"type:varchar(20)" json:"interest_cadence,omitempty"`
	Version         int             `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User        User               `gorm:"foreignKey:UserID" json:"-"`
	Currency    Currency           `gorm:"foreignKey:CurrencyID" json:"-"`
	InterestLog []InterestLogEntry `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Version == 0 {
		a.Version = 1
	}

	if a.AccountType == AccountTypeSavings && a.InterestCadence == "" {
		a.InterestCadence = CadenceMonthly
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry an empty struct; skip validation there.
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.CurrencyID == uuid.Nil {
		return errors.New("currency ID is required")
	}

	if a.AccountNumber == "" {
		return errors.New("account number is required")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if a.OverdraftLimit.IsNegative() {
		return ErrNegativeOverdraftLimit
	}

	switch a.AccountType {
	case AccountTypeSavings:
		if a.Balance.IsNegative() {
			return errors.New("savings balance cannot be negative")
		}
		if a.InterestCadence != "" && !IsValidCadence(a.InterestCadence) {
			return ErrInvalidCadence
		}
	case AccountTypeChecking:
		if a.Balance.LessThan(a.OverdraftLimit.Neg()) {
			return errors.New("checking balance cannot exceed the overdraft limit")
		}
	}

	return nil
}

// IsChecking returns true for checking accounts.
func (a *Account) IsChecking() bool {
	return a.AccountType == AccountTypeChecking
}

// IsSavings returns true for savings accounts.
func (a *Account) IsSavings() bool {
	return a.AccountType == AccountTypeSavings
}

// CanPerformTransactions reports whether both the account and its owner
// are active. The User association must be loaded; a missing owner
// fails closed.
func (a *Account) CanPerformTransactions() bool {
	return a.Active && a.User.Active
}

// Deposit credits the account. All monetary fields are rounded to two
// decimal places after the mutation.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}

	a.Balance = a.Balance.Add(amount).Round(2)
	return nil
}

// Withdraw debits the account. Checking accounts may draw into their
// overdraft allowance; savings accounts may not go below zero.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}

	if a.IsChecking() {
		if amount.GreaterThan(a.Balance.Add(a.OverdraftLimit)) {
			return &OverdraftExceededError{
				MaxWithdrawal:   a.MaxWithdrawalAmount(),
				Balance:         a.Balance,
				AvailableCredit: a.AvailableOverdraftCredit(),
			}
		}
	} else if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount).Round(2)
	return nil
}

// AvailableBalance is the full amount the account can cover: balance
// plus the entire overdraft limit for checking, balance alone for
// savings.
func (a *Account) AvailableBalance() decimal.Decimal {
	if a.IsChecking() {
		return a.Balance.Add(a.OverdraftLimit)
	}
	return a.Balance
}

// IsOverdrawn reports whether a checking balance has gone negative.
func (a *Account) IsOverdrawn() bool {
	return a.IsChecking() && a.Balance.IsNegative()
}

// OverdraftUsed is the drawn portion of the overdraft allowance.
func (a *Account) OverdraftUsed() decimal.Decimal {
	if !a.IsOverdrawn() {
		return decimal.Zero
	}
	return a.Balance.Neg()
}

// AvailableOverdraftCredit is the unused portion of the overdraft
// allowance.
func (a *Account) AvailableOverdraftCredit() decimal.Decimal {
	if !a.IsChecking() {
		return decimal.Zero
	}
	return a.OverdraftLimit.Sub(a.OverdraftUsed())
}

// MaxWithdrawalAmount is balance plus the unused overdraft credit. Not
// the same as AvailableBalance once the account is overdrawn.
func (a *Account) MaxWithdrawalAmount() decimal.Decimal {
	if a.IsChecking() {
		return a.Balance.Add(a.AvailableOverdraftCredit())
	}
	return a.Balance
}

// CalculateInterest computes simple interest for the given number of
// days: round(balance * rate / 365 * days, 2). Returns zero for
// non-positive balances or day counts.
func (a *Account) CalculateInterest(days int) decimal.Decimal {
	if !a.IsSavings() || days <= 0 || a.Balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return a.Balance.
		Mul(a.InterestRate).
		Div(decimal.NewFromInt(daysPerYear)).
		Mul(decimal.NewFromInt(int64(days))).
		Round(2)
}

// ApplyInterest credits earned interest and appends an interest log
// entry. Non-positive amounts are a no-op.
func (a *Account) ApplyInterest(amount decimal.Decimal, appliedAt time.Time) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return
	}

	a.Balance = a.Balance.Add(amount).Round(2)
	a.InterestLog = append(a.InterestLog, InterestLogEntry{
		AccountID: a.ID,
		Amount:    amount,
		AppliedAt: appliedAt,
	})
}

// ShouldApplyInterest reports whether the cadence period has elapsed
// since the last interest application, or since account creation if
// interest has never been applied.
func (a *Account) ShouldApplyInterest(now time.Time) bool {
	if !a.IsSavings() {
		return false
	}

	last := a.CreatedAt
	if entry := a.LastInterestEntry(); entry != nil {
		last = entry.AppliedAt
	}

	elapsed := now.Sub(last)

	switch a.InterestCadence {
	case CadenceMonthly:
		return elapsed >= 30*24*time.Hour
	case CadenceQuarterly:
		return elapsed >= 90*24*time.Hour
	case CadenceAnnually:
		return elapsed >= daysPerYear*24*time.Hour
	case CadenceEvery5Minutes:
		return elapsed >= 5*time.Minute
	default:
		return false
	}
}

// CadenceDays returns the number of days of interest a cadence period
// represents. The fast cadence accrues as a single day.
func (a *Account) CadenceDays() int {
	switch a.InterestCadence {
	case CadenceMonthly:
		return 30
	case CadenceQuarterly:
		return 90
	case CadenceAnnually:
		return daysPerYear
	case CadenceEvery5Minutes:
		return 1
	default:
		return 0
	}
}

// LastInterestEntry returns the most recent interest log entry, or nil.
func (a *Account) LastInterestEntry() *InterestLogEntry {
	if len(a.InterestLog) == 0 {
		return nil
	}

	latest := &a.InterestLog[0]
	for i := range a.InterestLog {
		if a.InterestLog[i].AppliedAt.After(latest.AppliedAt) {
			latest = &a.InterestLog[i]
		}
	}
	return latest
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// InterestLogEntry is one append-only record of interest credited to a
// savings account.
type InterestLogEntry struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	AppliedAt time.Time       `gorm:"not null" json:"applied_at"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for InterestLogEntry
func (e *InterestLogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for InterestLogEntry
func (e *InterestLogEntry) TableName() string {
	return "interest_log_entries"
}

// Helper functions

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	default:
		return false
	}
}

// IsValidCadence checks if the interest cadence is valid
func IsValidCadence(cadence string) bool {
	switch cadence {
	case CadenceMonthly, CadenceQuarterly, CadenceAnnually, CadenceEvery5Minutes:
		return true
	default:
		return false
	}
}

// GetAccountPrefix returns the prefix for an account type
func GetAccountPrefix(accountType string) string {
	switch accountType {
	case AccountTypeChecking:
		return CheckingPrefix
	case AccountTypeSavings:
		return SavingsPrefix
	default:
		return ""
	}
}

// GenerateAccountNumber generates a 10-digit account number
func GenerateAccountNumber(accountType string) string {
	prefix := GetAccountPrefix(accountType)
	if prefix == "" {
		return ""
	}

	return prefix + fmt.Sprintf("%08d", rand.Intn(100000000))
}
