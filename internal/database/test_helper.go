package database

import (
	"fmt"
	"testing"

	"corebank/internal/config"
	"corebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestBank(t *testing.T, db *DB, name string) *models.Bank {
	t.Helper()

	bank := &models.Bank{
		Name:   name,
		Active: true,
	}

	if err := db.Create(bank).Error; err != nil {
		t.Fatalf("failed to create test bank: %v", err)
	}

	return bank
}

func CreateTestCurrency(t *testing.T, db *DB, code string, rateToBase decimal.Decimal) *models.Currency {
	t.Helper()

	currency := &models.Currency{
		Code:       code,
		Name:       code,
		RateToBase: rateToBase,
	}

	if err := db.Create(currency).Error; err != nil {
		t.Fatalf("failed to create test currency: %v", err)
	}

	return currency
}

func CreateTestUser(t *testing.T, db *DB, email, role string, bankID *uuid.UUID) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		BankID:       bankID,
		Active:       true,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCheckingAccount(t *testing.T, db *DB, userID, currencyID uuid.UUID, balance, overdraftLimit decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		AccountNumber:  models.GenerateAccountNumber(models.AccountTypeChecking),
		UserID:         userID,
		AccountType:    models.AccountTypeChecking,
		Balance:        balance,
		CurrencyID:     currencyID,
		Active:         true,
		OverdraftLimit: overdraftLimit,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test checking account: %v", err)
	}

	return account
}

func CreateTestSavingsAccount(t *testing.T, db *DB, userID, currencyID uuid.UUID, balance, interestRate decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		AccountNumber: models.GenerateAccountNumber(models.AccountTypeSavings),
		UserID:        userID,
		AccountType:   models.AccountTypeSavings,
		Balance:       balance,
		CurrencyID:    currencyID,
		Active:        true,
		InterestRate:  interestRate,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test savings account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"account_transactions",
		"transactions",
		"interest_log_entries",
		"accounts",
		"audit_logs",
		"users",
		"currencies",
		"banks",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
