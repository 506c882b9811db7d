package repositories

import (
	"testing"
	"time"

	"corebank/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AccountRepositoryTestSuite is the test suite for the account repository
type AccountRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	repo     AccountRepositoryInterface
	user     *models.User
	currency *models.Currency
}

// SetupTest runs before each test
func (s *AccountRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(
		&models.Bank{}, &models.Currency{}, &models.User{},
		&models.Account{}, &models.InterestLogEntry{},
	)
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewAccountRepository(db)

	s.currency = &models.Currency{Code: "USD", Name: "US Dollar", RateToBase: decimal.NewFromInt(1)}
	require.NoError(s.T(), db.Create(s.currency).Error)

	s.user = &models.User{
		Email:        gofakeit.Email(),
		PasswordHash: "hashed_password",
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Role:         models.RoleClient,
		Active:       true,
	}
	require.NoError(s.T(), db.Create(s.user).Error)
}

// TearDownTest runs after each test
func (s *AccountRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestAccountRepositoryTestSuite runs the test suite
func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

func (s *AccountRepositoryTestSuite) createCheckingAccount(balance, overdraftLimit decimal.Decimal) *models.Account {
	account := &models.Account{
		AccountNumber:  models.GenerateAccountNumber(models.AccountTypeChecking),
		UserID:         s.user.ID,
		AccountType:    models.AccountTypeChecking,
		Balance:        balance,
		CurrencyID:     s.currency.ID,
		Active:         true,
		OverdraftLimit: overdraftLimit,
	}
	require.NoError(s.T(), s.repo.Create(account))
	return account
}

func (s *AccountRepositoryTestSuite) createSavingsAccount(balance decimal.Decimal) *models.Account {
	account := &models.Account{
		AccountNumber: models.GenerateAccountNumber(models.AccountTypeSavings),
		UserID:        s.user.ID,
		AccountType:   models.AccountTypeSavings,
		Balance:       balance,
		CurrencyID:    s.currency.ID,
		Active:        true,
		InterestRate:  decimal.NewFromFloat(0.05),
	}
	require.NoError(s.T(), s.repo.Create(account))
	return account
}

func (s *AccountRepositoryTestSuite) TestCreate_SetsIDAndVersion() {
	account := s.createCheckingAccount(decimal.NewFromInt(100), decimal.NewFromInt(200))

	assert.NotEqual(s.T(), uuid.Nil, account.ID)
	assert.Equal(s.T(), 1, account.Version)
	assert.False(s.T(), account.CreatedAt.IsZero())
}

func (s *AccountRepositoryTestSuite) TestGetByID_LoadsAssociations() {
	created := s.createCheckingAccount(decimal.NewFromInt(100), decimal.Zero)

	account, err := s.repo.GetByID(created.ID)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), created.ID, account.ID)
	assert.Equal(s.T(), s.user.ID, account.User.ID)
	assert.Equal(s.T(), "USD", account.Currency.Code)
}

func (s *AccountRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	assert.ErrorIs(s.T(), err, ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestGetByAccountNumber() {
	created := s.createCheckingAccount(decimal.NewFromInt(50), decimal.Zero)

	account, err := s.repo.GetByAccountNumber(created.AccountNumber)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, account.ID)

	_, err = s.repo.GetByAccountNumber("9999999999")
	assert.ErrorIs(s.T(), err, ErrAccountNotFound)
}

func (s *AccountRepositoryTestSuite) TestGetByIDs_Batch() {
	first := s.createCheckingAccount(decimal.NewFromInt(10), decimal.Zero)
	second := s.createSavingsAccount(decimal.NewFromInt(20))
	s.createSavingsAccount(decimal.NewFromInt(30))

	accounts, err := s.repo.GetByIDs([]uuid.UUID{first.ID, second.ID})
	require.NoError(s.T(), err)
	assert.Len(s.T(), accounts, 2)
}

func (s *AccountRepositoryTestSuite) TestUpdate_AdvancesVersion() {
	account := s.createCheckingAccount(decimal.NewFromInt(100), decimal.Zero)

	require.NoError(s.T(), account.Deposit(decimal.NewFromInt(50)))
	require.NoError(s.T(), s.repo.Update(account))

	assert.Equal(s.T(), 2, account.Version)

	stored, err := s.repo.GetByID(account.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), stored.Balance.Equal(decimal.NewFromInt(150)))
	assert.Equal(s.T(), 2, stored.Version)
}

func (s *AccountRepositoryTestSuite) TestUpdate_StaleVersionConflicts() {
	account := s.createCheckingAccount(decimal.NewFromInt(100), decimal.Zero)

	// Two copies of the same row; the second write carries a stale token.
	stale, err := s.repo.GetByID(account.ID)
	require.NoError(s.T(), err)

	require.NoError(s.T(), account.Deposit(decimal.NewFromInt(10)))
	require.NoError(s.T(), s.repo.Update(account))

	require.NoError(s.T(), stale.Deposit(decimal.NewFromInt(20)))
	err = s.repo.Update(stale)

	assert.ErrorIs(s.T(), err, ErrVersionConflict)
	assert.True(s.T(), IsVersionConflict(err))

	// The first write is the one that stuck.
	stored, err := s.repo.GetByID(account.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), stored.Balance.Equal(decimal.NewFromInt(110)))
}

func (s *AccountRepositoryTestSuite) TestList_WithPredicate() {
	s.createCheckingAccount(decimal.NewFromInt(10), decimal.Zero)
	s.createSavingsAccount(decimal.NewFromInt(20))

	otherUser := &models.User{
		Email:        gofakeit.Email(),
		PasswordHash: "hashed_password",
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Role:         models.RoleClient,
		Active:       true,
	}
	require.NoError(s.T(), s.db.Create(otherUser).Error)
	require.NoError(s.T(), s.repo.Create(&models.Account{
		AccountNumber: models.GenerateAccountNumber(models.AccountTypeChecking),
		UserID:        otherUser.ID,
		AccountType:   models.AccountTypeChecking,
		CurrencyID:    s.currency.ID,
		Active:        true,
	}))

	ownAccounts := func(db *gorm.DB) *gorm.DB {
		return db.Where("accounts.user_id = ?", s.user.ID)
	}

	accounts, total, err := s.repo.List(ownAccounts, 0, 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), total)
	assert.Len(s.T(), accounts, 2)
	for _, account := range accounts {
		assert.Equal(s.T(), s.user.ID, account.UserID)
	}
}

func (s *AccountRepositoryTestSuite) TestList_Pagination() {
	for i := 0; i < 5; i++ {
		s.createCheckingAccount(decimal.NewFromInt(int64(i)), decimal.Zero)
	}

	all := func(db *gorm.DB) *gorm.DB { return db }

	accounts, total, err := s.repo.List(all, 0, 2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), total)
	assert.Len(s.T(), accounts, 2)

	accounts, total, err = s.repo.List(all, 4, 2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), total)
	assert.Len(s.T(), accounts, 1)
}

func (s *AccountRepositoryTestSuite) TestListSavingsDueForInterest_FiltersTypeAndActive() {
	s.createCheckingAccount(decimal.NewFromInt(100), decimal.Zero)
	savings := s.createSavingsAccount(decimal.NewFromInt(1000))

	inactive := s.createSavingsAccount(decimal.NewFromInt(500))
	require.NoError(s.T(), s.db.Model(inactive).Update("active", false).Error)

	accounts, err := s.repo.ListSavingsDueForInterest(time.Now())
	require.NoError(s.T(), err)

	require.Len(s.T(), accounts, 1)
	assert.Equal(s.T(), savings.ID, accounts[0].ID)
}

func (s *AccountRepositoryTestSuite) TestAppendInterestLog() {
	account := s.createSavingsAccount(decimal.NewFromInt(1000))

	entry := &models.InterestLogEntry{
		AccountID: account.ID,
		Amount:    decimal.NewFromFloat(4.11),
		AppliedAt: time.Now(),
	}
	require.NoError(s.T(), s.repo.AppendInterestLog(entry))

	stored, err := s.repo.GetByID(account.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), stored.InterestLog, 1)
	assert.True(s.T(), stored.InterestLog[0].Amount.Equal(decimal.NewFromFloat(4.11)))
}
