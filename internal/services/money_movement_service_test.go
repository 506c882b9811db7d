package services

import (
	"log/slog"
	"testing"
	"time"

	"corebank/internal/authz"
	"corebank/internal/config"
	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingMetrics counts metric events so tests can assert on the
// instrumentation without a live registry.
type recordingMetrics struct {
	counters map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counters: make(map[string]int)}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.counters[name]++
}

func (m *recordingMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (m *recordingMetrics) RecordGauge(name string, value float64, tags map[string]string) {}

// MoneyMovementServiceTestSuite exercises the movement commands against
// a real store, real authorizers, and a real ledger.
type MoneyMovementServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	store   *repositories.Store
	metrics *recordingMetrics
	service MoneyMovementServiceInterface

	bankA *models.Bank
	bankB *models.Bank
	usd   *models.Currency
	eur   *models.Currency

	alice *models.User // client at bank A
	bob   *models.User // client at bank A
	carol *models.User // client at bank B
	dave  *models.User // client at bank B

	aliceChecking *models.Account // 500 USD, 100 overdraft
	aliceSavings  *models.Account // 1000 USD
	bobChecking   *models.Account // 200 USD
	bobEuro       *models.Account // 20 EUR
	carolChecking *models.Account // 50 EUR
	daveChecking  *models.Account // 100 USD
}

func (s *MoneyMovementServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(
		&models.Bank{}, &models.Currency{}, &models.User{},
		&models.Account{}, &models.InterestLogEntry{},
		&models.Transaction{}, &models.AccountTransaction{},
		&models.AuditLog{},
	)
	require.NoError(s.T(), err)

	s.db = db
	s.store = repositories.NewStore(db)
	s.metrics = newRecordingMetrics()

	resolver := authz.NewScopeResolver()
	accountAuthz := authz.NewAccountAuthorizer(
		s.store.Users(), s.store.Accounts(), resolver, slog.Default())
	ledgerAuthz := authz.NewTransactionAuthorizer(
		s.store.Users(), s.store.Transactions(), resolver, slog.Default())
	audit := NewAuditService(s.store.AuditLogs(), slog.Default())

	cfg := config.LedgerConfig{
		SameCurrencyFeeRate:  decimal.RequireFromString("0.005"),
		CrossCurrencyFeeRate: decimal.RequireFromString("0.01"),
		MaxRetryAttempts:     3,
		BaseCurrencyCode:     "USD",
	}

	s.service = NewMoneyMovementService(
		s.store, accountAuthz, ledgerAuthz,
		NewCurrencyConverter(), audit, s.metrics, cfg, slog.Default())

	s.bankA = &models.Bank{Name: "First National", Active: true}
	require.NoError(s.T(), db.Create(s.bankA).Error)
	s.bankB = &models.Bank{Name: "Second Regional", Active: true}
	require.NoError(s.T(), db.Create(s.bankB).Error)

	s.usd = &models.Currency{Code: "USD", Name: "US Dollar", RateToBase: decimal.NewFromInt(1)}
	require.NoError(s.T(), db.Create(s.usd).Error)
	s.eur = &models.Currency{Code: "EUR", Name: "Euro", RateToBase: decimal.RequireFromString("1.10")}
	require.NoError(s.T(), db.Create(s.eur).Error)

	s.alice = s.createUser(models.RoleClient, &s.bankA.ID)
	s.bob = s.createUser(models.RoleClient, &s.bankA.ID)
	s.carol = s.createUser(models.RoleClient, &s.bankB.ID)
	s.dave = s.createUser(models.RoleClient, &s.bankB.ID)

	s.aliceChecking = s.createAccount(s.alice.ID, s.usd.ID, models.AccountTypeChecking, "500", "100")
	s.aliceSavings = s.createAccount(s.alice.ID, s.usd.ID, models.AccountTypeSavings, "1000", "0")
	s.bobChecking = s.createAccount(s.bob.ID, s.usd.ID, models.AccountTypeChecking, "200", "0")
	s.bobEuro = s.createAccount(s.bob.ID, s.eur.ID, models.AccountTypeChecking, "20", "0")
	s.carolChecking = s.createAccount(s.carol.ID, s.eur.ID, models.AccountTypeChecking, "50", "0")
	s.daveChecking = s.createAccount(s.dave.ID, s.usd.ID, models.AccountTypeChecking, "100", "0")
}

func (s *MoneyMovementServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestMoneyMovementServiceSuite(t *testing.T) {
	suite.Run(t, new(MoneyMovementServiceTestSuite))
}

func (s *MoneyMovementServiceTestSuite) createUser(role string, bankID *uuid.UUID) *models.User {
	user := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Money",
		LastName:     "Mover",
		Role:         role,
		BankID:       bankID,
		Active:       true,
	}
	require.NoError(s.T(), s.db.Create(user).Error)
	return user
}

func (s *MoneyMovementServiceTestSuite) createAccount(userID, currencyID uuid.UUID, accountType, balance, overdraftLimit string) *models.Account {
	account := &models.Account{
		AccountNumber:  models.GenerateAccountNumber(accountType),
		UserID:         userID,
		AccountType:    accountType,
		Balance:        decimal.RequireFromString(balance),
		CurrencyID:     currencyID,
		Active:         true,
		OverdraftLimit: decimal.RequireFromString(overdraftLimit),
	}
	require.NoError(s.T(), s.db.Create(account).Error)
	return account
}

func (s *MoneyMovementServiceTestSuite) reloadAccount(id uuid.UUID) *models.Account {
	account, err := s.store.Accounts().GetByID(id)
	require.NoError(s.T(), err)
	return account
}

func (s *MoneyMovementServiceTestSuite) countTransactions() int64 {
	var n int64
	require.NoError(s.T(), s.db.Model(&models.Transaction{}).Count(&n).Error)
	return n
}

// Deposits

func (s *MoneyMovementServiceTestSuite) TestDeposit_CreditsAccountAndWritesLedger() {
	res := s.service.Deposit(s.alice.ID, s.aliceChecking.ID, decimal.RequireFromString("150.25"))

	s.Require().True(res.IsSuccess(), "deposit failed: %s", res.Message())
	s.Equal(models.TransactionTypeDeposit, res.Value.TransactionType)
	s.True(res.Value.NewBalance.Equal(decimal.RequireFromString("650.25")))

	account := s.reloadAccount(s.aliceChecking.ID)
	s.True(account.Balance.Equal(decimal.RequireFromString("650.25")))
	s.Equal(s.aliceChecking.Version+1, account.Version)

	transaction, err := s.store.Transactions().GetByID(res.Value.ID)
	s.Require().NoError(err)
	s.Len(transaction.Lines, 1)
	s.Equal(models.LedgerRoleTarget, transaction.Lines[0].Role)
	s.True(transaction.Lines[0].Amount.Equal(decimal.RequireFromString("150.25")))

	s.Equal(1, s.metrics.counters["money_movement.success"])

	logs, _, err := s.store.AuditLogs().GetByUserID(s.alice.ID, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(models.AuditActionDeposit, logs[0].Action)
}

func (s *MoneyMovementServiceTestSuite) TestDeposit_RejectsNonPositiveAmount() {
	res := s.service.Deposit(s.alice.ID, s.aliceChecking.ID, decimal.Zero)

	s.True(res.Is(result.KindValidation))
	s.Equal(int64(0), s.countTransactions())
}

func (s *MoneyMovementServiceTestSuite) TestDeposit_ForeignAccountForbidden() {
	res := s.service.Deposit(s.alice.ID, s.bobChecking.ID, decimal.NewFromInt(10))

	s.True(res.Is(result.KindForbidden))
	s.Equal(1, s.metrics.counters["authorization.denied"])
	s.True(s.reloadAccount(s.bobChecking.ID).Balance.Equal(decimal.NewFromInt(200)))
}

func (s *MoneyMovementServiceTestSuite) TestDeposit_UnknownAccountNotFound() {
	res := s.service.Deposit(s.alice.ID, uuid.New(), decimal.NewFromInt(10))

	s.True(res.Is(result.KindNotFound))
}

func (s *MoneyMovementServiceTestSuite) TestDeposit_FrozenAccountConflicts() {
	require.NoError(s.T(), s.db.Model(&models.Account{}).
		Where("id = ?", s.aliceChecking.ID).
		Update("active", false).Error)

	res := s.service.Deposit(s.alice.ID, s.aliceChecking.ID, decimal.NewFromInt(10))

	s.True(res.Is(result.KindConflict))
	s.Contains(res.Message(), "inactive")
	s.Equal(int64(0), s.countTransactions())
}

// Withdrawals

func (s *MoneyMovementServiceTestSuite) TestWithdraw_DebitsAccount() {
	res := s.service.Withdraw(s.alice.ID, s.aliceChecking.ID, decimal.NewFromInt(200))

	s.Require().True(res.IsSuccess(), "withdraw failed: %s", res.Message())
	s.True(res.Value.NewBalance.Equal(decimal.NewFromInt(300)))

	transaction, err := s.store.Transactions().GetByID(res.Value.ID)
	s.Require().NoError(err)
	s.Len(transaction.Lines, 1)
	s.Equal(models.LedgerRoleSource, transaction.Lines[0].Role)
}

func (s *MoneyMovementServiceTestSuite) TestWithdraw_CheckingMayDrawIntoOverdraft() {
	res := s.service.Withdraw(s.alice.ID, s.aliceChecking.ID, decimal.NewFromInt(550))

	s.Require().True(res.IsSuccess(), "withdraw failed: %s", res.Message())
	s.True(res.Value.NewBalance.Equal(decimal.NewFromInt(-50)))

	account := s.reloadAccount(s.aliceChecking.ID)
	s.True(account.IsOverdrawn())
	s.True(account.OverdraftUsed().Equal(decimal.NewFromInt(50)))
}

func (s *MoneyMovementServiceTestSuite) TestWithdraw_BeyondOverdraftRejected() {
	res := s.service.Withdraw(s.alice.ID, s.aliceChecking.ID, decimal.NewFromInt(601))

	s.True(res.Is(result.KindConflict))
	s.Contains(res.Message(), "maximum withdrawal amount is 600.00")
	s.True(s.reloadAccount(s.aliceChecking.ID).Balance.Equal(decimal.NewFromInt(500)))
	s.Equal(int64(0), s.countTransactions())
}

func (s *MoneyMovementServiceTestSuite) TestWithdraw_SavingsCannotGoNegative() {
	res := s.service.Withdraw(s.alice.ID, s.aliceSavings.ID, decimal.NewFromInt(1001))

	s.True(res.Is(result.KindConflict))
	s.Contains(res.Message(), "insufficient funds")
	s.True(s.reloadAccount(s.aliceSavings.ID).Balance.Equal(decimal.NewFromInt(1000)))
}

// Transfers

func (s *MoneyMovementServiceTestSuite) TestTransfer_SameCurrencyChargesLowerFee() {
	res := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.bobChecking.ID, decimal.NewFromInt(100))

	s.Require().True(res.IsSuccess(), "transfer failed: %s", res.Message())
	s.True(res.Value.Fee.Equal(decimal.RequireFromString("0.50")))
	s.True(res.Value.CreditedAmount.Equal(decimal.NewFromInt(100)))

	// Source pays amount plus fee; target receives the amount.
	s.True(s.reloadAccount(s.aliceChecking.ID).Balance.Equal(decimal.RequireFromString("399.50")))
	s.True(s.reloadAccount(s.bobChecking.ID).Balance.Equal(decimal.NewFromInt(300)))

	transaction, err := s.store.Transactions().GetByID(res.Value.ID)
	s.Require().NoError(err)
	s.Len(transaction.Lines, 2)
	s.True(transaction.SourceLine().TotalDebited().Equal(decimal.RequireFromString("100.50")))
	s.True(transaction.TargetLine().Amount.Equal(decimal.NewFromInt(100)))
}

func (s *MoneyMovementServiceTestSuite) TestTransfer_CrossCurrencyChargesHigherFeeAndConverts() {
	res := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.carolChecking.ID, decimal.NewFromInt(100))

	s.Require().True(res.IsSuccess(), "transfer failed: %s", res.Message())
	s.True(res.Value.Fee.Equal(decimal.RequireFromString("1.00")))
	// 100 USD at 1.10 EUR/base buys 90.91 EUR.
	s.True(res.Value.CreditedAmount.Equal(decimal.RequireFromString("90.91")))

	s.True(s.reloadAccount(s.aliceChecking.ID).Balance.Equal(decimal.NewFromInt(399)))
	s.True(s.reloadAccount(s.carolChecking.ID).Balance.Equal(decimal.RequireFromString("140.91")))

	transaction, err := s.store.Transactions().GetByID(res.Value.ID)
	s.Require().NoError(err)
	s.Equal("USD", transaction.SourceLine().CurrencyCode)
	s.Equal("EUR", transaction.TargetLine().CurrencyCode)
}

func (s *MoneyMovementServiceTestSuite) TestTransfer_SameCurrencyAcrossBanksChargesLowerFee() {
	// Fee selection follows the currency pair, not the banks involved.
	res := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.daveChecking.ID, decimal.NewFromInt(100))

	s.Require().True(res.IsSuccess(), "transfer failed: %s", res.Message())
	s.True(res.Value.Fee.Equal(decimal.RequireFromString("0.50")))
	s.True(res.Value.CreditedAmount.Equal(decimal.NewFromInt(100)))

	s.True(s.reloadAccount(s.aliceChecking.ID).Balance.Equal(decimal.RequireFromString("399.50")))
	s.True(s.reloadAccount(s.daveChecking.ID).Balance.Equal(decimal.NewFromInt(200)))
}

func (s *MoneyMovementServiceTestSuite) TestTransfer_CrossCurrencyWithinOneBankChargesHigherFee() {
	res := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.bobEuro.ID, decimal.NewFromInt(100))

	s.Require().True(res.IsSuccess(), "transfer failed: %s", res.Message())
	s.True(res.Value.Fee.Equal(decimal.RequireFromString("1.00")))
	s.True(res.Value.CreditedAmount.Equal(decimal.RequireFromString("90.91")))

	s.True(s.reloadAccount(s.aliceChecking.ID).Balance.Equal(decimal.NewFromInt(399)))
	s.True(s.reloadAccount(s.bobEuro.ID).Balance.Equal(decimal.RequireFromString("110.91")))
}

func (s *MoneyMovementServiceTestSuite) TestTransfer_InsufficientFundsRollsBackEverything() {
	res := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.bobChecking.ID, decimal.NewFromInt(700))

	s.True(res.Is(result.KindConflict))
	s.True(s.reloadAccount(s.aliceChecking.ID).Balance.Equal(decimal.NewFromInt(500)))
	s.True(s.reloadAccount(s.bobChecking.ID).Balance.Equal(decimal.NewFromInt(200)))
	s.Equal(int64(0), s.countTransactions())

	logs, _, err := s.store.AuditLogs().GetByUserID(s.alice.ID, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(models.AuditActionTransferFailed, logs[0].Action)
}

func (s *MoneyMovementServiceTestSuite) TestTransfer_FrozenTargetRollsBack() {
	require.NoError(s.T(), s.db.Model(&models.Account{}).
		Where("id = ?", s.bobChecking.ID).
		Update("active", false).Error)

	res := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.bobChecking.ID, decimal.NewFromInt(50))

	s.True(res.Is(result.KindConflict))
	s.True(s.reloadAccount(s.aliceChecking.ID).Balance.Equal(decimal.NewFromInt(500)))
	s.Equal(int64(0), s.countTransactions())
}

func (s *MoneyMovementServiceTestSuite) TestTransfer_SameAccountRejected() {
	res := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.aliceChecking.ID, decimal.NewFromInt(10))

	s.True(res.Is(result.KindValidation))
}

func (s *MoneyMovementServiceTestSuite) TestTransfer_ForeignSourceForbidden() {
	res := s.service.Transfer(s.carol.ID, s.aliceChecking.ID, s.carolChecking.ID, decimal.NewFromInt(10))

	s.True(res.Is(result.KindForbidden))
	s.True(s.reloadAccount(s.aliceChecking.ID).Balance.Equal(decimal.NewFromInt(500)))
}

func (s *MoneyMovementServiceTestSuite) TestTransfer_AnyoneMayBeTarget() {
	// Carol is out of Alice's scope, but receiving money only needs
	// authority over the source.
	res := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.carolChecking.ID, decimal.NewFromInt(10))

	s.True(res.IsSuccess(), "transfer failed: %s", res.Message())
}

// Ledger reads

func (s *MoneyMovementServiceTestSuite) TestGetTransaction_ParticipantSeesTransfer() {
	transfer := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.bobChecking.ID, decimal.NewFromInt(25))
	s.Require().True(transfer.IsSuccess())

	res := s.service.GetTransaction(s.bob.ID, transfer.Value.ID)

	s.Require().True(res.IsSuccess(), "get failed: %s", res.Message())
	s.Equal(models.TransactionTypeTransfer, res.Value.TransactionType)
}

func (s *MoneyMovementServiceTestSuite) TestGetTransaction_StrangerForbidden() {
	transfer := s.service.Transfer(s.alice.ID, s.aliceChecking.ID, s.bobChecking.ID, decimal.NewFromInt(25))
	s.Require().True(transfer.IsSuccess())

	res := s.service.GetTransaction(s.carol.ID, transfer.Value.ID)

	s.True(res.Is(result.KindForbidden))
}

func (s *MoneyMovementServiceTestSuite) TestListTransactions_ScopedToActor() {
	deposit := s.service.Deposit(s.alice.ID, s.aliceChecking.ID, decimal.NewFromInt(10))
	s.Require().True(deposit.IsSuccess())
	other := s.service.Deposit(s.carol.ID, s.carolChecking.ID, decimal.NewFromInt(10))
	s.Require().True(other.IsSuccess())

	res := s.service.ListTransactions(s.alice.ID, 0, 50)

	s.Require().True(res.IsSuccess(), "list failed: %s", res.Message())
	s.Equal(int64(1), res.Value.Total)
	s.Require().Len(res.Value.Transactions, 1)
	s.Equal(deposit.Value.ID, res.Value.Transactions[0].ID)
}
