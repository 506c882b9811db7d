package services

import (
	"log/slog"
	"testing"

	"corebank/internal/authz"
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

type AccountServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	store   *repositories.Store
	metrics *recordingMetrics
	service AccountServiceInterface

	bankA *models.Bank
	bankB *models.Bank
	usd   *models.Currency

	client      *models.User
	otherClient *models.User
	bankAdmin   *models.User
	globalAdmin *models.User

	clientChecking *models.Account
	clientSavings  *models.Account
	otherAccount   *models.Account
}

func (s *AccountServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(
		&models.Bank{}, &models.Currency{}, &models.User{},
		&models.Account{}, &models.InterestLogEntry{},
		&models.Transaction{}, &models.AccountTransaction{},
	)
	require.NoError(s.T(), err)

	s.db = db
	s.store = repositories.NewStore(db)
	s.metrics = newRecordingMetrics()

	accountAuthz := authz.NewAccountAuthorizer(
		s.store.Users(), s.store.Accounts(), authz.NewScopeResolver(), slog.Default())
	s.service = NewAccountService(s.store, accountAuthz, s.metrics, slog.Default())

	s.bankA = &models.Bank{Name: "First National", Active: true}
	require.NoError(s.T(), db.Create(s.bankA).Error)
	s.bankB = &models.Bank{Name: "Second Regional", Active: true}
	require.NoError(s.T(), db.Create(s.bankB).Error)

	s.usd = &models.Currency{Code: "USD", Name: "US Dollar", RateToBase: decimal.NewFromInt(1)}
	require.NoError(s.T(), db.Create(s.usd).Error)

	s.client = s.createUser(models.RoleClient, &s.bankA.ID)
	s.otherClient = s.createUser(models.RoleClient, &s.bankB.ID)
	s.bankAdmin = s.createUser(models.RoleBankAdmin, &s.bankA.ID)
	s.globalAdmin = s.createUser(models.RoleGlobalAdmin, nil)

	s.clientChecking = s.createAccount(s.client.ID, models.AccountTypeChecking)
	s.clientSavings = s.createAccount(s.client.ID, models.AccountTypeSavings)
	s.otherAccount = s.createAccount(s.otherClient.ID, models.AccountTypeChecking)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) createUser(role string, bankID *uuid.UUID) *models.User {
	user := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Account",
		LastName:     "Holder",
		Role:         role,
		BankID:       bankID,
		Active:       true,
	}
	require.NoError(s.T(), s.db.Create(user).Error)
	return user
}

func (s *AccountServiceTestSuite) createAccount(userID uuid.UUID, accountType string) *models.Account {
	account := &models.Account{
		AccountNumber: models.GenerateAccountNumber(accountType),
		UserID:        userID,
		AccountType:   accountType,
		Balance:       decimal.NewFromInt(100),
		CurrencyID:    s.usd.ID,
		Active:        true,
	}
	require.NoError(s.T(), s.db.Create(account).Error)
	return account
}

func (s *AccountServiceTestSuite) TestGetAccount_OwnerSeesOwn() {
	res := s.service.GetAccount(s.client.ID, s.clientChecking.ID)

	s.Require().True(res.IsSuccess(), "get failed: %s", res.Message())
	s.Equal(s.clientChecking.ID, res.Value.ID)
}

func (s *AccountServiceTestSuite) TestGetAccount_StrangerForbidden() {
	res := s.service.GetAccount(s.otherClient.ID, s.clientChecking.ID)

	s.True(res.Is(result.KindForbidden))
}

func (s *AccountServiceTestSuite) TestListAccounts_ClientSeesOnlyOwn() {
	res := s.service.ListAccounts(s.client.ID, 0, 50)

	s.Require().True(res.IsSuccess(), "list failed: %s", res.Message())
	s.Equal(int64(2), res.Value.Total)
	for _, account := range res.Value.Accounts {
		s.Equal(s.client.ID, account.UserID)
	}
}

func (s *AccountServiceTestSuite) TestListAccounts_BankAdminSeesBankClients() {
	res := s.service.ListAccounts(s.bankAdmin.ID, 0, 50)

	s.Require().True(res.IsSuccess(), "list failed: %s", res.Message())
	s.Equal(int64(2), res.Value.Total)
}

func (s *AccountServiceTestSuite) TestListAccounts_GlobalAdminSeesAll() {
	res := s.service.ListAccounts(s.globalAdmin.ID, 0, 50)

	s.Require().True(res.IsSuccess(), "list failed: %s", res.Message())
	s.Equal(int64(3), res.Value.Total)
}

func (s *AccountServiceTestSuite) TestListAccounts_IncludesDerivedFigures() {
	overdrawn := &models.Account{
		AccountNumber:  models.GenerateAccountNumber(models.AccountTypeChecking),
		UserID:         s.client.ID,
		AccountType:    models.AccountTypeChecking,
		Balance:        decimal.NewFromInt(-30),
		CurrencyID:     s.usd.ID,
		Active:         true,
		OverdraftLimit: decimal.NewFromInt(100),
	}
	require.NoError(s.T(), s.db.Create(overdrawn).Error)

	res := s.service.ListAccounts(s.client.ID, 0, 50)
	s.Require().True(res.IsSuccess())

	var found bool
	for _, account := range res.Value.Accounts {
		if account.ID == overdrawn.ID {
			found = true
			s.True(account.Overdrawn)
			s.True(account.OverdraftUsed.Equal(decimal.NewFromInt(30)))
			s.True(account.AvailableOverdraftCredit.Equal(decimal.NewFromInt(70)))
			s.True(account.MaxWithdrawalAmount.Equal(decimal.NewFromInt(40)))
		}
	}
	s.True(found)
}

func (s *AccountServiceTestSuite) TestListAccountTransactions_OwnerSeesHistory() {
	require.NoError(s.T(), s.store.Transactions().Create(&models.Transaction{
		TransactionType: models.TransactionTypeDeposit,
		Lines: []models.AccountTransaction{{
			AccountID:    s.clientChecking.ID,
			Amount:       decimal.NewFromInt(25),
			CurrencyCode: "USD",
			Role:         models.LedgerRoleTarget,
		}},
	}))

	res := s.service.ListAccountTransactions(s.client.ID, s.clientChecking.ID, 0, 50)

	s.Require().True(res.IsSuccess(), "list failed: %s", res.Message())
	s.Equal(int64(1), res.Value.Total)
}

func (s *AccountServiceTestSuite) TestListAccountTransactions_StrangerForbidden() {
	res := s.service.ListAccountTransactions(s.otherClient.ID, s.clientChecking.ID, 0, 50)

	s.True(res.Is(result.KindForbidden))
}

func (s *AccountServiceTestSuite) TestSetAccountActive_BankAdminFreezesClientAccount() {
	res := s.service.SetAccountActive(s.bankAdmin.ID, s.clientChecking.ID, false)

	s.Require().True(res.IsSuccess(), "freeze failed: %s", res.Message())
	s.False(res.Value.Active)

	reloaded, err := s.store.Accounts().GetByID(s.clientChecking.ID)
	s.Require().NoError(err)
	s.False(reloaded.Active)
	s.Equal(s.clientChecking.Version+1, reloaded.Version)
}

func (s *AccountServiceTestSuite) TestSetAccountActive_UnfreezeRestoresAccount() {
	frozen := s.service.SetAccountActive(s.bankAdmin.ID, s.clientChecking.ID, false)
	s.Require().True(frozen.IsSuccess())

	res := s.service.SetAccountActive(s.bankAdmin.ID, s.clientChecking.ID, true)

	s.Require().True(res.IsSuccess(), "unfreeze failed: %s", res.Message())

	reloaded, err := s.store.Accounts().GetByID(s.clientChecking.ID)
	s.Require().NoError(err)
	s.True(reloaded.Active)
}

func (s *AccountServiceTestSuite) TestSetAccountActive_FreezeIsIdempotent() {
	first := s.service.SetAccountActive(s.bankAdmin.ID, s.clientChecking.ID, false)
	s.Require().True(first.IsSuccess())
	versionAfterFirst := first.Value.Version

	second := s.service.SetAccountActive(s.bankAdmin.ID, s.clientChecking.ID, false)

	s.Require().True(second.IsSuccess())
	// No state change, no version churn.
	s.Equal(versionAfterFirst, second.Value.Version)
}

func (s *AccountServiceTestSuite) TestSetAccountActive_ClientCannotFreezeOwn() {
	res := s.service.SetAccountActive(s.client.ID, s.clientChecking.ID, false)

	s.True(res.Is(result.KindForbidden))

	reloaded, err := s.store.Accounts().GetByID(s.clientChecking.ID)
	s.Require().NoError(err)
	s.True(reloaded.Active)
}

func (s *AccountServiceTestSuite) TestSetAccountActive_BankAdminOtherBankForbidden() {
	res := s.service.SetAccountActive(s.bankAdmin.ID, s.otherAccount.ID, false)

	s.True(res.Is(result.KindForbidden))
}

func (s *AccountServiceTestSuite) TestSetAccountActive_GlobalAdminAnywhere() {
	res := s.service.SetAccountActive(s.globalAdmin.ID, s.otherAccount.ID, false)

	s.Require().True(res.IsSuccess(), "freeze failed: %s", res.Message())
}
