// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go
//
// Generated by this command:
//
//	mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks
//

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	context "context"
	authz "corebank/internal/authz"
	dto "corebank/internal/dto"
	models "corebank/internal/models"
	repositories "corebank/internal/repositories"
	result "corebank/internal/result"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"
)

// MockAccountAuthorizerInterface is a mock of AccountAuthorizerInterface interface.
type MockAccountAuthorizerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAccountAuthorizerInterfaceMockRecorder
	isgomock struct{}
}

// MockAccountAuthorizerInterfaceMockRecorder is the mock recorder for MockAccountAuthorizerInterface.
type MockAccountAuthorizerInterfaceMockRecorder struct {
	mock *MockAccountAuthorizerInterface
}

// NewMockAccountAuthorizerInterface creates a new mock instance.
func NewMockAccountAuthorizerInterface(ctrl *gomock.Controller) *MockAccountAuthorizerInterface {
	mock := &MockAccountAuthorizerInterface{ctrl: ctrl}
	mock.recorder = &MockAccountAuthorizerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountAuthorizerInterface) EXPECT() *MockAccountAuthorizerInterfaceMockRecorder {
	return m.recorder
}

// Authorize mocks base method.
func (m *MockAccountAuthorizerInterface) Authorize(actorID, accountID uuid.UUID, op authz.Operation) result.Result[*models.Account] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authorize", actorID, accountID, op)
	ret0, _ := ret[0].(result.Result[*models.Account])
	return ret0
}

// Authorize indicates an expected call of Authorize.
func (mr *MockAccountAuthorizerInterfaceMockRecorder) Authorize(actorID, accountID, op any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authorize", reflect.TypeOf((*MockAccountAuthorizerInterface)(nil).Authorize), actorID, accountID, op)
}

// ListPredicate mocks base method.
func (m *MockAccountAuthorizerInterface) ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPredicate", actorID)
	ret0, _ := ret[0].(repositories.ScopePredicate)
	ret1, _ := ret[1].(result.Status)
	return ret0, ret1
}

// ListPredicate indicates an expected call of ListPredicate.
func (mr *MockAccountAuthorizerInterfaceMockRecorder) ListPredicate(actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPredicate", reflect.TypeOf((*MockAccountAuthorizerInterface)(nil).ListPredicate), actorID)
}

// MockUserAuthorizerInterface is a mock of UserAuthorizerInterface interface.
type MockUserAuthorizerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserAuthorizerInterfaceMockRecorder
	isgomock struct{}
}

// MockUserAuthorizerInterfaceMockRecorder is the mock recorder for MockUserAuthorizerInterface.
type MockUserAuthorizerInterfaceMockRecorder struct {
	mock *MockUserAuthorizerInterface
}

// NewMockUserAuthorizerInterface creates a new mock instance.
func NewMockUserAuthorizerInterface(ctrl *gomock.Controller) *MockUserAuthorizerInterface {
	mock := &MockUserAuthorizerInterface{ctrl: ctrl}
	mock.recorder = &MockUserAuthorizerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserAuthorizerInterface) EXPECT() *MockUserAuthorizerInterfaceMockRecorder {
	return m.recorder
}

// Authorize mocks base method.
func (m *MockUserAuthorizerInterface) Authorize(actorID, targetUserID uuid.UUID, op authz.Operation) result.Result[*models.User] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authorize", actorID, targetUserID, op)
	ret0, _ := ret[0].(result.Result[*models.User])
	return ret0
}

// Authorize indicates an expected call of Authorize.
func (mr *MockUserAuthorizerInterfaceMockRecorder) Authorize(actorID, targetUserID, op any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authorize", reflect.TypeOf((*MockUserAuthorizerInterface)(nil).Authorize), actorID, targetUserID, op)
}

// ListPredicate mocks base method.
func (m *MockUserAuthorizerInterface) ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPredicate", actorID)
	ret0, _ := ret[0].(repositories.ScopePredicate)
	ret1, _ := ret[1].(result.Status)
	return ret0, ret1
}

// ListPredicate indicates an expected call of ListPredicate.
func (mr *MockUserAuthorizerInterfaceMockRecorder) ListPredicate(actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPredicate", reflect.TypeOf((*MockUserAuthorizerInterface)(nil).ListPredicate), actorID)
}

// MockTransactionAuthorizerInterface is a mock of TransactionAuthorizerInterface interface.
type MockTransactionAuthorizerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionAuthorizerInterfaceMockRecorder
	isgomock struct{}
}

// MockTransactionAuthorizerInterfaceMockRecorder is the mock recorder for MockTransactionAuthorizerInterface.
type MockTransactionAuthorizerInterfaceMockRecorder struct {
	mock *MockTransactionAuthorizerInterface
}

// NewMockTransactionAuthorizerInterface creates a new mock instance.
func NewMockTransactionAuthorizerInterface(ctrl *gomock.Controller) *MockTransactionAuthorizerInterface {
	mock := &MockTransactionAuthorizerInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionAuthorizerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionAuthorizerInterface) EXPECT() *MockTransactionAuthorizerInterfaceMockRecorder {
	return m.recorder
}

// Authorize mocks base method.
func (m *MockTransactionAuthorizerInterface) Authorize(actorID, transactionID uuid.UUID, op authz.Operation) result.Result[*models.Transaction] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authorize", actorID, transactionID, op)
	ret0, _ := ret[0].(result.Result[*models.Transaction])
	return ret0
}

// Authorize indicates an expected call of Authorize.
func (mr *MockTransactionAuthorizerInterfaceMockRecorder) Authorize(actorID, transactionID, op any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authorize", reflect.TypeOf((*MockTransactionAuthorizerInterface)(nil).Authorize), actorID, transactionID, op)
}

// ListPredicate mocks base method.
func (m *MockTransactionAuthorizerInterface) ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPredicate", actorID)
	ret0, _ := ret[0].(repositories.ScopePredicate)
	ret1, _ := ret[1].(result.Status)
	return ret0, ret1
}

// ListPredicate indicates an expected call of ListPredicate.
func (mr *MockTransactionAuthorizerInterfaceMockRecorder) ListPredicate(actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPredicate", reflect.TypeOf((*MockTransactionAuthorizerInterface)(nil).ListPredicate), actorID)
}

// MockMoneyMovementServiceInterface is a mock of MoneyMovementServiceInterface interface.
type MockMoneyMovementServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMoneyMovementServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockMoneyMovementServiceInterfaceMockRecorder is the mock recorder for MockMoneyMovementServiceInterface.
type MockMoneyMovementServiceInterfaceMockRecorder struct {
	mock *MockMoneyMovementServiceInterface
}

// NewMockMoneyMovementServiceInterface creates a new mock instance.
func NewMockMoneyMovementServiceInterface(ctrl *gomock.Controller) *MockMoneyMovementServiceInterface {
	mock := &MockMoneyMovementServiceInterface{ctrl: ctrl}
	mock.recorder = &MockMoneyMovementServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMoneyMovementServiceInterface) EXPECT() *MockMoneyMovementServiceInterfaceMockRecorder {
	return m.recorder
}

// Deposit mocks base method.
func (m *MockMoneyMovementServiceInterface) Deposit(actorID, accountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deposit", actorID, accountID, amount)
	ret0, _ := ret[0].(result.Result[dto.TransactionView])
	return ret0
}

// Deposit indicates an expected call of Deposit.
func (mr *MockMoneyMovementServiceInterfaceMockRecorder) Deposit(actorID, accountID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deposit", reflect.TypeOf((*MockMoneyMovementServiceInterface)(nil).Deposit), actorID, accountID, amount)
}

// GetTransaction mocks base method.
func (m *MockMoneyMovementServiceInterface) GetTransaction(actorID, transactionID uuid.UUID) result.Result[*models.Transaction] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTransaction", actorID, transactionID)
	ret0, _ := ret[0].(result.Result[*models.Transaction])
	return ret0
}

// GetTransaction indicates an expected call of GetTransaction.
func (mr *MockMoneyMovementServiceInterfaceMockRecorder) GetTransaction(actorID, transactionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransaction", reflect.TypeOf((*MockMoneyMovementServiceInterface)(nil).GetTransaction), actorID, transactionID)
}

// ListTransactions mocks base method.
func (m *MockMoneyMovementServiceInterface) ListTransactions(actorID uuid.UUID, offset, limit int) result.Result[dto.TransactionListResponse] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTransactions", actorID, offset, limit)
	ret0, _ := ret[0].(result.Result[dto.TransactionListResponse])
	return ret0
}

// ListTransactions indicates an expected call of ListTransactions.
func (mr *MockMoneyMovementServiceInterfaceMockRecorder) ListTransactions(actorID, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockMoneyMovementServiceInterface)(nil).ListTransactions), actorID, offset, limit)
}

// Transfer mocks base method.
func (m *MockMoneyMovementServiceInterface) Transfer(actorID, sourceAccountID, targetAccountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfer", actorID, sourceAccountID, targetAccountID, amount)
	ret0, _ := ret[0].(result.Result[dto.TransactionView])
	return ret0
}

// Transfer indicates an expected call of Transfer.
func (mr *MockMoneyMovementServiceInterfaceMockRecorder) Transfer(actorID, sourceAccountID, targetAccountID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfer", reflect.TypeOf((*MockMoneyMovementServiceInterface)(nil).Transfer), actorID, sourceAccountID, targetAccountID, amount)
}

// Withdraw mocks base method.
func (m *MockMoneyMovementServiceInterface) Withdraw(actorID, accountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Withdraw", actorID, accountID, amount)
	ret0, _ := ret[0].(result.Result[dto.TransactionView])
	return ret0
}

// Withdraw indicates an expected call of Withdraw.
func (mr *MockMoneyMovementServiceInterfaceMockRecorder) Withdraw(actorID, accountID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Withdraw", reflect.TypeOf((*MockMoneyMovementServiceInterface)(nil).Withdraw), actorID, accountID, amount)
}

// MockAccountServiceInterface is a mock of AccountServiceInterface interface.
type MockAccountServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAccountServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockAccountServiceInterfaceMockRecorder is the mock recorder for MockAccountServiceInterface.
type MockAccountServiceInterfaceMockRecorder struct {
	mock *MockAccountServiceInterface
}

// NewMockAccountServiceInterface creates a new mock instance.
func NewMockAccountServiceInterface(ctrl *gomock.Controller) *MockAccountServiceInterface {
	mock := &MockAccountServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAccountServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountServiceInterface) EXPECT() *MockAccountServiceInterfaceMockRecorder {
	return m.recorder
}

// GetAccount mocks base method.
func (m *MockAccountServiceInterface) GetAccount(actorID, accountID uuid.UUID) result.Result[*models.Account] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccount", actorID, accountID)
	ret0, _ := ret[0].(result.Result[*models.Account])
	return ret0
}

// GetAccount indicates an expected call of GetAccount.
func (mr *MockAccountServiceInterfaceMockRecorder) GetAccount(actorID, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccount", reflect.TypeOf((*MockAccountServiceInterface)(nil).GetAccount), actorID, accountID)
}

// ListAccountTransactions mocks base method.
func (m *MockAccountServiceInterface) ListAccountTransactions(actorID, accountID uuid.UUID, offset, limit int) result.Result[dto.TransactionListResponse] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAccountTransactions", actorID, accountID, offset, limit)
	ret0, _ := ret[0].(result.Result[dto.TransactionListResponse])
	return ret0
}

// ListAccountTransactions indicates an expected call of ListAccountTransactions.
func (mr *MockAccountServiceInterfaceMockRecorder) ListAccountTransactions(actorID, accountID, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAccountTransactions", reflect.TypeOf((*MockAccountServiceInterface)(nil).ListAccountTransactions), actorID, accountID, offset, limit)
}

// ListAccounts mocks base method.
func (m *MockAccountServiceInterface) ListAccounts(actorID uuid.UUID, offset, limit int) result.Result[dto.AccountListResponse] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAccounts", actorID, offset, limit)
	ret0, _ := ret[0].(result.Result[dto.AccountListResponse])
	return ret0
}

// ListAccounts indicates an expected call of ListAccounts.
func (mr *MockAccountServiceInterfaceMockRecorder) ListAccounts(actorID, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAccounts", reflect.TypeOf((*MockAccountServiceInterface)(nil).ListAccounts), actorID, offset, limit)
}

// SetAccountActive mocks base method.
func (m *MockAccountServiceInterface) SetAccountActive(actorID, accountID uuid.UUID, active bool) result.Result[*models.Account] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetAccountActive", actorID, accountID, active)
	ret0, _ := ret[0].(result.Result[*models.Account])
	return ret0
}

// SetAccountActive indicates an expected call of SetAccountActive.
func (mr *MockAccountServiceInterfaceMockRecorder) SetAccountActive(actorID, accountID, active any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetAccountActive", reflect.TypeOf((*MockAccountServiceInterface)(nil).SetAccountActive), actorID, accountID, active)
}

// MockUserServiceInterface is a mock of UserServiceInterface interface.
type MockUserServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockUserServiceInterfaceMockRecorder is the mock recorder for MockUserServiceInterface.
type MockUserServiceInterfaceMockRecorder struct {
	mock *MockUserServiceInterface
}

// NewMockUserServiceInterface creates a new mock instance.
func NewMockUserServiceInterface(ctrl *gomock.Controller) *MockUserServiceInterface {
	mock := &MockUserServiceInterface{ctrl: ctrl}
	mock.recorder = &MockUserServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserServiceInterface) EXPECT() *MockUserServiceInterfaceMockRecorder {
	return m.recorder
}

// GetUser mocks base method.
func (m *MockUserServiceInterface) GetUser(actorID, targetUserID uuid.UUID) result.Result[*models.User] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUser", actorID, targetUserID)
	ret0, _ := ret[0].(result.Result[*models.User])
	return ret0
}

// GetUser indicates an expected call of GetUser.
func (mr *MockUserServiceInterfaceMockRecorder) GetUser(actorID, targetUserID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUser", reflect.TypeOf((*MockUserServiceInterface)(nil).GetUser), actorID, targetUserID)
}

// ListUsers mocks base method.
func (m *MockUserServiceInterface) ListUsers(actorID uuid.UUID, offset, limit int) result.Result[dto.UserListResponse] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUsers", actorID, offset, limit)
	ret0, _ := ret[0].(result.Result[dto.UserListResponse])
	return ret0
}

// ListUsers indicates an expected call of ListUsers.
func (mr *MockUserServiceInterfaceMockRecorder) ListUsers(actorID, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUsers", reflect.TypeOf((*MockUserServiceInterface)(nil).ListUsers), actorID, offset, limit)
}

// MockInterestServiceInterface is a mock of InterestServiceInterface interface.
type MockInterestServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInterestServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockInterestServiceInterfaceMockRecorder is the mock recorder for MockInterestServiceInterface.
type MockInterestServiceInterfaceMockRecorder struct {
	mock *MockInterestServiceInterface
}

// NewMockInterestServiceInterface creates a new mock instance.
func NewMockInterestServiceInterface(ctrl *gomock.Controller) *MockInterestServiceInterface {
	mock := &MockInterestServiceInterface{ctrl: ctrl}
	mock.recorder = &MockInterestServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInterestServiceInterface) EXPECT() *MockInterestServiceInterfaceMockRecorder {
	return m.recorder
}

// ApplyDueInterest mocks base method.
func (m *MockInterestServiceInterface) ApplyDueInterest(now time.Time) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyDueInterest", now)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyDueInterest indicates an expected call of ApplyDueInterest.
func (mr *MockInterestServiceInterfaceMockRecorder) ApplyDueInterest(now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyDueInterest", reflect.TypeOf((*MockInterestServiceInterface)(nil).ApplyDueInterest), now)
}

// Start mocks base method.
func (m *MockInterestServiceInterface) Start(ctx context.Context, interval time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", ctx, interval)
}

// Start indicates an expected call of Start.
func (mr *MockInterestServiceInterfaceMockRecorder) Start(ctx, interval any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockInterestServiceInterface)(nil).Start), ctx, interval)
}

// MockCurrencyConverterInterface is a mock of CurrencyConverterInterface interface.
type MockCurrencyConverterInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCurrencyConverterInterfaceMockRecorder
	isgomock struct{}
}

// MockCurrencyConverterInterfaceMockRecorder is the mock recorder for MockCurrencyConverterInterface.
type MockCurrencyConverterInterfaceMockRecorder struct {
	mock *MockCurrencyConverterInterface
}

// NewMockCurrencyConverterInterface creates a new mock instance.
func NewMockCurrencyConverterInterface(ctrl *gomock.Controller) *MockCurrencyConverterInterface {
	mock := &MockCurrencyConverterInterface{ctrl: ctrl}
	mock.recorder = &MockCurrencyConverterInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCurrencyConverterInterface) EXPECT() *MockCurrencyConverterInterfaceMockRecorder {
	return m.recorder
}

// Convert mocks base method.
func (m *MockCurrencyConverterInterface) Convert(amount decimal.Decimal, from, to models.Currency) decimal.Decimal {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Convert", amount, from, to)
	ret0, _ := ret[0].(decimal.Decimal)
	return ret0
}

// Convert indicates an expected call of Convert.
func (mr *MockCurrencyConverterInterfaceMockRecorder) Convert(amount, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Convert", reflect.TypeOf((*MockCurrencyConverterInterface)(nil).Convert), amount, from, to)
}

// MockTokenServiceInterface is a mock of TokenServiceInterface interface.
type MockTokenServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockTokenServiceInterfaceMockRecorder is the mock recorder for MockTokenServiceInterface.
type MockTokenServiceInterfaceMockRecorder struct {
	mock *MockTokenServiceInterface
}

// NewMockTokenServiceInterface creates a new mock instance.
func NewMockTokenServiceInterface(ctrl *gomock.Controller) *MockTokenServiceInterface {
	mock := &MockTokenServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTokenServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenServiceInterface) EXPECT() *MockTokenServiceInterfaceMockRecorder {
	return m.recorder
}

// ExtractTokenFromHeader mocks base method.
func (m *MockTokenServiceInterface) ExtractTokenFromHeader(authHeader string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtractTokenFromHeader", authHeader)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExtractTokenFromHeader indicates an expected call of ExtractTokenFromHeader.
func (mr *MockTokenServiceInterfaceMockRecorder) ExtractTokenFromHeader(authHeader any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtractTokenFromHeader", reflect.TypeOf((*MockTokenServiceInterface)(nil).ExtractTokenFromHeader), authHeader)
}

// GenerateAccessToken mocks base method.
func (m *MockTokenServiceInterface) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAccessToken", user)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateAccessToken indicates an expected call of GenerateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateAccessToken(user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateAccessToken), user)
}

// ValidateAccessToken mocks base method.
func (m *MockTokenServiceInterface) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateAccessToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateAccessToken indicates an expected call of ValidateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateAccessToken(tokenString any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateAccessToken), tokenString)
}

// MockAuthServiceInterface is a mock of AuthServiceInterface interface.
type MockAuthServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthServiceInterfaceMockRecorder is the mock recorder for MockAuthServiceInterface.
type MockAuthServiceInterfaceMockRecorder struct {
	mock *MockAuthServiceInterface
}

// NewMockAuthServiceInterface creates a new mock instance.
func NewMockAuthServiceInterface(ctrl *gomock.Controller) *MockAuthServiceInterface {
	mock := &MockAuthServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAuthServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthServiceInterface) EXPECT() *MockAuthServiceInterfaceMockRecorder {
	return m.recorder
}

// Login mocks base method.
func (m *MockAuthServiceInterface) Login(email, password string) result.Result[dto.LoginResponse] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", email, password)
	ret0, _ := ret[0].(result.Result[dto.LoginResponse])
	return ret0
}

// Login indicates an expected call of Login.
func (mr *MockAuthServiceInterfaceMockRecorder) Login(email, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthServiceInterface)(nil).Login), email, password)
}

// MockPasswordServiceInterface is a mock of PasswordServiceInterface interface.
type MockPasswordServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockPasswordServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockPasswordServiceInterfaceMockRecorder is the mock recorder for MockPasswordServiceInterface.
type MockPasswordServiceInterfaceMockRecorder struct {
	mock *MockPasswordServiceInterface
}

// NewMockPasswordServiceInterface creates a new mock instance.
func NewMockPasswordServiceInterface(ctrl *gomock.Controller) *MockPasswordServiceInterface {
	mock := &MockPasswordServiceInterface{ctrl: ctrl}
	mock.recorder = &MockPasswordServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPasswordServiceInterface) EXPECT() *MockPasswordServiceInterfaceMockRecorder {
	return m.recorder
}

// ChangePassword mocks base method.
func (m *MockPasswordServiceInterface) ChangePassword(actorID, targetUserID uuid.UUID, currentPassword, newPassword string) result.Status {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChangePassword", actorID, targetUserID, currentPassword, newPassword)
	ret0, _ := ret[0].(result.Status)
	return ret0
}

// ChangePassword indicates an expected call of ChangePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ChangePassword(actorID, targetUserID, currentPassword, newPassword any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChangePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ChangePassword), actorID, targetUserID, currentPassword, newPassword)
}

// HashPassword mocks base method.
func (m *MockPasswordServiceInterface) HashPassword(password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashPassword", password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HashPassword indicates an expected call of HashPassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) HashPassword(password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashPassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).HashPassword), password)
}

// ValidatePassword mocks base method.
func (m *MockPasswordServiceInterface) ValidatePassword(password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidatePassword", password)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidatePassword indicates an expected call of ValidatePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ValidatePassword(password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidatePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ValidatePassword), password)
}

// VerifyPassword mocks base method.
func (m *MockPasswordServiceInterface) VerifyPassword(hashedPassword, password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyPassword", hashedPassword, password)
	ret0, _ := ret[0].(error)
	return ret0
}

// VerifyPassword indicates an expected call of VerifyPassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) VerifyPassword(hashedPassword, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyPassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).VerifyPassword), hashedPassword, password)
}

// MockAuditServiceInterface is a mock of AuditServiceInterface interface.
type MockAuditServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuditServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockAuditServiceInterfaceMockRecorder is the mock recorder for MockAuditServiceInterface.
type MockAuditServiceInterfaceMockRecorder struct {
	mock *MockAuditServiceInterface
}

// NewMockAuditServiceInterface creates a new mock instance.
func NewMockAuditServiceInterface(ctrl *gomock.Controller) *MockAuditServiceInterface {
	mock := &MockAuditServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAuditServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditServiceInterface) EXPECT() *MockAuditServiceInterfaceMockRecorder {
	return m.recorder
}

// GetUserActivity mocks base method.
func (m *MockAuditServiceInterface) GetUserActivity(userID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserActivity", userID, offset, limit)
	ret0, _ := ret[0].([]models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetUserActivity indicates an expected call of GetUserActivity.
func (mr *MockAuditServiceInterfaceMockRecorder) GetUserActivity(userID, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserActivity", reflect.TypeOf((*MockAuditServiceInterface)(nil).GetUserActivity), userID, offset, limit)
}

// LogDeposit mocks base method.
func (m *MockAuditServiceInterface) LogDeposit(userID, accountID uuid.UUID, amount decimal.Decimal, currencyCode string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogDeposit", userID, accountID, amount, currencyCode)
}

// LogDeposit indicates an expected call of LogDeposit.
func (mr *MockAuditServiceInterfaceMockRecorder) LogDeposit(userID, accountID, amount, currencyCode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogDeposit", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogDeposit), userID, accountID, amount, currencyCode)
}

// LogInterestApplied mocks base method.
func (m *MockAuditServiceInterface) LogInterestApplied(accountID uuid.UUID, amount decimal.Decimal) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogInterestApplied", accountID, amount)
}

// LogInterestApplied indicates an expected call of LogInterestApplied.
func (mr *MockAuditServiceInterfaceMockRecorder) LogInterestApplied(accountID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogInterestApplied", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogInterestApplied), accountID, amount)
}

// LogTransfer mocks base method.
func (m *MockAuditServiceInterface) LogTransfer(userID, transactionID uuid.UUID, amount, fee decimal.Decimal, currencyCode string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogTransfer", userID, transactionID, amount, fee, currencyCode)
}

// LogTransfer indicates an expected call of LogTransfer.
func (mr *MockAuditServiceInterfaceMockRecorder) LogTransfer(userID, transactionID, amount, fee, currencyCode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogTransfer", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogTransfer), userID, transactionID, amount, fee, currencyCode)
}

// LogTransferFailed mocks base method.
func (m *MockAuditServiceInterface) LogTransferFailed(userID, sourceAccountID, targetAccountID uuid.UUID, reason string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogTransferFailed", userID, sourceAccountID, targetAccountID, reason)
}

// LogTransferFailed indicates an expected call of LogTransferFailed.
func (mr *MockAuditServiceInterfaceMockRecorder) LogTransferFailed(userID, sourceAccountID, targetAccountID, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogTransferFailed", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogTransferFailed), userID, sourceAccountID, targetAccountID, reason)
}

// LogWithdraw mocks base method.
func (m *MockAuditServiceInterface) LogWithdraw(userID, accountID uuid.UUID, amount decimal.Decimal, currencyCode string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogWithdraw", userID, accountID, amount, currencyCode)
}

// LogWithdraw indicates an expected call of LogWithdraw.
func (mr *MockAuditServiceInterfaceMockRecorder) LogWithdraw(userID, accountID, amount, currencyCode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogWithdraw", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogWithdraw), userID, accountID, amount, currencyCode)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
	isgomock struct{}
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// IncrementCounter mocks base method.
func (m *MockMetricsRecorderInterface) IncrementCounter(name string, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncrementCounter", name, tags)
}

// IncrementCounter indicates an expected call of IncrementCounter.
func (mr *MockMetricsRecorderInterfaceMockRecorder) IncrementCounter(name, tags any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounter", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).IncrementCounter), name, tags)
}

// RecordGauge mocks base method.
func (m *MockMetricsRecorderInterface) RecordGauge(name string, value float64, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordGauge", name, value, tags)
}

// RecordGauge indicates an expected call of RecordGauge.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordGauge(name, value, tags any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordGauge", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordGauge), name, value, tags)
}

// RecordProcessingTime mocks base method.
func (m *MockMetricsRecorderInterface) RecordProcessingTime(name string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordProcessingTime", name, duration)
}

// RecordProcessingTime indicates an expected call of RecordProcessingTime.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordProcessingTime(name, duration any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordProcessingTime", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordProcessingTime), name, duration)
}
