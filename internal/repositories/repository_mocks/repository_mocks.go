// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go
//
// Generated by this command:
//
//	mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks
//

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	models "corebank/internal/models"
	repositories "corebank/internal/repositories"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockAccountRepositoryInterface is a mock of AccountRepositoryInterface interface.
type MockAccountRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAccountRepositoryInterfaceMockRecorder
	isgomock struct{}
}

// MockAccountRepositoryInterfaceMockRecorder is the mock recorder for MockAccountRepositoryInterface.
type MockAccountRepositoryInterfaceMockRecorder struct {
	mock *MockAccountRepositoryInterface
}

// NewMockAccountRepositoryInterface creates a new mock instance.
func NewMockAccountRepositoryInterface(ctrl *gomock.Controller) *MockAccountRepositoryInterface {
	mock := &MockAccountRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockAccountRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountRepositoryInterface) EXPECT() *MockAccountRepositoryInterfaceMockRecorder {
	return m.recorder
}

// AppendInterestLog mocks base method.
func (m *MockAccountRepositoryInterface) AppendInterestLog(entry *models.InterestLogEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AppendInterestLog", entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// AppendInterestLog indicates an expected call of AppendInterestLog.
func (mr *MockAccountRepositoryInterfaceMockRecorder) AppendInterestLog(entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AppendInterestLog", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).AppendInterestLog), entry)
}

// Create mocks base method.
func (m *MockAccountRepositoryInterface) Create(account *models.Account) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", account)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Create(account any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Create), account)
}

// GetByAccountNumber mocks base method.
func (m *MockAccountRepositoryInterface) GetByAccountNumber(accountNumber string) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByAccountNumber", accountNumber)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByAccountNumber indicates an expected call of GetByAccountNumber.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetByAccountNumber(accountNumber any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAccountNumber", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetByAccountNumber), accountNumber)
}

// GetByID mocks base method.
func (m *MockAccountRepositoryInterface) GetByID(id uuid.UUID) (*models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetByID(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetByID), id)
}

// GetByIDs mocks base method.
func (m *MockAccountRepositoryInterface) GetByIDs(ids []uuid.UUID) ([]models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDs", ids)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDs indicates an expected call of GetByIDs.
func (mr *MockAccountRepositoryInterfaceMockRecorder) GetByIDs(ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDs", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).GetByIDs), ids)
}

// List mocks base method.
func (m *MockAccountRepositoryInterface) List(predicate repositories.ScopePredicate, offset, limit int) ([]models.Account, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", predicate, offset, limit)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockAccountRepositoryInterfaceMockRecorder) List(predicate, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).List), predicate, offset, limit)
}

// ListSavingsDueForInterest mocks base method.
func (m *MockAccountRepositoryInterface) ListSavingsDueForInterest(now time.Time) ([]models.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListSavingsDueForInterest", now)
	ret0, _ := ret[0].([]models.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListSavingsDueForInterest indicates an expected call of ListSavingsDueForInterest.
func (mr *MockAccountRepositoryInterfaceMockRecorder) ListSavingsDueForInterest(now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListSavingsDueForInterest", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).ListSavingsDueForInterest), now)
}

// Update mocks base method.
func (m *MockAccountRepositoryInterface) Update(account *models.Account) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", account)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockAccountRepositoryInterfaceMockRecorder) Update(account any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockAccountRepositoryInterface)(nil).Update), account)
}

// MockUserRepositoryInterface is a mock of UserRepositoryInterface interface.
type MockUserRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryInterfaceMockRecorder
	isgomock struct{}
}

// MockUserRepositoryInterfaceMockRecorder is the mock recorder for MockUserRepositoryInterface.
type MockUserRepositoryInterfaceMockRecorder struct {
	mock *MockUserRepositoryInterface
}

// NewMockUserRepositoryInterface creates a new mock instance.
func NewMockUserRepositoryInterface(ctrl *gomock.Controller) *MockUserRepositoryInterface {
	mock := &MockUserRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepositoryInterface) EXPECT() *MockUserRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockUserRepositoryInterface) Create(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserRepositoryInterfaceMockRecorder) Create(user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Create), user)
}

// GetByEmail mocks base method.
func (m *MockUserRepositoryInterface) GetByEmail(email string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmail", email)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmail indicates an expected call of GetByEmail.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByEmail(email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmail", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByEmail), email)
}

// GetByID mocks base method.
func (m *MockUserRepositoryInterface) GetByID(id uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByID(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByID), id)
}

// List mocks base method.
func (m *MockUserRepositoryInterface) List(predicate repositories.ScopePredicate, offset, limit int) ([]models.User, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", predicate, offset, limit)
	ret0, _ := ret[0].([]models.User)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockUserRepositoryInterfaceMockRecorder) List(predicate, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockUserRepositoryInterface)(nil).List), predicate, offset, limit)
}

// UpdatePasswordHash mocks base method.
func (m *MockUserRepositoryInterface) UpdatePasswordHash(userID uuid.UUID, passwordHash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePasswordHash", userID, passwordHash)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePasswordHash indicates an expected call of UpdatePasswordHash.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdatePasswordHash(userID, passwordHash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePasswordHash", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdatePasswordHash), userID, passwordHash)
}

// MockBankRepositoryInterface is a mock of BankRepositoryInterface interface.
type MockBankRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBankRepositoryInterfaceMockRecorder
	isgomock struct{}
}

// MockBankRepositoryInterfaceMockRecorder is the mock recorder for MockBankRepositoryInterface.
type MockBankRepositoryInterfaceMockRecorder struct {
	mock *MockBankRepositoryInterface
}

// NewMockBankRepositoryInterface creates a new mock instance.
func NewMockBankRepositoryInterface(ctrl *gomock.Controller) *MockBankRepositoryInterface {
	mock := &MockBankRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockBankRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBankRepositoryInterface) EXPECT() *MockBankRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockBankRepositoryInterface) Create(bank *models.Bank) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", bank)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockBankRepositoryInterfaceMockRecorder) Create(bank any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBankRepositoryInterface)(nil).Create), bank)
}

// GetByID mocks base method.
func (m *MockBankRepositoryInterface) GetByID(id uuid.UUID) (*models.Bank, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Bank)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockBankRepositoryInterfaceMockRecorder) GetByID(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockBankRepositoryInterface)(nil).GetByID), id)
}

// GetByIDs mocks base method.
func (m *MockBankRepositoryInterface) GetByIDs(ids []uuid.UUID) ([]models.Bank, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDs", ids)
	ret0, _ := ret[0].([]models.Bank)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDs indicates an expected call of GetByIDs.
func (mr *MockBankRepositoryInterfaceMockRecorder) GetByIDs(ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDs", reflect.TypeOf((*MockBankRepositoryInterface)(nil).GetByIDs), ids)
}

// MockCurrencyRepositoryInterface is a mock of CurrencyRepositoryInterface interface.
type MockCurrencyRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCurrencyRepositoryInterfaceMockRecorder
	isgomock struct{}
}

// MockCurrencyRepositoryInterfaceMockRecorder is the mock recorder for MockCurrencyRepositoryInterface.
type MockCurrencyRepositoryInterfaceMockRecorder struct {
	mock *MockCurrencyRepositoryInterface
}

// NewMockCurrencyRepositoryInterface creates a new mock instance.
func NewMockCurrencyRepositoryInterface(ctrl *gomock.Controller) *MockCurrencyRepositoryInterface {
	mock := &MockCurrencyRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockCurrencyRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCurrencyRepositoryInterface) EXPECT() *MockCurrencyRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockCurrencyRepositoryInterface) Create(currency *models.Currency) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", currency)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCurrencyRepositoryInterfaceMockRecorder) Create(currency any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCurrencyRepositoryInterface)(nil).Create), currency)
}

// GetByCode mocks base method.
func (m *MockCurrencyRepositoryInterface) GetByCode(code string) (*models.Currency, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByCode", code)
	ret0, _ := ret[0].(*models.Currency)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByCode indicates an expected call of GetByCode.
func (mr *MockCurrencyRepositoryInterfaceMockRecorder) GetByCode(code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByCode", reflect.TypeOf((*MockCurrencyRepositoryInterface)(nil).GetByCode), code)
}

// GetByID mocks base method.
func (m *MockCurrencyRepositoryInterface) GetByID(id uuid.UUID) (*models.Currency, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Currency)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockCurrencyRepositoryInterfaceMockRecorder) GetByID(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCurrencyRepositoryInterface)(nil).GetByID), id)
}

// MockTransactionRepositoryInterface is a mock of TransactionRepositoryInterface interface.
type MockTransactionRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionRepositoryInterfaceMockRecorder
	isgomock struct{}
}

// MockTransactionRepositoryInterfaceMockRecorder is the mock recorder for MockTransactionRepositoryInterface.
type MockTransactionRepositoryInterfaceMockRecorder struct {
	mock *MockTransactionRepositoryInterface
}

// NewMockTransactionRepositoryInterface creates a new mock instance.
func NewMockTransactionRepositoryInterface(ctrl *gomock.Controller) *MockTransactionRepositoryInterface {
	mock := &MockTransactionRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockTransactionRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionRepositoryInterface) EXPECT() *MockTransactionRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTransactionRepositoryInterface) Create(transaction *models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) Create(transaction any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).Create), transaction)
}

// GetByID mocks base method.
func (m *MockTransactionRepositoryInterface) GetByID(id uuid.UUID) (*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) GetByID(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).GetByID), id)
}

// List mocks base method.
func (m *MockTransactionRepositoryInterface) List(predicate repositories.ScopePredicate, offset, limit int) ([]models.Transaction, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", predicate, offset, limit)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) List(predicate, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).List), predicate, offset, limit)
}

// ListByAccountID mocks base method.
func (m *MockTransactionRepositoryInterface) ListByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByAccountID", accountID, offset, limit)
	ret0, _ := ret[0].([]models.Transaction)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByAccountID indicates an expected call of ListByAccountID.
func (mr *MockTransactionRepositoryInterfaceMockRecorder) ListByAccountID(accountID, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByAccountID", reflect.TypeOf((*MockTransactionRepositoryInterface)(nil).ListByAccountID), accountID, offset, limit)
}

// MockAuditLogRepositoryInterface is a mock of AuditLogRepositoryInterface interface.
type MockAuditLogRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuditLogRepositoryInterfaceMockRecorder
	isgomock struct{}
}

// MockAuditLogRepositoryInterfaceMockRecorder is the mock recorder for MockAuditLogRepositoryInterface.
type MockAuditLogRepositoryInterfaceMockRecorder struct {
	mock *MockAuditLogRepositoryInterface
}

// NewMockAuditLogRepositoryInterface creates a new mock instance.
func NewMockAuditLogRepositoryInterface(ctrl *gomock.Controller) *MockAuditLogRepositoryInterface {
	mock := &MockAuditLogRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockAuditLogRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditLogRepositoryInterface) EXPECT() *MockAuditLogRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAuditLogRepositoryInterface) Create(log *models.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", log)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) Create(log any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).Create), log)
}

// GetByUserID mocks base method.
func (m *MockAuditLogRepositoryInterface) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID, offset, limit)
	ret0, _ := ret[0].([]models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetByUserID(userID, offset, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetByUserID), userID, offset, limit)
}
