package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrVersionConflict is reported when a write loses the optimistic
	// concurrency race: the row's version token moved between read and
	// write.
	ErrVersionConflict = errors.New("version conflict: row was modified concurrently")
)

// Store is an explicit transaction scope. Repositories are always
// derived from a Store, so whether a write joins an open transaction is
// carried by the handle itself and never by ambient state.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store bound to a database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for query composition.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// WithTransaction runs fn against a store bound to one database
// transaction. The transaction commits when fn returns nil and rolls
// back on error, so a multi-aggregate mutation either fully applies or
// fully reverts.
func (s *Store) WithTransaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// IsVersionConflict is the conflict predicate handed to the retry
// executor so it stays decoupled from this store's error values.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// Accounts returns an account repository bound to this scope.
func (s *Store) Accounts() AccountRepositoryInterface {
	return NewAccountRepository(s.db)
}

// Users returns a user repository bound to this scope.
func (s *Store) Users() UserRepositoryInterface {
	return NewUserRepository(s.db)
}

// Banks returns a bank repository bound to this scope.
func (s *Store) Banks() BankRepositoryInterface {
	return NewBankRepository(s.db)
}

// Currencies returns a currency repository bound to this scope.
func (s *Store) Currencies() CurrencyRepositoryInterface {
	return NewCurrencyRepository(s.db)
}

// Transactions returns a ledger repository bound to this scope.
func (s *Store) Transactions() TransactionRepositoryInterface {
	return NewTransactionRepository(s.db)
}

// AuditLogs returns an audit log repository bound to this scope.
func (s *Store) AuditLogs() AuditLogRepositoryInterface {
	return NewAuditLogRepository(s.db)
}
