package authz

import (
	"corebank/internal/models"

	"gorm.io/gorm"
)

// Scope filters translate an access scope into a query predicate so
// list endpoints return exactly the rows the per-item checks would
// allow. Unknown scopes match nothing.

// AccountScopeFilter restricts an accounts query to what the actor may
// view.
func AccountScopeFilter(actor Actor, scope AccessScope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch scope {
		case ScopeGlobal:
			return db
		case ScopeSelf:
			return db.Where("accounts.user_id = ?", actor.UserID)
		case ScopeBankLevel:
			if actor.BankID == nil {
				return db.Where("1 = 0")
			}
			return db.
				Joins("JOIN users ON users.id = accounts.user_id").
				Where("users.role = ? AND users.bank_id = ?", models.RoleClient, *actor.BankID)
		default:
			return db.Where("1 = 0")
		}
	}
}

// UserScopeFilter restricts a users query to what the actor may view.
func UserScopeFilter(actor Actor, scope AccessScope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch scope {
		case ScopeGlobal:
			return db
		case ScopeSelf:
			return db.Where("users.id = ?", actor.UserID)
		case ScopeBankLevel:
			if actor.BankID == nil {
				return db.Where("1 = 0")
			}
			return db.Where("users.role = ? AND users.bank_id = ?", models.RoleClient, *actor.BankID)
		default:
			return db.Where("1 = 0")
		}
	}
}

// TransactionScopeFilter restricts a ledger query to transactions that
// touch an account the actor may view.
func TransactionScopeFilter(actor Actor, scope AccessScope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch scope {
		case ScopeGlobal:
			return db
		case ScopeSelf:
			return db.Where(
				`transactions.id IN (
					SELECT l.transaction_id FROM account_transactions l
					JOIN accounts a ON a.id = l.account_id
					WHERE a.user_id = ?)`,
				actor.UserID,
			)
		case ScopeBankLevel:
			if actor.BankID == nil {
				return db.Where("1 = 0")
			}
			return db.Where(
				`transactions.id IN (
					SELECT l.transaction_id FROM account_transactions l
					JOIN accounts a ON a.id = l.account_id
					JOIN users u ON u.id = a.user_id
					WHERE u.role = ? AND u.bank_id = ?)`,
				models.RoleClient, *actor.BankID,
			)
		default:
			return db.Where("1 = 0")
		}
	}
}
