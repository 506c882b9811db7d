package authz

import (
	"fmt"

	"corebank/internal/models"
	"corebank/internal/result"

	"github.com/google/uuid"
)

// Target is the authorization-relevant slice of a resource: who owns
// it, the owner's role, and the owner's bank. One rule table serves
// accounts, users, and transactions because they all authorize against
// their owner.
type Target struct {
	OwnerID     uuid.UUID
	OwnerRole   string
	OwnerBankID *uuid.UUID
}

// Evaluate applies the uniform two-step policy: the scope-independent
// self-action table first, then the scope rule. Unknown scopes deny.
func Evaluate(actor Actor, scope AccessScope, target Target, op Operation) result.Status {
	if actor.UserID == target.OwnerID {
		if st, decided := evaluateSelfAction(op); decided {
			return st
		}
	}

	switch scope {
	case ScopeGlobal:
		return result.OK()

	case ScopeSelf:
		if actor.UserID == target.OwnerID {
			return result.OK()
		}
		return result.Forbidden("resource does not belong to the acting user")

	case ScopeBankLevel:
		if target.OwnerRole != models.RoleClient {
			return result.Forbidden("bank-level actors may only act on client-owned resources")
		}
		if actor.BankID == nil || target.OwnerBankID == nil || *actor.BankID != *target.OwnerBankID {
			return result.Forbidden("resource belongs to a different bank")
		}
		return result.OK()

	default:
		return result.Forbidden("access scope could not be determined")
	}
}

// evaluateSelfAction is the fixed rule table for actors touching their
// own records. It is independent of scope: a global admin is bound by
// the same restrictions on their own data as anyone else. The second
// return value is false for operations the table does not decide.
func evaluateSelfAction(op Operation) (result.Status, bool) {
	switch op {
	case OperationDeposit, OperationWithdraw, OperationTransfer:
		return result.OK(), true
	case OperationChangePassword:
		return result.OK(), true
	case OperationEdit, OperationFreeze, OperationUnfreeze:
		return result.Forbidden(fmt.Sprintf("users may not %s their own records", op)), true
	case OperationDelete:
		return result.Forbidden("users may not delete their own records"), true
	default:
		return result.Status{}, false
	}
}
