package authz

import (
	"fmt"

	"corebank/internal/models"

	"github.com/google/uuid"
)

// AccessScope is the breadth of an actor's authority, ordered from most
// to least restrictive. The zero value is deliberately not a valid
// scope so an unresolved scope can never be mistaken for an allow.
type AccessScope int

const (
	ScopeSelf AccessScope = iota + 1
	ScopeBankLevel
	ScopeGlobal
)

func (s AccessScope) String() string {
	switch s {
	case ScopeSelf:
		return "self"
	case ScopeBankLevel:
		return "bank_level"
	case ScopeGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// IsValid reports whether the scope is one of the three known tiers.
func (s AccessScope) IsValid() bool {
	return s == ScopeSelf || s == ScopeBankLevel || s == ScopeGlobal
}

// Operation names an action an actor wants to perform on a target.
type Operation string

const (
	OperationView           Operation = "view"
	OperationEdit           Operation = "edit"
	OperationDelete         Operation = "delete"
	OperationFreeze         Operation = "freeze"
	OperationUnfreeze       Operation = "unfreeze"
	OperationDeposit        Operation = "deposit"
	OperationWithdraw       Operation = "withdraw"
	OperationTransfer       Operation = "transfer"
	OperationChangePassword Operation = "change_password"
)

// Actor is the identity context of the caller, extracted from the
// authenticated request. BankID is nil for platform-level actors.
type Actor struct {
	UserID uuid.UUID
	Role   string
	BankID *uuid.UUID
}

// ScopeResolver computes the caller's access scope from its identity
// context.
type ScopeResolver interface {
	Resolve(actor Actor) (AccessScope, error)
}

// roleScopeResolver derives the scope directly from the actor's role
// claim.
type roleScopeResolver struct{}

// NewScopeResolver creates the role-based scope resolver.
func NewScopeResolver() ScopeResolver {
	return roleScopeResolver{}
}

// Resolve maps a role to its scope. Unknown roles are an error so the
// caller fails closed instead of silently allowing.
func (roleScopeResolver) Resolve(actor Actor) (AccessScope, error) {
	switch actor.Role {
	case models.RoleClient:
		return ScopeSelf, nil
	case models.RoleBankAdmin:
		return ScopeBankLevel, nil
	case models.RoleGlobalAdmin:
		return ScopeGlobal, nil
	default:
		return 0, fmt.Errorf("no access scope mapped for role %q", actor.Role)
	}
}
