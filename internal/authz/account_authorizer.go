package authz

import (
	"errors"
	"log/slog"

	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
)

// AccountAuthorizer gates operations on accounts. Every decision loads
// the actor and the target account and runs the shared rule table
// against the account's owner.
type AccountAuthorizer struct {
	users    repositories.UserRepositoryInterface
	accounts repositories.AccountRepositoryInterface
	resolver ScopeResolver
	logger   *slog.Logger
}

// NewAccountAuthorizer creates a new account authorizer
func NewAccountAuthorizer(
	users repositories.UserRepositoryInterface,
	accounts repositories.AccountRepositoryInterface,
	resolver ScopeResolver,
	logger *slog.Logger,
) *AccountAuthorizer {
	return &AccountAuthorizer{
		users:    users,
		accounts: accounts,
		resolver: resolver,
		logger:   logger,
	}
}

// Authorize decides whether the actor may perform op on the account and
// returns the loaded account on success so callers do not re-read it.
func (a *AccountAuthorizer) Authorize(actorID, accountID uuid.UUID, op Operation) result.Result[*models.Account] {
	ctx, st := resolveActorContext(a.users, a.resolver, actorID)
	if st.IsFailure() {
		return result.FailWith[*models.Account](st)
	}

	account, err := a.accounts.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return result.FailWith[*models.Account](result.NotFound("account", accountID))
		}
		a.logger.Error("failed to load account for authorization",
			"account_id", accountID, "error", err)
		return result.FailWith[*models.Account](result.Fail(result.KindUnknown, "failed to load account"))
	}

	target := Target{
		OwnerID:     account.UserID,
		OwnerRole:   account.User.Role,
		OwnerBankID: account.User.BankID,
	}

	if st := Evaluate(ctx.actor, ctx.scope, target, op); st.IsFailure() {
		a.logger.Warn("account operation denied",
			"actor_id", actorID,
			"account_id", accountID,
			"operation", string(op),
			"scope", ctx.scope.String(),
		)
		return result.FailWith[*models.Account](st)
	}

	return result.Ok(account)
}

// ListPredicate returns the query predicate matching exactly the
// accounts the actor may view.
func (a *AccountAuthorizer) ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status) {
	ctx, st := resolveActorContext(a.users, a.resolver, actorID)
	if st.IsFailure() {
		return nil, st
	}

	return repositories.ScopePredicate(AccountScopeFilter(ctx.actor, ctx.scope)), result.OK()
}
