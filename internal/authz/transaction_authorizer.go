package authz

import (
	"errors"
	"log/slog"

	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
)

// TransactionAuthorizer gates access to ledger entries. A transaction
// is visible when the actor may view at least one account it touches;
// the actor sees their own side of a transfer even when the
// counterparty is out of scope.
type TransactionAuthorizer struct {
	users        repositories.UserRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	resolver     ScopeResolver
	logger       *slog.Logger
}

// NewTransactionAuthorizer creates a new transaction authorizer
func NewTransactionAuthorizer(
	users repositories.UserRepositoryInterface,
	transactions repositories.TransactionRepositoryInterface,
	resolver ScopeResolver,
	logger *slog.Logger,
) *TransactionAuthorizer {
	return &TransactionAuthorizer{
		users:        users,
		transactions: transactions,
		resolver:     resolver,
		logger:       logger,
	}
}

// Authorize decides whether the actor may perform op on the transaction
// and returns it, lines loaded, on success.
func (a *TransactionAuthorizer) Authorize(actorID, transactionID uuid.UUID, op Operation) result.Result[*models.Transaction] {
	ctx, st := resolveActorContext(a.users, a.resolver, actorID)
	if st.IsFailure() {
		return result.FailWith[*models.Transaction](st)
	}

	transaction, err := a.transactions.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return result.FailWith[*models.Transaction](result.NotFound("transaction", transactionID))
		}
		a.logger.Error("failed to load transaction for authorization",
			"transaction_id", transactionID, "error", err)
		return result.FailWith[*models.Transaction](result.Fail(result.KindUnknown, "failed to load transaction"))
	}

	for i := range transaction.Lines {
		owner := transaction.Lines[i].Account.User
		target := Target{
			OwnerID:     owner.ID,
			OwnerRole:   owner.Role,
			OwnerBankID: owner.BankID,
		}
		if Evaluate(ctx.actor, ctx.scope, target, op).IsSuccess() {
			return result.Ok(transaction)
		}
	}

	a.logger.Warn("transaction access denied",
		"actor_id", actorID,
		"transaction_id", transactionID,
		"operation", string(op),
		"scope", ctx.scope.String(),
	)
	return result.FailWith[*models.Transaction](
		result.Forbidden("transaction does not touch any account visible to the acting user"))
}

// ListPredicate returns the query predicate matching exactly the
// transactions the actor may view.
func (a *TransactionAuthorizer) ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status) {
	ctx, st := resolveActorContext(a.users, a.resolver, actorID)
	if st.IsFailure() {
		return nil, st
	}

	return repositories.ScopePredicate(TransactionScopeFilter(ctx.actor, ctx.scope)), result.OK()
}
