package authz

import (
	"errors"
	"log/slog"

	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
)

// UserAuthorizer gates operations on user records. A user record is its
// own owner, so the target is built from the record itself.
type UserAuthorizer struct {
	users    repositories.UserRepositoryInterface
	resolver ScopeResolver
	logger   *slog.Logger
}

// NewUserAuthorizer creates a new user authorizer
func NewUserAuthorizer(
	users repositories.UserRepositoryInterface,
	resolver ScopeResolver,
	logger *slog.Logger,
) *UserAuthorizer {
	return &UserAuthorizer{
		users:    users,
		resolver: resolver,
		logger:   logger,
	}
}

// Authorize decides whether the actor may perform op on the target user
// and returns the loaded target on success.
func (a *UserAuthorizer) Authorize(actorID, targetUserID uuid.UUID, op Operation) result.Result[*models.User] {
	ctx, st := resolveActorContext(a.users, a.resolver, actorID)
	if st.IsFailure() {
		return result.FailWith[*models.User](st)
	}

	target, err := a.users.GetByID(targetUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return result.FailWith[*models.User](result.NotFound("user", targetUserID))
		}
		a.logger.Error("failed to load user for authorization",
			"target_user_id", targetUserID, "error", err)
		return result.FailWith[*models.User](result.Fail(result.KindUnknown, "failed to load user"))
	}

	ownerTarget := Target{
		OwnerID:     target.ID,
		OwnerRole:   target.Role,
		OwnerBankID: target.BankID,
	}

	if st := Evaluate(ctx.actor, ctx.scope, ownerTarget, op); st.IsFailure() {
		a.logger.Warn("user operation denied",
			"actor_id", actorID,
			"target_user_id", targetUserID,
			"operation", string(op),
			"scope", ctx.scope.String(),
		)
		return result.FailWith[*models.User](st)
	}

	return result.Ok(target)
}

// ListPredicate returns the query predicate matching exactly the users
// the actor may view.
func (a *UserAuthorizer) ListPredicate(actorID uuid.UUID) (repositories.ScopePredicate, result.Status) {
	ctx, st := resolveActorContext(a.users, a.resolver, actorID)
	if st.IsFailure() {
		return nil, st
	}

	return repositories.ScopePredicate(UserScopeFilter(ctx.actor, ctx.scope)), result.OK()
}
