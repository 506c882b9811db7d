package authz

import (
	"errors"

	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
)

// ActorFromUser builds the identity context from the stored user row.
// Authorization always works from database values, not from claims the
// caller presented.
func ActorFromUser(user *models.User) Actor {
	return Actor{
		UserID: user.ID,
		Role:   user.Role,
		BankID: user.BankID,
	}
}

// actorContext is the resolved caller: the stored user, its identity
// context, and its access scope.
type actorContext struct {
	user  *models.User
	actor Actor
	scope AccessScope
}

// resolveActorContext loads the acting user and resolves its scope. A
// missing or deactivated actor is Unauthorized; an unmappable role is a
// validation failure.
func resolveActorContext(users repositories.UserRepositoryInterface, resolver ScopeResolver, actorID uuid.UUID) (actorContext, result.Status) {
	user, err := users.GetByID(actorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return actorContext{}, result.Unauthorized("acting user was not found")
		}
		return actorContext{}, result.Fail(result.KindUnknown, "failed to load acting user")
	}

	if !user.Active {
		return actorContext{}, result.Unauthorized("acting user is deactivated")
	}

	actor := ActorFromUser(user)

	scope, err := resolver.Resolve(actor)
	if err != nil {
		return actorContext{}, result.BadRequest("failed to resolve access scope")
	}

	return actorContext{user: user, actor: actor, scope: scope}, result.OK()
}
