package services

import (
	"log/slog"

	"corebank/internal/authz"
	"corebank/internal/dto"
	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
)

// userService implements scoped user reads.
type userService struct {
	store     *repositories.Store
	userAuthz UserAuthorizerInterface
	logger    *slog.Logger
}

// NewUserService creates the user service.
func NewUserService(
	store *repositories.Store,
	userAuthz UserAuthorizerInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &userService{
		store:     store,
		userAuthz: userAuthz,
		logger:    logger,
	}
}

// GetUser returns one user record the actor may view.
func (s *userService) GetUser(actorID, targetUserID uuid.UUID) result.Result[*models.User] {
	return s.userAuthz.Authorize(actorID, targetUserID, authz.OperationView)
}

// ListUsers returns the user records visible to the actor.
func (s *userService) ListUsers(actorID uuid.UUID, offset, limit int) result.Result[dto.UserListResponse] {
	offset, limit = normalizePage(offset, limit)

	predicate, st := s.userAuthz.ListPredicate(actorID)
	if st.IsFailure() {
		return result.FailWith[dto.UserListResponse](st)
	}

	users, total, err := s.store.Users().List(predicate, offset, limit)
	if err != nil {
		s.logger.Error("failed to list users", "actor_id", actorID, "error", err)
		return result.FailWith[dto.UserListResponse](
			result.Fail(result.KindUnknown, "failed to list users"))
	}

	return result.Ok(dto.UserListResponse{
		Users:  users,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}
