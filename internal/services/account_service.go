package services

import (
	"errors"
	"log/slog"

	"corebank/internal/authz"
	"corebank/internal/dto"
	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
)

// accountService implements scoped account reads and the freeze and
// unfreeze commands.
type accountService struct {
	store        *repositories.Store
	accountAuthz AccountAuthorizerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewAccountService creates the account service.
func NewAccountService(
	store *repositories.Store,
	accountAuthz AccountAuthorizerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		store:        store,
		accountAuthz: accountAuthz,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetAccount returns one account the actor may view.
func (s *accountService) GetAccount(actorID, accountID uuid.UUID) result.Result[*models.Account] {
	return s.accountAuthz.Authorize(actorID, accountID, authz.OperationView)
}

// ListAccounts returns the accounts visible to the actor.
func (s *accountService) ListAccounts(actorID uuid.UUID, offset, limit int) result.Result[dto.AccountListResponse] {
	offset, limit = normalizePage(offset, limit)

	predicate, st := s.accountAuthz.ListPredicate(actorID)
	if st.IsFailure() {
		return result.FailWith[dto.AccountListResponse](st)
	}

	accounts, total, err := s.store.Accounts().List(predicate, offset, limit)
	if err != nil {
		s.logger.Error("failed to list accounts", "actor_id", actorID, "error", err)
		return result.FailWith[dto.AccountListResponse](
			result.Fail(result.KindUnknown, "failed to list accounts"))
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, *dto.NewAccountResponse(&accounts[i]))
	}

	return result.Ok(dto.AccountListResponse{
		Accounts: responses,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// ListAccountTransactions returns the ledger entries touching one
// account. Visibility of the account implies visibility of its history.
func (s *accountService) ListAccountTransactions(actorID, accountID uuid.UUID, offset, limit int) result.Result[dto.TransactionListResponse] {
	offset, limit = normalizePage(offset, limit)

	if auth := s.accountAuthz.Authorize(actorID, accountID, authz.OperationView); auth.IsFailure() {
		return result.FailWith[dto.TransactionListResponse](auth.Status)
	}

	transactions, total, err := s.store.Transactions().ListByAccountID(accountID, offset, limit)
	if err != nil {
		s.logger.Error("failed to list account transactions",
			"actor_id", actorID, "account_id", accountID, "error", err)
		return result.FailWith[dto.TransactionListResponse](
			result.Fail(result.KindUnknown, "failed to list account transactions"))
	}

	return result.Ok(dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	})
}

// SetAccountActive freezes or unfreezes an account. Freezing an already
// frozen account (or unfreezing an active one) is a no-op success.
func (s *accountService) SetAccountActive(actorID, accountID uuid.UUID, active bool) result.Result[*models.Account] {
	op := authz.OperationFreeze
	if active {
		op = authz.OperationUnfreeze
	}

	if auth := s.accountAuthz.Authorize(actorID, accountID, op); auth.IsFailure() {
		return auth
	}

	var updated *models.Account
	err := s.store.WithTransaction(func(tx *repositories.Store) error {
		account, err := tx.Accounts().GetByID(accountID)
		if err != nil {
			return err
		}

		if account.Active != active {
			account.Active = active
			if err := tx.Accounts().Update(account); err != nil {
				return err
			}
		}

		updated = account
		return nil
	})
	if err != nil {
		if repositories.IsVersionConflict(err) {
			return result.FailWith[*models.Account](result.Conflict(msgConcurrentUpdate))
		}
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return result.FailWith[*models.Account](result.NotFound("account", accountID))
		}
		s.logger.Error("failed to update account state",
			"actor_id", actorID, "account_id", accountID, "active", active, "error", err)
		return result.FailWith[*models.Account](
			result.Fail(result.KindUnknown, "failed to update account state"))
	}

	s.logger.Info("account state changed",
		"actor_id", actorID, "account_id", accountID, "active", active)
	return result.Ok(updated)
}
