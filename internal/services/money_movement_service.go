package services

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"corebank/internal/authz"
	"corebank/internal/config"
	"corebank/internal/dto"
	"corebank/internal/models"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// msgConcurrentUpdate is the user-facing text for a write that lost the
// optimistic concurrency race beyond the retry budget.
const msgConcurrentUpdate = "Concurrent update detected, try again later"

// statusError tunnels an expected failure through a transaction
// rollback. It is never retryable.
type statusError struct {
	st result.Status
}

func (e statusError) Error() string {
	return e.st.Message()
}

// statusOf extracts a tunneled status from an error chain.
func statusOf(err error) (result.Status, bool) {
	var se statusError
	if errors.As(err, &se) {
		return se.st, true
	}
	return result.Status{}, false
}

// moneyMovementService implements the deposit, withdraw, and transfer
// commands. Deposits and withdrawals reload the account and re-apply
// the mutation when a write loses the version race; a transfer is a
// single atomic attempt and surfaces the conflict to the caller.
type moneyMovementService struct {
	store        *repositories.Store
	accountAuthz AccountAuthorizerInterface
	ledgerAuthz  TransactionAuthorizerInterface
	converter    CurrencyConverterInterface
	audit        AuditServiceInterface
	metrics      MetricsRecorderInterface
	cfg          config.LedgerConfig
	logger       *slog.Logger
}

// NewMoneyMovementService creates the money movement service.
func NewMoneyMovementService(
	store *repositories.Store,
	accountAuthz AccountAuthorizerInterface,
	ledgerAuthz TransactionAuthorizerInterface,
	converter CurrencyConverterInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	cfg config.LedgerConfig,
	logger *slog.Logger,
) MoneyMovementServiceInterface {
	return &moneyMovementService{
		store:        store,
		accountAuthz: accountAuthz,
		ledgerAuthz:  ledgerAuthz,
		converter:    converter,
		audit:        audit,
		metrics:      metrics,
		cfg:          cfg,
		logger:       logger,
	}
}

// Deposit credits an account and writes the matching ledger entry.
func (s *moneyMovementService) Deposit(actorID, accountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView] {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("money_movement", time.Since(start)) }()

	if amount.LessThanOrEqual(decimal.Zero) {
		return s.reject("deposit", result.BadRequest("amount must be positive"))
	}

	if auth := s.accountAuthz.Authorize(actorID, accountID, authz.OperationDeposit); auth.IsFailure() {
		return s.rejectAuth("deposit", auth.Status)
	}

	view, err := Retry(s.retryPolicy("deposit"), func() (dto.TransactionView, error) {
		return s.applySingleLeg(accountID, amount, models.TransactionTypeDeposit)
	})
	if err != nil {
		return s.failure("deposit", err)
	}

	s.metrics.IncrementCounter("money_movement.success", map[string]string{"operation": "deposit"})
	s.audit.LogDeposit(actorID, accountID, amount, view.CurrencyCode)
	return result.Ok(view)
}

// Withdraw debits an account and writes the matching ledger entry.
func (s *moneyMovementService) Withdraw(actorID, accountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView] {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("money_movement", time.Since(start)) }()

	if amount.LessThanOrEqual(decimal.Zero) {
		return s.reject("withdraw", result.BadRequest("amount must be positive"))
	}

	if auth := s.accountAuthz.Authorize(actorID, accountID, authz.OperationWithdraw); auth.IsFailure() {
		return s.rejectAuth("withdraw", auth.Status)
	}

	view, err := Retry(s.retryPolicy("withdraw"), func() (dto.TransactionView, error) {
		return s.applySingleLeg(accountID, amount, models.TransactionTypeWithdraw)
	})
	if err != nil {
		return s.failure("withdraw", err)
	}

	s.metrics.IncrementCounter("money_movement.success", map[string]string{"operation": "withdraw"})
	s.audit.LogWithdraw(actorID, accountID, amount, view.CurrencyCode)
	return result.Ok(view)
}

// applySingleLeg runs one deposit or withdrawal attempt: reload the
// account, mutate it, and persist account and ledger entry atomically.
// A version conflict rolls the attempt back and bubbles up retryable.
func (s *moneyMovementService) applySingleLeg(accountID uuid.UUID, amount decimal.Decimal, transactionType string) (dto.TransactionView, error) {
	var view dto.TransactionView

	err := s.store.WithTransaction(func(tx *repositories.Store) error {
		account, err := tx.Accounts().GetByID(accountID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return statusError{result.NotFound("account", accountID)}
			}
			return err
		}

		if st := canTransact(account); st.IsFailure() {
			return statusError{st}
		}

		role := models.LedgerRoleTarget
		if transactionType == models.TransactionTypeWithdraw {
			role = models.LedgerRoleSource
			if err := account.Withdraw(amount); err != nil {
				return statusError{withdrawFailure(account, amount, err)}
			}
		} else {
			if err := account.Deposit(amount); err != nil {
				return statusError{result.BadRequest(err.Error())}
			}
		}

		if err := tx.Accounts().Update(account); err != nil {
			return err
		}

		transaction := &models.Transaction{
			TransactionType: transactionType,
			Lines: []models.AccountTransaction{{
				AccountID:    account.ID,
				Amount:       amount,
				CurrencyCode: account.Currency.Code,
				Role:         role,
			}},
		}
		if err := tx.Transactions().Create(transaction); err != nil {
			return err
		}

		view = dto.TransactionView{
			ID:              transaction.ID,
			TransactionType: transactionType,
			Amount:          amount,
			CurrencyCode:    account.Currency.Code,
			NewBalance:      account.Balance,
			CreatedAt:       transaction.CreatedAt,
		}
		if role == models.LedgerRoleSource {
			view.SourceAccountID = &account.ID
		} else {
			view.TargetAccountID = &account.ID
			view.CreditedAmount = amount
		}
		return nil
	})
	if err != nil {
		return dto.TransactionView{}, err
	}
	return view, nil
}

// Transfer atomically debits the source account (amount plus fee) and
// credits the target account with the converted amount. The whole
// movement commits or none of it does.
func (s *moneyMovementService) Transfer(actorID, sourceAccountID, targetAccountID uuid.UUID, amount decimal.Decimal) result.Result[dto.TransactionView] {
	start := time.Now()
	defer func() { s.metrics.RecordProcessingTime("money_movement", time.Since(start)) }()

	if amount.LessThanOrEqual(decimal.Zero) {
		return s.reject("transfer", result.BadRequest("amount must be positive"))
	}
	if sourceAccountID == targetAccountID {
		return s.reject("transfer", result.BadRequest("cannot transfer to the same account"))
	}

	if auth := s.accountAuthz.Authorize(actorID, sourceAccountID, authz.OperationTransfer); auth.IsFailure() {
		return s.rejectAuth("transfer", auth.Status)
	}

	var view dto.TransactionView
	var fee decimal.Decimal

	err := s.store.WithTransaction(func(tx *repositories.Store) error {
		source, err := tx.Accounts().GetByID(sourceAccountID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return statusError{result.NotFound("account", sourceAccountID)}
			}
			return err
		}

		target, err := tx.Accounts().GetByID(targetAccountID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return statusError{result.NotFound("account", targetAccountID)}
			}
			return err
		}

		if st := result.Combine(canTransact(source), canTransact(target)); st.IsFailure() {
			return statusError{st}
		}

		fee = amount.Mul(s.feeRate(source, target)).Round(2)
		credited := s.converter.Convert(amount, source.Currency, target.Currency)

		if err := source.Withdraw(amount.Add(fee)); err != nil {
			return statusError{withdrawFailure(source, amount.Add(fee), err)}
		}
		if err := target.Deposit(credited); err != nil {
			return statusError{result.BadRequest(err.Error())}
		}

		// Fixed write order keeps lock acquisition stable when two
		// transfers cross the same account pair.
		first, second := source, target
		if bytes.Compare(second.ID[:], first.ID[:]) < 0 {
			first, second = second, first
		}
		if err := tx.Accounts().Update(first); err != nil {
			return err
		}
		if err := tx.Accounts().Update(second); err != nil {
			return err
		}

		transaction := &models.Transaction{
			TransactionType: models.TransactionTypeTransfer,
			Lines: []models.AccountTransaction{
				{
					AccountID:    source.ID,
					Amount:       amount,
					Fee:          fee,
					CurrencyCode: source.Currency.Code,
					Role:         models.LedgerRoleSource,
				},
				{
					AccountID:    target.ID,
					Amount:       credited,
					CurrencyCode: target.Currency.Code,
					Role:         models.LedgerRoleTarget,
				},
			},
		}
		if err := tx.Transactions().Create(transaction); err != nil {
			return err
		}

		view = dto.TransactionView{
			ID:              transaction.ID,
			TransactionType: models.TransactionTypeTransfer,
			Amount:          amount,
			Fee:             fee,
			CurrencyCode:    source.Currency.Code,
			SourceAccountID: &sourceAccountID,
			TargetAccountID: &targetAccountID,
			CreditedAmount:  credited,
			NewBalance:      source.Balance,
			CreatedAt:       transaction.CreatedAt,
		}
		return nil
	})
	if err != nil {
		if st, ok := statusOf(err); ok {
			if st.Is(result.KindConflict) || st.Is(result.KindBusinessRule) {
				s.audit.LogTransferFailed(actorID, sourceAccountID, targetAccountID, st.Message())
			}
		} else if repositories.IsVersionConflict(err) {
			s.audit.LogTransferFailed(actorID, sourceAccountID, targetAccountID, msgConcurrentUpdate)
		}
		return s.failure("transfer", err)
	}

	s.metrics.IncrementCounter("money_movement.success", map[string]string{"operation": "transfer"})
	s.metrics.RecordGauge("transfer_amount", amount.InexactFloat64(), nil)
	s.audit.LogTransfer(actorID, view.ID, amount, fee, view.CurrencyCode)
	return result.Ok(view)
}

// GetTransaction returns one ledger entry the actor may view.
func (s *moneyMovementService) GetTransaction(actorID, transactionID uuid.UUID) result.Result[*models.Transaction] {
	return s.ledgerAuthz.Authorize(actorID, transactionID, authz.OperationView)
}

// ListTransactions returns the ledger entries visible to the actor.
func (s *moneyMovementService) ListTransactions(actorID uuid.UUID, offset, limit int) result.Result[dto.TransactionListResponse] {
	offset, limit = normalizePage(offset, limit)

	predicate, st := s.ledgerAuthz.ListPredicate(actorID)
	if st.IsFailure() {
		return result.FailWith[dto.TransactionListResponse](st)
	}

	transactions, total, err := s.store.Transactions().List(predicate, offset, limit)
	if err != nil {
		s.logger.Error("failed to list transactions", "actor_id", actorID, "error", err)
		return result.FailWith[dto.TransactionListResponse](
			result.Fail(result.KindUnknown, "failed to list transactions"))
	}

	return result.Ok(dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	})
}

// feeRate picks the transfer fee: accounts denominated in the same
// currency move money at the lower rate, converting transfers pay the
// higher one.
func (s *moneyMovementService) feeRate(source, target *models.Account) decimal.Decimal {
	if source.Currency.Code == target.Currency.Code {
		return s.cfg.SameCurrencyFeeRate
	}
	return s.cfg.CrossCurrencyFeeRate
}

func (s *moneyMovementService) retryPolicy(operation string) RetryPolicy {
	return RetryPolicy{
		Attempts:    s.cfg.MaxRetryAttempts,
		IsRetryable: repositories.IsVersionConflict,
		OnRetry: func(attempt int, err error) {
			s.logger.Warn("retrying after version conflict",
				"operation", operation, "attempt", attempt)
			s.metrics.IncrementCounter("money_movement.retry",
				map[string]string{"operation": operation})
		},
	}
}

// failure maps an attempt error to the caller-facing status.
func (s *moneyMovementService) failure(operation string, err error) result.Result[dto.TransactionView] {
	if st, ok := statusOf(err); ok {
		return s.reject(operation, st)
	}

	// Exhausting the retry budget means sustained contention the caller
	// must resolve by resubmitting; it is a hard failure, not a
	// business-rule collision. A transfer's single attempt losing the
	// version race is an ordinary conflict.
	if errors.Is(err, ErrMaxRetriesExceeded) {
		s.metrics.IncrementCounter("money_movement.version_conflict",
			map[string]string{"operation": operation})
		return s.reject(operation, result.Fail(result.KindUnknown, msgConcurrentUpdate))
	}
	if repositories.IsVersionConflict(err) {
		s.metrics.IncrementCounter("money_movement.version_conflict",
			map[string]string{"operation": operation})
		return s.reject(operation, result.Conflict(msgConcurrentUpdate))
	}

	s.logger.Error("money movement failed", "operation", operation, "error", err)
	return s.reject(operation, result.Fail(result.KindUnknown,
		fmt.Sprintf("failed to process %s", operation)))
}

func (s *moneyMovementService) reject(operation string, st result.Status) result.Result[dto.TransactionView] {
	s.metrics.IncrementCounter("money_movement.failed", map[string]string{
		"operation": operation,
		"reason":    string(st.Kind),
	})
	return result.FailWith[dto.TransactionView](st)
}

func (s *moneyMovementService) rejectAuth(operation string, st result.Status) result.Result[dto.TransactionView] {
	if st.Is(result.KindForbidden) || st.Is(result.KindUnauthorized) {
		s.metrics.IncrementCounter("authorization.denied",
			map[string]string{"operation": operation})
	}
	return s.reject(operation, st)
}

// canTransact enforces that the account, its owner, and the owner's
// bank are all active.
func canTransact(account *models.Account) result.Status {
	if !account.CanPerformTransactions() {
		return result.AccountInactive(account.AccountNumber)
	}
	if account.User.Bank != nil && !account.User.Bank.Active {
		return result.Conflict(fmt.Sprintf("bank %s is inactive", account.User.Bank.Name))
	}
	return result.OK()
}

// withdrawFailure maps an entity withdrawal error to a status carrying
// the figures the caller shows.
func withdrawFailure(account *models.Account, amount decimal.Decimal, err error) result.Status {
	var overdraft *models.OverdraftExceededError
	switch {
	case errors.As(err, &overdraft):
		return result.Fail(result.KindConflict, overdraft.Error())
	case errors.Is(err, models.ErrInsufficientFunds):
		return result.InsufficientFunds(amount, account.Balance)
	case errors.Is(err, models.ErrNonPositiveAmount):
		return result.BadRequest("amount must be positive")
	default:
		return result.Fail(result.KindUnknown, err.Error())
	}
}

// normalizePage clamps pagination inputs to sane bounds.
func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return offset, limit
}
