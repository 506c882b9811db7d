package services

import (
	"context"
	"log/slog"
	"time"

	"corebank/internal/models"
	"corebank/internal/repositories"

	"github.com/google/uuid"
)

// interestService credits due interest to savings accounts. Each
// account is processed in its own transaction so one conflict never
// blocks the rest of the pass; an account that loses its version race
// is simply picked up by the next pass.
type interestService struct {
	store   *repositories.Store
	audit   AuditServiceInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewInterestService creates the interest service.
func NewInterestService(
	store *repositories.Store,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) InterestServiceInterface {
	return &interestService{
		store:   store,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
	}
}

// ApplyDueInterest runs one interest pass and returns the number of
// accounts credited.
func (s *interestService) ApplyDueInterest(now time.Time) (int, error) {
	candidates, err := s.store.Accounts().ListSavingsDueForInterest(now)
	if err != nil {
		return 0, err
	}

	applied := 0
	for i := range candidates {
		if !candidates[i].ShouldApplyInterest(now) {
			continue
		}
		if s.creditInterest(candidates[i].ID, now) {
			applied++
		}
	}

	if applied > 0 {
		s.logger.Info("interest pass completed", "accounts_credited", applied)
	}
	return applied, nil
}

// creditInterest re-reads one account inside a transaction, credits the
// earned interest, and appends the log entry. The due check is repeated
// on the fresh read so a concurrent pass cannot double-credit.
func (s *interestService) creditInterest(accountID uuid.UUID, now time.Time) bool {
	var entry models.InterestLogEntry

	err := s.store.WithTransaction(func(tx *repositories.Store) error {
		account, err := tx.Accounts().GetByID(accountID)
		if err != nil {
			return err
		}

		if !account.ShouldApplyInterest(now) {
			return errInterestNotDue
		}

		earned := account.CalculateInterest(account.CadenceDays())
		if earned.IsZero() {
			return errInterestNotDue
		}

		account.Balance = account.Balance.Add(earned).Round(2)
		if err := tx.Accounts().Update(account); err != nil {
			return err
		}

		entry = models.InterestLogEntry{
			AccountID: account.ID,
			Amount:    earned,
			AppliedAt: now,
		}
		return tx.Accounts().AppendInterestLog(&entry)
	})
	if err != nil {
		switch {
		case err == errInterestNotDue:
			// Another pass got there first.
		case repositories.IsVersionConflict(err):
			s.logger.Warn("interest application lost a version race, deferring",
				"account_id", accountID)
		default:
			s.logger.Error("failed to apply interest",
				"account_id", accountID, "error", err)
		}
		return false
	}

	s.metrics.IncrementCounter("interest.applied", nil)
	s.audit.LogInterestApplied(accountID, entry.Amount)
	return true
}

// errInterestNotDue aborts the crediting transaction when the fresh
// read shows nothing to credit.
var errInterestNotDue = errNotDue{}

type errNotDue struct{}

func (errNotDue) Error() string { return "interest not due" }

// Start runs interest passes on the given interval until the context is
// cancelled.
func (s *interestService) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("interest scheduler started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("interest scheduler stopped")
			return
		case now := <-ticker.C:
			if _, err := s.ApplyDueInterest(now); err != nil {
				s.logger.Error("interest pass failed", "error", err)
			}
		}
	}
}
