package services

import (
	"log/slog"

	"corebank/internal/models"
	"corebank/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// auditService implements AuditServiceInterface. A failed audit write
// is logged and swallowed; compliance records never block money
// movement.
type auditService struct {
	auditRepo repositories.AuditLogRepositoryInterface
	logger    *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *auditService) record(log *models.AuditLog) {
	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to write audit log",
			"action", log.Action, "resource_id", log.ResourceID, "error", err)
	}
}

func (s *auditService) LogDeposit(userID, accountID uuid.UUID, amount decimal.Decimal, currencyCode string) {
	s.record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionDeposit,
		Resource:   "account",
		ResourceID: accountID.String(),
		Metadata: models.JSONBMap{
			"amount":   amount.StringFixed(2),
			"currency": currencyCode,
		},
	})
}

func (s *auditService) LogWithdraw(userID, accountID uuid.UUID, amount decimal.Decimal, currencyCode string) {
	s.record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionWithdraw,
		Resource:   "account",
		ResourceID: accountID.String(),
		Metadata: models.JSONBMap{
			"amount":   amount.StringFixed(2),
			"currency": currencyCode,
		},
	})
}

func (s *auditService) LogTransfer(userID, transactionID uuid.UUID, amount, fee decimal.Decimal, currencyCode string) {
	s.record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionTransfer,
		Resource:   "transaction",
		ResourceID: transactionID.String(),
		Metadata: models.JSONBMap{
			"amount":   amount.StringFixed(2),
			"fee":      fee.StringFixed(2),
			"currency": currencyCode,
		},
	})
}

func (s *auditService) LogTransferFailed(userID uuid.UUID, sourceAccountID, targetAccountID uuid.UUID, reason string) {
	s.record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionTransferFailed,
		Resource:   "account",
		ResourceID: sourceAccountID.String(),
		Metadata: models.JSONBMap{
			"target_account_id": targetAccountID.String(),
			"reason":            reason,
		},
	})
}

func (s *auditService) LogInterestApplied(accountID uuid.UUID, amount decimal.Decimal) {
	s.record(&models.AuditLog{
		Action:     models.AuditActionInterestApplied,
		Resource:   "account",
		ResourceID: accountID.String(),
		Metadata: models.JSONBMap{
			"amount": amount.StringFixed(2),
		},
	})
}

func (s *auditService) GetUserActivity(userID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error) {
	return s.auditRepo.GetByUserID(userID, offset, limit)
}
