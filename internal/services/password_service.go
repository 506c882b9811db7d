package services

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"corebank/internal/authz"
	"corebank/internal/repositories"
	"corebank/internal/result"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BCryptCost factor 12 required by PCI DSS v4.0 for financial data protection
	BCryptCost = 12

	MinPasswordLength = 12
	MaxPasswordLength = 72 // Bcrypt algorithm limitation
)

var (
	ErrPasswordEmpty        = errors.New("password cannot be empty")
	ErrPasswordTooShort     = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong      = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoUppercase  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase  = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber     = errors.New("password must contain at least one number")
	ErrPasswordNoSpecial    = errors.New("password must contain at least one special character")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrSamePassword         = errors.New("new password must be different from current password")

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	numberRegex    = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{}|;:,.<>?]`)
)

// PasswordService handles password hashing, verification, and the
// authorized change-password flow.
type PasswordService struct {
	cost      int
	userRepo  repositories.UserRepositoryInterface
	userAuthz UserAuthorizerInterface
	logger    *slog.Logger
}

// NewPasswordService creates a new password service with default settings
func NewPasswordService(
	userRepo repositories.UserRepositoryInterface,
	userAuthz UserAuthorizerInterface,
	logger *slog.Logger,
) PasswordServiceInterface {
	return &PasswordService{
		cost:      BCryptCost,
		userRepo:  userRepo,
		userAuthz: userAuthz,
		logger:    logger,
	}
}

// ValidatePassword checks if a password meets all security requirements
func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	if !uppercaseRegex.MatchString(password) {
		return ErrPasswordNoUppercase
	}

	if !lowercaseRegex.MatchString(password) {
		return ErrPasswordNoLowercase
	}

	if !numberRegex.MatchString(password) {
		return ErrPasswordNoNumber
	}

	if !specialRegex.MatchString(password) {
		return ErrPasswordNoSpecial
	}

	return nil
}

// HashPassword validates and hashes a password using bcrypt
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword compares a plain password with a stored hash.
func (ps *PasswordService) VerifyPassword(hashedPassword, password string) error {
	// bcrypt.CompareHashAndPassword provides timing-attack resistance per OWASP guidelines
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return ErrCurrentPasswordWrong
	}
	return nil
}

// ChangePassword sets a new password for the target user. Users
// changing their own password must present the current one; an
// administrator resetting someone else's does not.
func (ps *PasswordService) ChangePassword(actorID, targetUserID uuid.UUID, currentPassword, newPassword string) result.Status {
	auth := ps.userAuthz.Authorize(actorID, targetUserID, authz.OperationChangePassword)
	if auth.IsFailure() {
		return auth.Status
	}
	target := auth.Value

	if actorID == targetUserID {
		if err := ps.VerifyPassword(target.PasswordHash, currentPassword); err != nil {
			return result.Unauthorized(ErrCurrentPasswordWrong.Error())
		}
		if currentPassword == newPassword {
			return result.BadRequest(ErrSamePassword.Error())
		}
	}

	hash, err := ps.HashPassword(newPassword)
	if err != nil {
		return result.BadRequest(err.Error())
	}

	if err := ps.userRepo.UpdatePasswordHash(targetUserID, hash); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return result.NotFound("user", targetUserID)
		}
		ps.logger.Error("failed to update password",
			"actor_id", actorID, "target_user_id", targetUserID, "error", err)
		return result.Fail(result.KindUnknown, "failed to update password")
	}

	ps.logger.Info("password changed",
		"actor_id", actorID, "target_user_id", targetUserID)
	return result.OK()
}
