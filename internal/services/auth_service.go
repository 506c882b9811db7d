package services

import (
	"errors"
	"log/slog"
	"time"

	"corebank/internal/dto"
	"corebank/internal/repositories"
	"corebank/internal/result"
)

// authService implements the login flow. Invalid credentials and
// unknown emails produce the same response so the endpoint cannot be
// used to probe for registered addresses.
type authService struct {
	users    repositories.UserRepositoryInterface
	password PasswordServiceInterface
	tokens   TokenServiceInterface
	logger   *slog.Logger
}

// NewAuthService creates the authentication service.
func NewAuthService(
	users repositories.UserRepositoryInterface,
	password PasswordServiceInterface,
	tokens TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &authService{
		users:    users,
		password: password,
		tokens:   tokens,
		logger:   logger,
	}
}

const msgInvalidCredentials = "invalid email or password"

// Login verifies the credentials and issues an access token.
func (s *authService) Login(email, password string) result.Result[dto.LoginResponse] {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return result.FailWith[dto.LoginResponse](result.Unauthorized(msgInvalidCredentials))
		}
		s.logger.Error("failed to load user for login", "error", err)
		return result.FailWith[dto.LoginResponse](result.Fail(result.KindUnknown, "login failed"))
	}

	if !user.Active {
		return result.FailWith[dto.LoginResponse](result.Unauthorized("account is deactivated"))
	}

	if err := s.password.VerifyPassword(user.PasswordHash, password); err != nil {
		return result.FailWith[dto.LoginResponse](result.Unauthorized(msgInvalidCredentials))
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		s.logger.Error("failed to issue access token", "user_id", user.ID, "error", err)
		return result.FailWith[dto.LoginResponse](result.Fail(result.KindUnknown, "login failed"))
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)

	return result.Ok(dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		User:        user,
	})
}
