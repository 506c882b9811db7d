package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"corebank/internal/dto"
	"corebank/internal/models"
	"corebank/internal/result"
	"corebank/internal/services/service_mocks"

	"go.uber.org/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	echo         *echo.Echo
	ctrl         *gomock.Controller
	mockAuth     *service_mocks.MockAuthServiceInterface
	mockPassword *service_mocks.MockPasswordServiceInterface
	handler      *AuthHandler

	actorID uuid.UUID
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockAuth = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.mockPassword = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.mockAuth, s.mockPassword)
	s.actorID = uuid.New()
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerTestSuite) newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"Str0ng&Secure!"}`)

	s.mockAuth.EXPECT().
		Login("alice@example.com", "Str0ng&Secure!").
		Return(result.Ok(dto.LoginResponse{
			AccessToken: "token",
			TokenType:   "Bearer",
			ExpiresIn:   900,
			User:        &models.User{Email: "alice@example.com"},
		}))

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"access_token":"token"`)
	s.Contains(rec.Body.String(), `"token_type":"Bearer"`)
}

func (s *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	s.mockAuth.EXPECT().
		Login("alice@example.com", "wrong").
		Return(result.FailWith[dto.LoginResponse](
			result.Unauthorized("invalid email or password")))

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "invalid email or password")
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidEmailFormat() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/auth/login",
		`{"email":"not-an-email","password":"whatever"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerTestSuite) TestLogin_MissingPassword() {
	c, rec := s.newContext(http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerTestSuite) TestChangePassword_Success() {
	targetID := s.actorID
	c, rec := s.newContext(http.MethodPut, "/api/v1/users/"+targetID.String()+"/password",
		`{"current_password":"Old&Password123","new_password":"New&Password1234"}`)
	c.Set("user_id", s.actorID)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	s.mockPassword.EXPECT().
		ChangePassword(s.actorID, targetID, "Old&Password123", "New&Password1234").
		Return(result.Status{})

	s.NoError(s.handler.ChangePassword(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Password changed successfully")
}

func (s *AuthHandlerTestSuite) TestChangePassword_WrongCurrentPassword() {
	targetID := s.actorID
	c, rec := s.newContext(http.MethodPut, "/api/v1/users/"+targetID.String()+"/password",
		`{"current_password":"wrong","new_password":"New&Password1234"}`)
	c.Set("user_id", s.actorID)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	s.mockPassword.EXPECT().
		ChangePassword(s.actorID, targetID, "wrong", "New&Password1234").
		Return(result.Unauthorized("current password is incorrect"))

	s.NoError(s.handler.ChangePassword(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthHandlerTestSuite) TestChangePassword_MissingNewPassword() {
	targetID := s.actorID
	c, rec := s.newContext(http.MethodPut, "/api/v1/users/"+targetID.String()+"/password",
		`{"current_password":"Old&Password123"}`)
	c.Set("user_id", s.actorID)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	s.NoError(s.handler.ChangePassword(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerTestSuite) TestChangePassword_MissingIdentity() {
	targetID := uuid.New()
	c, rec := s.newContext(http.MethodPut, "/api/v1/users/"+targetID.String()+"/password",
		`{"new_password":"New&Password1234"}`)
	c.SetParamNames("id")
	c.SetParamValues(targetID.String())

	s.NoError(s.handler.ChangePassword(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
