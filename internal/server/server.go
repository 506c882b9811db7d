package server

import (
	"log/slog"

	"corebank/internal/authz"
	"corebank/internal/config"
	"corebank/internal/database"
	"corebank/internal/handlers"
	"corebank/internal/middleware"
	"corebank/internal/repositories"
	"corebank/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server bundles the HTTP app with the services behind it.
type Server struct {
	Echo     *echo.Echo
	Store    *repositories.Store
	Interest services.InterestServiceInterface
	cfg      *config.Config
}

// New wires the full application: repositories, authorizers, services,
// handlers, and middleware.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Server {
	store := repositories.NewStore(db.DB)

	resolver := authz.NewScopeResolver()
	accountAuthz := authz.NewAccountAuthorizer(store.Users(), store.Accounts(), resolver, logger)
	userAuthz := authz.NewUserAuthorizer(store.Users(), resolver, logger)
	ledgerAuthz := authz.NewTransactionAuthorizer(store.Users(), store.Transactions(), resolver, logger)

	metrics := services.NewPrometheusMetrics()
	audit := services.NewAuditService(store.AuditLogs(), logger)
	converter := services.NewCurrencyConverter()

	moneyMovement := services.NewMoneyMovementService(
		store, accountAuthz, ledgerAuthz, converter, audit, metrics, cfg.Ledger, logger)
	accounts := services.NewAccountService(store, accountAuthz, metrics, logger)
	users := services.NewUserService(store, userAuthz, logger)
	interest := services.NewInterestService(store, audit, metrics, logger)
	password := services.NewPasswordService(store.Users(), userAuthz, logger)
	tokens := services.NewTokenService(&cfg.JWT)
	auth := services.NewAuthService(store.Users(), password, tokens, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	registerRoutes(e, db, tokens,
		handlers.NewAuthHandler(auth, password),
		handlers.NewTransactionHandler(moneyMovement),
		handlers.NewAccountHandler(accounts),
		handlers.NewUserHandler(users, audit),
	)

	return &Server{
		Echo:     e,
		Store:    store,
		Interest: interest,
		cfg:      cfg,
	}
}

func registerRoutes(
	e *echo.Echo,
	db *database.DB,
	tokens services.TokenServiceInterface,
	authHandler *handlers.AuthHandler,
	transactionHandler *handlers.TransactionHandler,
	accountHandler *handlers.AccountHandler,
	userHandler *handlers.UserHandler,
) {
	health := handlers.NewHealthCheckHandler(db.DB)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.RequireAuth(tokens))

	authed.POST("/transactions/deposit", transactionHandler.Deposit)
	authed.POST("/transactions/withdraw", transactionHandler.Withdraw)
	authed.POST("/transactions/transfer", transactionHandler.Transfer)
	authed.GET("/transactions", transactionHandler.ListTransactions)
	authed.GET("/transactions/:id", transactionHandler.GetTransaction)

	authed.GET("/accounts", accountHandler.ListAccounts)
	authed.GET("/accounts/:id", accountHandler.GetAccount)
	authed.GET("/accounts/:id/transactions", accountHandler.ListAccountTransactions)
	authed.PUT("/accounts/:id/active", accountHandler.SetAccountActive)

	authed.GET("/users", userHandler.ListUsers)
	authed.GET("/users/me/activity", userHandler.GetMyActivity)
	authed.GET("/users/:id", userHandler.GetUser)
	authed.PUT("/users/:id/password", authHandler.ChangePassword)
}
