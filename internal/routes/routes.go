// Package routes defines the API routing configuration.
// It wires repositories, gateways and services together and registers
// all HTTP routes with their middleware.
package routes

import (
	"time"

	"sops/internal/config"
	"sops/internal/gateway"
	"sops/internal/handlers"
	"sops/internal/metrics"
	"sops/internal/middleware"
	"sops/internal/repositories"
	"sops/internal/services/auth"
	"sops/internal/services/notification"
	"sops/internal/services/transaction"
	"sops/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Repositories
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)
	transactionRepo := repositories.NewTransactionRepository(repositories.DB, repositories.CacheService)
	notificationRepo := repositories.NewNotificationRepository(repositories.DB)

	// External gateways
	gatewayTimeout := config.GetDurationEnv("GATEWAY_TIMEOUT", 5*time.Second)
	authorizer := gateway.NewHTTPAuthorizer(config.AuthorizerURL(), gatewayTimeout)
	notifier := gateway.NewHTTPNotifier(config.NotifierURL(), gatewayTimeout)

	// Metrics
	collector := metrics.NewPrometheusCollector()

	// Services
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo, config.GetEnv("JWT_SECRET", "sops"))
	transactionService := transaction.NewService(transactionRepo, userRepo, authorizer, collector)
	notificationService := notification.NewService(notificationRepo, userRepo, transactionRepo, notifier, collector)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	app.Get("/health", handlers.Health)
	app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

	api := app.Group("/api")
	api.Post("/login", authHandler.Login)

	v1 := api.Group("/v1")

	users := v1.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/email/:email", userHandler.GetByEmail)
	users.Get("/document/:documentNumber", userHandler.GetByDocumentNumber)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/email", userHandler.UpdateEmail)
	users.Put("/:id/password", userHandler.UpdatePassword)
	users.Delete("/:id", middleware.RequireAuth, userHandler.Delete)

	transactions := v1.Group("/transactions")
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/sender/:senderId", transactionHandler.ListBySender)
	transactions.Get("/recipient/:recipientId", transactionHandler.ListByRecipient)
	transactions.Get("/status/:status", transactionHandler.ListByStatus)
	transactions.Get("/period", transactionHandler.ListByPeriod)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Patch("/:id/status", middleware.RequireAuth, transactionHandler.UpdateStatus)
	transactions.Delete("/:id", middleware.RequireAuth, transactionHandler.Delete)

	notifications := v1.Group("/notifications")
	notifications.Post("/", notificationHandler.Create)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/user/:userId", notificationHandler.ListByUser)
	notifications.Get("/transaction/:transactionId", notificationHandler.ListByTransaction)
	notifications.Get("/status/:status", notificationHandler.ListByStatus)
	notifications.Get("/period", notificationHandler.ListByPeriod)
	notifications.Get("/:id", notificationHandler.GetByID)
	notifications.Patch("/:id/status", middleware.RequireAuth, notificationHandler.UpdateStatus)
	notifications.Delete("/:id", middleware.RequireAuth, notificationHandler.Delete)
}
