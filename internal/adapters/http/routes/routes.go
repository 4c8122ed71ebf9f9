package routes

import (
	"paydesk/internal/adapters/http/handlers"
	"paydesk/internal/adapters/persistence/repositories"
	"paydesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	clientRepo := repositories.NewClientRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	// Initialize services
	clientService := services.NewClientService(clientRepo, paymentRepo)
	paymentService := services.NewPaymentService(paymentRepo, clientRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	clientHandler := handlers.NewClientHandler(clientService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Health
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api/v1")

	// Clients
	clients := api.Group("/clients")
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Payments
	payments := api.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.Get)
	payments.Put("/:id", paymentHandler.Update)
	payments.Patch("/:id/approve", paymentHandler.Approve)
	payments.Delete("/:id", paymentHandler.Delete)
}
