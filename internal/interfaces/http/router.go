package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-api/internal/application/auth"
	appdashboard "github.com/tu-usuario/mes-api/internal/application/dashboard"
	appdelivery "github.com/tu-usuario/mes-api/internal/application/delivery"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DeliveryUC  *appdelivery.DeliveryUseCase
	DashboardUC *appdashboard.DashboardUseCase
	Auth        AuthConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/import-template", authHandler.ImportTemplate)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Auth))

	protectedAuth := protected.Group("/auth")
	protectedAuth.Get("/me", authHandler.Me)
	protectedAuth.Get("/users", authHandler.ListUsers)
	// Import masivo: solo admin (se re-consulta el usuario en DB)
	protectedAuth.Post("/import-users", RequireAdmin(deps.AuthUC), authHandler.ImportUsers)

	// Delivery overview (protegido)
	deliveries := protected.Group("/delivery")
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/export/pdf", deliveryHandler.ExportPDF)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Put("/:id", deliveryHandler.Update)
	deliveries.Delete("/:id", deliveryHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
