package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/montesagrado/camposanto-api/internal/application/analytics"
	"github.com/montesagrado/camposanto-api/internal/application/auth"
	"github.com/montesagrado/camposanto-api/internal/application/sales"
	"github.com/montesagrado/camposanto-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC    *usecase.ClientUseCase
	PlotUC      *usecase.PlotUseCase
	CreateSale  *sales.CreateSaleUseCase
	ScheduleUC  *sales.ScheduleUseCase
	PaymentUC   *sales.PaymentUseCase
	SchedulePDF *sales.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido)
	clients := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Historial de clientes eliminados (protegido, solo lectura)
	protected.Get("/historial", clientHandler.History)

	// Terrenos (protegido)
	plots := protected.Group("/terrenos")
	plotHandler := NewPlotHandler(deps.PlotUC)
	plots.Post("/", plotHandler.Create)
	plots.Get("/", plotHandler.List)
	plots.Get("/:id", plotHandler.GetByID)
	plots.Put("/:id", plotHandler.Update)

	// Ventas y su crédito (protegido)
	salesGroup := protected.Group("/ventas")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.ScheduleUC, deps.SchedulePDF)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/:id/cancelar", saleHandler.Cancel)
	salesGroup.Post("/:id/credito", saleHandler.GenerateCredit)
	salesGroup.Get("/:id/credito", saleHandler.GetCredit)
	salesGroup.Get("/:id/credito/pdf", saleHandler.CreditPDF)

	// Pagos de crédito (protegido)
	payments := protected.Group("/pagos")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Get("/resumen", paymentHandler.Summary)
	payments.Put("/:id", paymentHandler.RecordPayment)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetStats)
}
