package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/montesagrado/camposanto-api/internal/application/analytics"
	"github.com/montesagrado/camposanto-api/internal/application/auth"
	"github.com/montesagrado/camposanto-api/internal/application/sales"
	"github.com/montesagrado/camposanto-api/internal/application/usecase"
	infrapdf "github.com/montesagrado/camposanto-api/internal/infrastructure/pdf"
	"github.com/montesagrado/camposanto-api/internal/infrastructure/postgres"
	httpRouter "github.com/montesagrado/camposanto-api/internal/interfaces/http"
	"github.com/montesagrado/camposanto-api/pkg/config"
	"github.com/montesagrado/camposanto-api/pkg/logger"
	"github.com/montesagrado/camposanto-api/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("moneda", cfg.Business.CurrencyCode).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	formatter, err := money.NewFormatter(cfg.Business.CurrencyCode)
	if err != nil {
		log.Fatal().Err(err).Str("moneda", cfg.Business.CurrencyCode).Msg("moneda inválida")
	}

	clientRepo := postgres.NewClientRepository(pool)
	historyRepo := postgres.NewClientHistoryRepository(pool)
	plotRepo := postgres.NewPlotRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	instRepo := postgres.NewInstallmentRepository(pool)
	reportRepo := postgres.NewReportingRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo, historyRepo, txRunner)
	plotUC := usecase.NewPlotUseCase(plotRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, clientRepo, saleRepo)
	scheduleUC := sales.NewScheduleUseCase(txRunner, saleRepo, instRepo)
	paymentUC := sales.NewPaymentUseCase(instRepo, reportRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(reportRepo, formatter)

	// PDF: representación impresa del plan de pagos
	pdfGenerator := infrapdf.NewMarotoScheduleGenerator(cfg.App.Name, formatter)
	schedulePDFUC := sales.NewPDFUseCase(saleRepo, instRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Camposanto API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		PlotUC:      plotUC,
		CreateSale:  createSaleUC,
		ScheduleUC:  scheduleUC,
		PaymentUC:   paymentUC,
		SchedulePDF: schedulePDFUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
