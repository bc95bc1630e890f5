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

	appanalytics "github.com/jhoicas/invoice-dashboard/internal/application/analytics"
	"github.com/jhoicas/invoice-dashboard/internal/application/auth"
	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/invoice-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/invoice-dashboard/internal/interfaces/http"
	"github.com/jhoicas/invoice-dashboard/pkg/config"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// Cache de lecturas del listado; las mutaciones la revalidan por ruta.
	pathCache := cache.NewPathCache()

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, pathCache, log)
	invoiceQueries := billing.NewInvoiceQueries(invoiceRepo, customerRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, infrapdf.NewMarotoPDFGenerator("Acme"))
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, invoiceRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerFile != "" {
		if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerFile,
				Path:     "docs",
				Title:    "Acme Dashboard API",
			}))
		} else {
			log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		InvoiceUC:      invoiceUC,
		InvoiceQueries: invoiceQueries,
		CustomerUC:     customerUC,
		InvoicePDF:     invoicePDFUC,
		DashboardUC:    dashboardUC,
		Cache:          pathCache,
		Log:            log,
		JWTSecret:      cfg.JWT.Secret,
		Session: httpRouter.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
			TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
		},
		AppName: cfg.App.Name,
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
