package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/invoice-dashboard/internal/application/analytics"
	"github.com/jhoicas/invoice-dashboard/internal/application/auth"
	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/cache"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	InvoiceUC      *billing.InvoiceUseCase
	InvoiceQueries *billing.InvoiceQueries
	CustomerUC     *billing.CustomerUseCase
	InvoicePDF     *billing.PDFUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	Cache          *cache.PathCache
	Log            *logger.Logger
	JWTSecret      string
	Session        SessionCookie
	AppName        string
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, deps.Log)
	app.Get(LoginPath, RedirectIfAuthenticated(deps.JWTSecret, deps.Session.Name), authHandler.LoginForm)
	app.Post(LoginPath, RedirectIfAuthenticated(deps.JWTSecret, deps.Session.Name), authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Dashboard (requiere sesión)
	dashboard := app.Group(DashboardPath, SessionMiddleware(deps.JWTSecret, deps.Session.Name))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dashboard.Get("/", dashboardHandler.GetSummary)

	invoices := dashboard.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoiceQueries, deps.InvoicePDF, deps.Cache, deps.Log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id/edit", invoiceHandler.Edit)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Post("/:id/delete", invoiceHandler.Delete)
	invoices.Post("/:id", invoiceHandler.Update)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	customers := dashboard.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Get("/", customerHandler.List)
}
