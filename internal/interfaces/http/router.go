package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    accountService
	CatalogUC catalogService
	InvoiceUC invoiceService
	PayrollUC payrollService
	JWTSecret string
	Logger    *logger.Logger // opcional: log de cada request
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	if deps.Logger != nil {
		api.Use(RequestLogger(deps.Logger))
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Catálogos SAT; /products va antes de /:kind
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogs := protected.Group("/catalogs")
	catalogs.Get("/products", catalogHandler.ListProducts)
	catalogs.Get("/:kind", catalogHandler.List)

	// Facturas
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices := protected.Group("/invoices")
	invoices.Post("/quote", invoiceHandler.Quote)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/:id/email", invoiceHandler.SendEmail)

	// Nómina (solo empleados)
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	payroll := protected.Group("/payroll", RequireRole(entity.RoleEmpleado))
	payroll.Post("/employees", payrollHandler.RegisterEmployee)
	payroll.Post("/receipts", payrollHandler.CreateReceipt)
	payroll.Get("/receipts/:id/pdf", payrollHandler.DownloadPDF)
}
