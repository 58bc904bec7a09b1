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
	"github.com/shopspring/decimal"

	"github.com/miriamyi01/facturas-cfdi/internal/application/auth"
	"github.com/miriamyi01/facturas-cfdi/internal/application/billing"
	"github.com/miriamyi01/facturas-cfdi/internal/application/catalog"
	"github.com/miriamyi01/facturas-cfdi/internal/application/payroll"
	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	infrmail "github.com/miriamyi01/facturas-cfdi/internal/infrastructure/mail"
	infrapdf "github.com/miriamyi01/facturas-cfdi/internal/infrastructure/pdf"
	"github.com/miriamyi01/facturas-cfdi/internal/infrastructure/postgres"
	"github.com/miriamyi01/facturas-cfdi/internal/infrastructure/storage"
	httpRouter "github.com/miriamyi01/facturas-cfdi/internal/interfaces/http"
	"github.com/miriamyi01/facturas-cfdi/pkg/config"
	"github.com/miriamyi01/facturas-cfdi/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("esquema al día")
	}

	issuer, err := issuerFromConfig(cfg.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("datos del emisor")
	}

	userRepo := postgres.NewUserRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	invoiceDocRepo := postgres.NewInvoiceDocumentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	receiptRepo := postgres.NewPayrollReceiptRepository(pool)
	payrollDocRepo := postgres.NewPayrollDocumentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Espejo de PDFs en MinIO: solo si hay endpoint configurado.
	var mirror ports.DocumentMirror
	if cfg.Storage.Enabled() {
		m, err := storage.NewMinioMirror(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Str("endpoint", cfg.Storage.Endpoint).Msg("almacenamiento de objetos")
		}
		mirror = m
	}

	var mailer ports.Mailer = infrmail.NewNoopMailer(log.Named("mail"))
	if cfg.SMTP.Enabled() {
		mailer = infrmail.NewSMTPMailer(cfg.SMTP)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewCatalogUseCase(catalogRepo)
	invoiceUC := billing.NewInvoiceUseCase(billing.Deps{
		TxRunner:  txRunner,
		Catalogs:  catalogRepo,
		Users:     userRepo,
		Invoices:  invoiceRepo,
		Documents: invoiceDocRepo,
		Renderer:  infrapdf.NewInvoiceRenderer(),
		Mirror:    mirror,
		Mailer:    mailer,
		Issuer:    issuer,
		Log:       log.Named("billing"),
	})
	payrollUC := payroll.NewPayrollUseCase(payroll.Deps{
		TxRunner:  txRunner,
		Catalogs:  catalogRepo,
		Users:     userRepo,
		Employees: employeeRepo,
		Receipts:  receiptRepo,
		Documents: payrollDocRepo,
		Renderer:  infrapdf.NewPayrollRenderer(),
		Mirror:    mirror,
		Issuer:    issuer,
		Log:       log.Named("payroll"),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (requiere `swag init`)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Facturas CFDI API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		InvoiceUC: invoiceUC,
		PayrollUC: payrollUC,
		JWTSecret: cfg.JWT.Secret,
		Logger:    log,
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

func issuerFromConfig(c config.IssuerConfig) (entity.Issuer, error) {
	rate, err := decimal.NewFromString(c.ExchangeRate)
	if err != nil {
		return entity.Issuer{}, err
	}
	return entity.Issuer{
		CompanyName:  c.CompanyName,
		RFC:          c.RFC,
		Place:        c.Place,
		Currency:     c.Currency,
		ExchangeRate: rate,
	}, nil
}
