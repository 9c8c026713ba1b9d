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

	"github.com/jhoicas/clientes-api/internal/application/auth"
	"github.com/jhoicas/clientes-api/internal/application/report"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/clientes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/pkg/clock"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	if cfg.DB.AutoMigrate {
		migrator, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("preparar migraciones")
		}
		if err := migrator.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		if err := migrator.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clk := clock.NewRealClock()
	loc := cfg.Report.Location()

	docTypeRepo := postgres.NewDocumentTypeRepository(pool)
	categoryRepo := postgres.NewProductCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	docTypeUC := usecase.NewDocumentTypeUseCase(docTypeRepo)
	categoryUC := usecase.NewProductCategoryUseCase(categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, docTypeRepo, clk)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, txRunner, clk, loc)

	// Documentos: Excel para exportes y fidelización, PDF para el extracto del cliente
	excelWriter := spreadsheet.NewExcelWriter()
	statementPDF := infrapdf.NewStatementGenerator(clk)
	lookupUC := report.NewLookupUseCase(customerRepo, purchaseRepo)
	exportUC := report.NewCustomerExportUseCase(customerRepo, purchaseRepo, excelWriter, statementPDF, loc)
	loyaltyUC := report.NewLoyaltyUseCase(reportRepo, excelWriter, clk, report.LoyaltyConfig{
		Threshold: cfg.Report.LoyaltyThreshold,
		Location:  loc,
	}, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, clk)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		UnescapePath: true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Clientes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DocumentTypes: docTypeUC,
		Categories:    categoryUC,
		Customers:     customerUC,
		Products:      productUC,
		Purchases:     purchaseUC,
		Lookup:        lookupUC,
		Export:        exportUC,
		Loyalty:       loyaltyUC,
		Auth:          authUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
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
