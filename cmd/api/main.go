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

	"github.com/jhoicas/inventario-bom/docs"
	appanalytics "github.com/jhoicas/inventario-bom/internal/application/analytics"
	"github.com/jhoicas/inventario-bom/internal/application/auth"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/application/production"
	"github.com/jhoicas/inventario-bom/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventario-bom/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventario-bom/internal/interfaces/http"
	"github.com/jhoicas/inventario-bom/pkg/config"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// @title                       Inventario BOM API
// @version                     1.0
// @description                 Proveedores, ítems, BOM de un nivel, movimientos de stock y producción.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	txRunner, closeStorage, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer closeStorage()

	ledger := inventory.NewStockLedger(log.Component("ledger"))
	authUC := auth.NewAuthUseCase(
		auth.Credentials{Username: cfg.Auth.Username, PasswordHash: cfg.Auth.PasswordHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)
	if cfg.Auth.PasswordHash == "" {
		log.Warn().Msg("AUTH_PASSWORD_HASH vacío: el login estará deshabilitado (generar con cmd/hashpw)")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SupplierUC:    usecase.NewSupplierUseCase(txRunner, log.Component("suppliers")),
		ItemUC:        usecase.NewItemUseCase(txRunner, log.Component("items")),
		BOMUC:         usecase.NewBOMUseCase(txRunner, log.Component("bom")),
		TransactionUC: inventory.NewTransactionUseCase(txRunner, ledger, log.Component("transactions")),
		Planner:       production.NewPlanner(txRunner),
		Orchestrator:  production.NewOrchestrator(txRunner, ledger, log.Component("production")),
		PlanPDF:       infrapdf.NewMarotoPDFGenerator(),
		DashboardUC:   appanalytics.NewDashboardUseCase(txRunner, cfg.Inventory.LowStockThreshold),
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		Logger:        log.Component("http"),
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
