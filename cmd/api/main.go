// @title						Inventory Tracker API
// @version					1.0
// @description				API de inventario con libro de movimientos, historial de acciones y códigos QR.
// @BasePath					/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description				Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/inventory-tracker/docs"
	"github.com/jhoicas/inventory-tracker/internal/application/auditlog"
	"github.com/jhoicas/inventory-tracker/internal/application/auth"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/movement"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventory-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventory-tracker/internal/interfaces/http"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
	"github.com/jhoicas/inventory-tracker/pkg/qrcode"
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer store.Close()

	m := metrics.New()
	qr := qrcode.NewEncoder(cfg.QR.Size)

	movementSvc := movement.NewService(store.Movements)
	auditSvc := auditlog.NewService(store.AuditLog)
	inventorySvc := inventory.NewMutationService(store.Items, movementSvc, auditSvc, qr, m, log)
	labelUC := inventory.NewLabelUseCase(store.Items, qr, infrapdf.NewMarotoLabelGenerator(cfg.App.Name))
	authUC := auth.NewAuthUseCase(store.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log, m))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Inventory Tracker API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db": store.Driver})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Inventory: inventorySvc,
		Labels:    labelUC,
		Movements: movementSvc,
		AuditLog:  auditSvc,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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
