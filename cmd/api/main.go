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

	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/internal/infrastructure/memory"
	"github.com/jhoicas/stockboard/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/stockboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/stockboard/internal/interfaces/http"
	"github.com/jhoicas/stockboard/pkg/config"
	"github.com/jhoicas/stockboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	recorder := metrics.NewRecorder()
	opts := usecase.Options{Observer: recorder}

	store := memory.NewStore(memory.StoreOptions{ActivityCapacity: cfg.Inventory.ActivityLimit})
	inventoryUC := usecase.NewInventoryUseCase(store.Items, store.Activity, cfg.Inventory.LowStockFactor, opts)
	clientUC := usecase.NewClientUseCase(store.Clients, store.Purchases, store.Activity, opts)
	purchaseUC := usecase.NewPurchaseUseCase(store.Purchases, store.Activity, opts)
	dashboardUC := usecase.NewDashboardUseCase(store.Items, store.Clients, store.Purchases, store.Activity, opts)

	// PDF: recibo de compra e informe de stock
	reportUC := usecase.NewReportUseCase(inventoryUC, purchaseUC, infrapdf.NewMarotoGenerator(cfg.App.Name), opts)

	if cfg.App.SeedDemo {
		if err := usecase.SeedDemo(inventoryUC, clientUC, purchaseUC); err != nil {
			log.Fatal().Err(err).Msg("cargar catálogo de demostración")
		}
		log.Component("seed").Info().Msg("catálogo de demostración cargado")
	}

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
		Title:    "Stockboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		ClientUC:    clientUC,
		PurchaseUC:  purchaseUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Metrics:     recorder,
		Log:         log,
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
