package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/internal/infrastructure/metrics"
	"github.com/jhoicas/stockboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	ClientUC    *usecase.ClientUseCase
	PurchaseUC  *usecase.PurchaseUseCase
	DashboardUC *usecase.DashboardUseCase
	ReportUC    *usecase.ReportUseCase
	Metrics     *metrics.Recorder // nil = sin /metrics
	Log         *logger.Logger
}

// Router registra middlewares y rutas de la API.
// Las rutas estáticas (/summary, /replenishment, /report.pdf) se registran antes que /:id.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Use(RequestLogger(log.Component("http")))
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	itemHandler := NewItemHandler(deps.InventoryUC, log)
	reportHandler := NewReportHandler(deps.ReportUC, log)
	items := api.Group("/items")
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/summary", itemHandler.Summary)
	items.Get("/replenishment", itemHandler.Replenishment)
	items.Get("/report.pdf", reportHandler.StockReport)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	api.Get("/categories", itemHandler.Categories)

	clientHandler := NewClientHandler(deps.ClientUC, log)
	clients := api.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/summary", clientHandler.Summary)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, log)
	purchases := api.Group("/purchases")
	purchases.Get("/", purchaseHandler.List)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/summary", purchaseHandler.Summary)
	purchases.Get("/:id/receipt.pdf", reportHandler.PurchaseReceipt)
	purchases.Get("/:id", purchaseHandler.GetByID)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/overview", dashboardHandler.Overview)
	dashboard.Get("/analytics", dashboardHandler.Analytics)
	dashboard.Get("/activity", dashboardHandler.Activity)
}
