package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-cliente/internal/application/adjustment"
	"github.com/jhoicas/Inventario-cliente/internal/application/catalog"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/report"
	"github.com/jhoicas/Inventario-cliente/internal/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store           *store.Store
	CatalogUC       *catalog.UseCase
	AdjustmentUC    *adjustment.UseCase
	PDF             *report.MarotoReportGenerator
	AppName         string
	AdjustPageLimit int
}

// Router registra las rutas del cliente local.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products: grid con scroll incremental
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC, deps.Store)
	products.Get("/", productHandler.List)
	products.Post("/load", productHandler.Load)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Adjustments: tabla con navegación por página
	adjustments := api.Group("/adjustments")
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC, deps.Store, deps.AdjustPageLimit)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Post("/load", adjustmentHandler.Load)
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Get("/:id", adjustmentHandler.GetByID)
	adjustments.Put("/:id", adjustmentHandler.Update)
	adjustments.Delete("/:id", adjustmentHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Store, deps.PDF, deps.AppName)
	api.Get("/stats", dashboardHandler.Stats)
	api.Get("/report.pdf", dashboardHandler.Report)

	// Modales
	modals := api.Group("/modals")
	modalHandler := NewModalHandler(deps.Store)
	modals.Get("/", modalHandler.State)
	modals.Post("/product", modalHandler.OpenProductForm)
	modals.Post("/product/close", modalHandler.CloseProductForm)
	modals.Post("/product-detail", modalHandler.OpenProductDetail)
	modals.Post("/product-detail/close", modalHandler.CloseProductDetail)
	modals.Post("/adjustment", modalHandler.OpenAdjustment)
	modals.Post("/adjustment/close", modalHandler.CloseAdjustment)
	modals.Post("/close-all", modalHandler.CloseAll)
}
