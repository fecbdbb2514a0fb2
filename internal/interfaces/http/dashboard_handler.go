package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-cliente/internal/application/dto"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/report"
	"github.com/jhoicas/Inventario-cliente/internal/store"
)

// DashboardHandler agregados del dashboard y export PDF del resumen.
type DashboardHandler struct {
	store   *store.Store
	pdf     *report.MarotoReportGenerator
	appName string
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(st *store.Store, pdf *report.MarotoReportGenerator, appName string) *DashboardHandler {
	return &DashboardHandler{store: st, pdf: pdf, appName: appName}
}

// Stats sirve los agregados derivados del estado cargado.
// ?low_stock=<umbral> cambia el umbral del aviso de stock bajo.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	threshold := c.QueryInt("low_stock", store.DefaultLowStockThreshold)
	stats := h.store.AdjustmentStats()
	return c.JSON(dto.StatsResponse{
		TotalInventoryValue: h.store.TotalInventoryValue().StringFixed(2),
		Adjustments: dto.AdjustmentStatsResponse{
			Total:      stats.Total,
			StockIn:    stats.StockIn,
			StockOut:   stats.StockOut,
			TotalValue: stats.TotalValue.StringFixed(2),
			ThisMonth:  stats.ThisMonth,
		},
		LowStock:          h.store.LowStockProducts(threshold),
		LowStockThreshold: threshold,
	})
}

// Report genera el resumen de inventario en PDF sobre el estado cargado.
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	stats := h.store.AdjustmentStats()
	pdfBytes, err := h.pdf.GenerateInventoryPDF(report.InventoryReport{
		AppName:     h.appName,
		GeneratedAt: time.Now().Format("02/01/2006 15:04"),
		TotalValue:  h.store.TotalInventoryValue().StringFixed(2),
		Stats:       stats,
		LowStock:    h.store.LowStockProducts(store.DefaultLowStockThreshold),
		Adjustments: h.store.Adjustments(),
	})
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdfBytes)
}
