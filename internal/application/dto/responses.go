package dto

import (
	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// ErrorResponse cuerpo de error HTTP. Fields solo viene en errores de
// validación, con un mensaje por campo.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ProductListResponse página visible del catálogo con su cursor.
type ProductListResponse struct {
	Items   []entity.Product `json:"items"`
	Count   int              `json:"count"`
	Page    int              `json:"page"`
	HasMore bool             `json:"has_more"`
	State   string           `json:"state"` // idle|loading|loaded|failed
}

// AdjustmentListResponse página visible de la tabla de ajustes.
type AdjustmentListResponse struct {
	Items      []entity.AdjustmentTransaction `json:"items"`
	Page       int                            `json:"page"`
	Total      int                            `json:"total"`
	TotalPages int                            `json:"total_pages"`
	State      string                         `json:"state"`
}

// AdjustmentStatsResponse agregado de ajustes para el dashboard.
type AdjustmentStatsResponse struct {
	Total      int    `json:"total"`
	StockIn    int    `json:"stock_in"`
	StockOut   int    `json:"stock_out"`
	TotalValue string `json:"total_value"`
	ThisMonth  int    `json:"this_month"`
}

// StatsResponse dashboard: valor de inventario, agregado de ajustes y avisos
// de stock bajo.
type StatsResponse struct {
	TotalInventoryValue string                  `json:"total_inventory_value"`
	Adjustments         AdjustmentStatsResponse `json:"adjustments"`
	LowStock            []entity.Product        `json:"low_stock"`
	LowStockThreshold   int                     `json:"low_stock_threshold"`
}

// ModalStateResponse estado actual de modales/selección.
type ModalStateResponse struct {
	Open               string                        `json:"open"` // none|product_form|product_detail|adjustment
	AdjustmentMode     string                        `json:"adjustment_mode"`
	SelectedProduct    *entity.Product               `json:"selected_product,omitempty"`
	SelectedAdjustment *entity.AdjustmentTransaction `json:"selected_adjustment,omitempty"`
}
