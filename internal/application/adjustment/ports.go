package adjustment

import (
	"context"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// API contrato del backend REST para transacciones de ajuste.
type API interface {
	// FetchAdjustments devuelve una página y el total global de transacciones.
	FetchAdjustments(ctx context.Context, page, limit int) ([]entity.AdjustmentTransaction, int, error)
	// CreateAdjustment registra el ajuste y devuelve el ID asignado por el
	// backend ("" si el backend confirmó sin id).
	CreateAdjustment(ctx context.Context, productID string, qty int) (string, error)
	// UpdateAdjustment revisa la cantidad de una transacción existente.
	UpdateAdjustment(ctx context.Context, id string, qty int) error
	DeleteAdjustment(ctx context.Context, id string) error
}

// ProductSource acceso al catálogo completo para el select del formulario de
// alta (el modal carga todos los productos página a página).
type ProductSource interface {
	LoadAll(ctx context.Context) ([]entity.Product, error)
}
