package catalog

import (
	"context"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// API contrato del backend REST para productos. El caso de uso trabaja con
// entidades de dominio ya convertidas; el parseo del envelope de respuesta
// vive en el adaptador (infrastructure/restapi).
type API interface {
	// FetchProducts devuelve una página y si quedan páginas por detrás.
	FetchProducts(ctx context.Context, page, limit int) ([]entity.Product, bool, error)
	// CreateProduct da de alta el borrador validado. Puede devolver nil si el
	// backend confirmó sin cuerpo; el caso de uso asigna entonces un ID temporal.
	CreateProduct(ctx context.Context, draft entity.Product) (*entity.Product, error)
	// UpdateProduct reemplaza los datos del producto. Puede devolver nil con el
	// mismo significado que en CreateProduct.
	UpdateProduct(ctx context.Context, id string, draft entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
