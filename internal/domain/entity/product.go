package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo tal como lo mantiene el cliente.
// El ID canónico es string: el backend a veces responde con ids numéricos y el
// cliente REST los convierte en el borde.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	SKU         string          `json:"sku"` // clave de negocio única, mayúsculas alfanumérico+guiones
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"` // URL de la imagen
	Price       decimal.Decimal `json:"price"`           // precio de venta, > 0
	Stock       int             `json:"stock"`           // unidades, >= 0
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
}
