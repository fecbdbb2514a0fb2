package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentTransaction registra un ajuste de stock (entrada o salida) con un
// snapshot desnormalizado del producto en el momento de crearse: aunque el
// producto cambie después, el ajuste conserva sku/título/imagen/precio de
// entonces. ProductID nunca cambia tras la creación.
type AdjustmentTransaction struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Title     string          `json:"title"`
	Image     string          `json:"image,omitempty"`
	Price     decimal.Decimal `json:"price"` // precio del producto al crear el ajuste
	Qty       int             `json:"qty"`   // con signo: >0 entrada, <0 salida; 0 es inválido
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// ComputeAmount devuelve |qty| * price. Amount siempre se deriva así del
// snapshot; nunca se acepta un importe entrado a mano.
func ComputeAmount(qty int, price decimal.Decimal) decimal.Decimal {
	n := qty
	if n < 0 {
		n = -n
	}
	return price.Mul(decimal.NewFromInt(int64(n)))
}

// IsStockIn indica si el ajuste es una entrada de stock.
func (a AdjustmentTransaction) IsStockIn() bool { return a.Qty > 0 }
