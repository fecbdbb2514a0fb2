package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// APIError error tipado de una respuesta no exitosa del backend.
// Status 0 indica fallo de transporte (el backend nunca respondió).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend inaccesible: %s", e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// wireID acepta id numérico o string en el JSON del backend y lo canoniza a
// string. El backend histórico mezclaba ambos según el endpoint.
type wireID string

func (w *wireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*w = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*w = wireID(n.String())
	return nil
}

// wireTime acepta RFC3339 (con o sin fracción) y fecha simple.
type wireTime struct {
	time.Time
}

func (w *wireTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		w.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			w.Time = t
			return nil
		}
	}
	return fmt.Errorf("fecha no reconocida: %q", s)
}

// ── Envelopes del backend ─────────────────────────────────────────────────────

type paginationEnvelope struct {
	HasNextPage bool `json:"hasNextPage"`
	Total       int  `json:"total"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type productWire struct {
	ID          wireID          `json:"id"`
	Title       string          `json:"title"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CreatedAt   *wireTime       `json:"created_at"`
	UpdatedAt   *wireTime       `json:"updated_at"`
}

func (p productWire) toEntity() entity.Product {
	out := entity.Product{
		ID:          string(p.ID),
		Title:       p.Title,
		SKU:         p.SKU,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Stock:       p.Stock,
	}
	if p.CreatedAt != nil {
		out.CreatedAt = p.CreatedAt.Time
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = p.UpdatedAt.Time
	}
	return out
}

type adjustmentWire struct {
	ID        wireID          `json:"id"`
	ProductID wireID          `json:"product_id"`
	SKU       string          `json:"sku"`
	Title     string          `json:"title"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt *wireTime       `json:"created_at"`
}

func (a adjustmentWire) toEntity() entity.AdjustmentTransaction {
	out := entity.AdjustmentTransaction{
		ID:        string(a.ID),
		ProductID: string(a.ProductID),
		SKU:       a.SKU,
		Title:     a.Title,
		Image:     a.Image,
		Price:     a.Price,
		Qty:       a.Qty,
		Amount:    a.Amount,
	}
	if a.CreatedAt != nil {
		out.CreatedAt = a.CreatedAt.Time
	}
	return out
}

type productListEnvelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       []productWire      `json:"data"`
	Pagination paginationEnvelope `json:"pagination"`
}

type productEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *productWire `json:"data"`
}

type adjustmentListEnvelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       []adjustmentWire   `json:"data"`
	Pagination paginationEnvelope `json:"pagination"`
}

type adjustmentCreatedEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		ID wireID `json:"id"`
	} `json:"data"`
}

// productPayload cuerpo de create/update de producto.
type productPayload struct {
	Title       string  `json:"title"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func payloadFromProduct(p entity.Product) productPayload {
	price, _ := p.Price.Float64()
	return productPayload{
		Title:       p.Title,
		SKU:         p.SKU,
		Description: p.Description,
		Image:       p.Image,
		Price:       price,
		Stock:       p.Stock,
	}
}

// adjustmentPayload cuerpo de create/update de ajuste. ProductID se omite en
// updates: el backend no permite reasignar la transacción a otro producto.
type adjustmentPayload struct {
	ProductID any `json:"product_id,omitempty"`
	Qty       int `json:"qty"`
}

// productIDForWire convierte el id canónico al tipo que espera el backend en
// el payload de ajustes (numérico si lo es, string si no).
func productIDForWire(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}
