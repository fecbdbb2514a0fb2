package store

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// Queries derivadas: lecturas puras sobre el snapshot actual, recomputadas en
// cada llamada. No hay caché que invalidar.

// DefaultLowStockThreshold umbral por defecto para el aviso de stock bajo.
const DefaultLowStockThreshold = 10

// ProductByID busca un producto por ID. Devuelve nil si no está cargado.
func (s *Store) ProductByID(id string) *entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			return cloneProduct(&s.products[i])
		}
	}
	return nil
}

// AdjustmentByID busca un ajuste por ID. Devuelve nil si no está cargado.
func (s *Store) AdjustmentByID(id string) *entity.AdjustmentTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.adjustments {
		if s.adjustments[i].ID == id {
			return cloneAdjustment(&s.adjustments[i])
		}
	}
	return nil
}

// SearchProducts filtra por substring case-insensitive sobre título, SKU y
// descripción. Query vacía devuelve la colección completa sin filtrar.
func (s *Store) SearchProducts(query string) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		out := make([]entity.Product, len(s.products))
		copy(out, s.products)
		return out
	}

	q := strings.ToLower(query)
	out := []entity.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.SKU), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// LowStockProducts devuelve los productos con stock <= umbral.
// Umbral <= 0 usa DefaultLowStockThreshold.
func (s *Store) LowStockProducts(threshold int) []entity.Product {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.Product{}
	for _, p := range s.products {
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// TotalInventoryValue suma precio*stock de todos los productos cargados.
func (s *Store) TotalInventoryValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}

// AdjustmentStatsResult agregado de la colección de ajustes cargada.
type AdjustmentStatsResult struct {
	Total      int             // transacciones cargadas
	StockIn    int             // suma de cantidades de entrada
	StockOut   int             // suma de cantidades de salida (valor absoluto)
	TotalValue decimal.Decimal // suma de |amount|
	ThisMonth  int             // transacciones del mes calendario en curso
}

// AdjustmentStats recorre la colección una sola vez. ThisMonth se evalúa
// contra el reloj en el momento de la llamada, no se cachea.
func (s *Store) AdjustmentStats() AdjustmentStatsResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	stats := AdjustmentStatsResult{
		Total:      len(s.adjustments),
		TotalValue: decimal.Zero,
	}
	for _, a := range s.adjustments {
		if a.Qty > 0 {
			stats.StockIn += a.Qty
		} else {
			stats.StockOut += -a.Qty
		}
		stats.TotalValue = stats.TotalValue.Add(a.Amount.Abs())
		if !a.CreatedAt.IsZero() &&
			a.CreatedAt.Year() == now.Year() && a.CreatedAt.Month() == now.Month() {
			stats.ThisMonth++
		}
	}
	return stats
}
