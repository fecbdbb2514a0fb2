package store

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// AdjustmentPatch campos opcionales para un update parcial de ajuste.
// ProductID y el snapshot del producto no son parcheables: quedan fijados en
// la creación. Amount solo debe venir ya recalculado como |qty|·precio.
type AdjustmentPatch struct {
	Qty    *int
	Amount *decimal.Decimal
}

// ReplaceAdjustments sobreescribe la colección completa (cada página de la
// tabla reemplaza a la anterior). nil se trata como colección vacía.
func (s *Store) ReplaceAdjustments(adjustments []entity.AdjustmentTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if adjustments == nil {
		adjustments = []entity.AdjustmentTransaction{}
	}
	s.adjustments = adjustments
}

// AppendAdjustments concatena una página al final en el orden recibido.
func (s *Store) AppendAdjustments(adjustments []entity.AdjustmentTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustments = append(s.adjustments, adjustments...)
}

// AddAdjustment inserta un ajuste recién creado al frente e incrementa el
// total conocido (update optimista tras un create confirmado).
func (s *Store) AddAdjustment(a entity.AdjustmentTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustments = append([]entity.AdjustmentTransaction{a}, s.adjustments...)
	s.adjustmentTotal++
}

// PatchAdjustment aplica un update parcial sobre el ajuste con ese ID.
// No-op si el ID no está en la colección.
func (s *Store) PatchAdjustment(id string, patch AdjustmentPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.adjustments {
		if s.adjustments[i].ID != id {
			continue
		}
		if patch.Qty != nil {
			s.adjustments[i].Qty = *patch.Qty
		}
		if patch.Amount != nil {
			s.adjustments[i].Amount = *patch.Amount
		}
		return
	}
}

// RemoveAdjustment elimina el ajuste con ese ID y decrementa el total
// conocido con piso en cero. El decremento ocurre aunque el ID no exista:
// el total viene del backend y el delete remoto ya se confirmó.
func (s *Store) RemoveAdjustment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.adjustments[:0]
	for _, a := range s.adjustments {
		if a.ID != id {
			out = append(out, a)
		}
	}
	s.adjustments = out
	if s.adjustmentTotal > 0 {
		s.adjustmentTotal--
	}
}

// SetAdjustmentPage fija la página actual de la tabla.
func (s *Store) SetAdjustmentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustmentPage = page
}

// SetAdjustmentTotal fija el total de transacciones que reporta el backend.
func (s *Store) SetAdjustmentTotal(total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if total < 0 {
		total = 0
	}
	s.adjustmentTotal = total
}

// ResetAdjustments vuelve la colección y su cursor al estado inicial.
func (s *Store) ResetAdjustments() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetAdjustmentsLocked()
}

// Adjustments devuelve una copia del snapshot actual de la colección.
func (s *Store) Adjustments() []entity.AdjustmentTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.AdjustmentTransaction, len(s.adjustments))
	copy(out, s.adjustments)
	return out
}

// AdjustmentCursor devuelve la paginación actual (página, total conocido).
func (s *Store) AdjustmentCursor() (page int, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adjustmentPage, s.adjustmentTotal
}
