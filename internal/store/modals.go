package store

import (
	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// Modal identifica qué modal está abierto. Exactamente uno (o ninguno) a la
// vez: cualquier Open* cierra incondicionalmente el que estuviera abierto,
// sin error de "ya abierto".
type Modal int

const (
	ModalNone Modal = iota
	ModalProductForm
	ModalProductDetail
	ModalAdjustment
)

func (m Modal) String() string {
	switch m {
	case ModalNone:
		return "none"
	case ModalProductForm:
		return "product_form"
	case ModalProductDetail:
		return "product_detail"
	case ModalAdjustment:
		return "adjustment"
	default:
		return "unknown"
	}
}

// ModalMode modo del modal de ajustes. Enum cerrado en lugar de un string
// libre: un modo inválido no puede existir dentro del store.
type ModalMode int

const (
	ModeCreate ModalMode = iota
	ModeEdit
	ModeView
)

func (m ModalMode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	case ModeView:
		return "view"
	default:
		return "unknown"
	}
}

// ParseModalMode convierte el string del borde HTTP al enum.
func ParseModalMode(s string) (ModalMode, error) {
	switch s {
	case "create", "":
		return ModeCreate, nil
	case "edit":
		return ModeEdit, nil
	case "view":
		return ModeView, nil
	default:
		return ModeCreate, domain.ErrInvalidInput
	}
}

// ModalSnapshot estado de modales/selección en un instante, para las vistas.
type ModalSnapshot struct {
	Open               Modal
	AdjustmentMode     ModalMode
	SelectedProduct    *entity.Product
	SelectedAdjustment *entity.AdjustmentTransaction
}

// OpenProductModal abre el formulario de producto: con producto = edición,
// con nil = alta. Cierra cualquier otro modal y limpia la selección ajena.
func (s *Store) OpenProductModal(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalProductForm
	s.selectedProduct = cloneProduct(p)
	s.selectedAdjustment = nil
	s.adjustmentMode = ModeCreate
}

// CloseProductModal cierra el formulario si es el modal activo y limpia la
// selección para que no se filtre una referencia obsoleta al próximo open.
func (s *Store) CloseProductModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modal != ModalProductForm {
		return
	}
	s.modal = ModalNone
	s.selectedProduct = nil
}

// OpenProductDetail abre la vista de detalle del producto.
func (s *Store) OpenProductDetail(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalProductDetail
	s.selectedProduct = cloneProduct(&p)
	s.selectedAdjustment = nil
	s.adjustmentMode = ModeCreate
}

// CloseProductDetail cierra la vista de detalle.
func (s *Store) CloseProductDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modal != ModalProductDetail {
		return
	}
	s.modal = ModalNone
	s.selectedProduct = nil
}

// OpenAdjustmentModal abre el modal de ajustes en el modo indicado.
// adjustment nil solo tiene sentido en ModeCreate.
func (s *Store) OpenAdjustmentModal(a *entity.AdjustmentTransaction, mode ModalMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalAdjustment
	s.adjustmentMode = mode
	s.selectedAdjustment = cloneAdjustment(a)
	s.selectedProduct = nil
}

// CloseAdjustmentModal cierra el modal de ajustes y vuelve el modo a create.
func (s *Store) CloseAdjustmentModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modal != ModalAdjustment {
		return
	}
	s.modal = ModalNone
	s.selectedAdjustment = nil
	s.adjustmentMode = ModeCreate
}

// SetAdjustmentModalMode cambia el modo sin tocar la selección (p. ej. pasar
// de view a edit sobre el mismo ajuste).
func (s *Store) SetAdjustmentModalMode(mode ModalMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustmentMode = mode
}

// CloseAllModals fuerza el estado cerrado desde cualquier situación; reset de
// seguridad tras acciones destructivas.
func (s *Store) CloseAllModals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetUILocked()
}

// ModalState devuelve el snapshot actual de modales y selección.
func (s *Store) ModalState() ModalSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ModalSnapshot{
		Open:               s.modal,
		AdjustmentMode:     s.adjustmentMode,
		SelectedProduct:    cloneProduct(s.selectedProduct),
		SelectedAdjustment: cloneAdjustment(s.selectedAdjustment),
	}
}

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func cloneAdjustment(a *entity.AdjustmentTransaction) *entity.AdjustmentTransaction {
	if a == nil {
		return nil
	}
	ca := *a
	return &ca
}
