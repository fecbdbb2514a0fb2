// Package store implementa el contenedor de estado del cliente de inventario:
// las dos colecciones paginadas (productos y ajustes), el estado de
// modales/selección y las queries derivadas. Es la única fuente de verdad del
// lado cliente; las vistas no guardan copias propias, solo referencias por ID.
//
// Toda mutación es atómica respecto a las demás (RWMutex interno). Las
// colecciones y el estado modal son ejes independientes: ninguna operación
// necesita coordinarlos entre sí. El store nunca hace red ni espera nada; el
// trabajo falible ocurre en los casos de uso, que solo mutan tras éxito
// confirmado.
package store

import (
	"sync"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// Store contenedor de estado. Se construye una vez en el wiring y se inyecta
// por referencia; no hay singleton de paquete.
type Store struct {
	mu sync.RWMutex

	// Colección de productos: scroll incremental (página + hasMore).
	products       []entity.Product
	productPage    int
	productHasMore bool
	productState   LoadState

	// Colección de ajustes: navegación por número de página (página + total).
	adjustments     []entity.AdjustmentTransaction
	adjustmentPage  int
	adjustmentTotal int
	adjustmentState LoadState

	// Estado de modales/selección: como mucho un modal abierto a la vez.
	modal              Modal
	adjustmentMode     ModalMode
	selectedProduct    *entity.Product
	selectedAdjustment *entity.AdjustmentTransaction
}

// New crea un store con los defaults compilados: colecciones vacías,
// cursores en página 1, sin modales abiertos.
func New() *Store {
	s := &Store{}
	s.resetProductsLocked()
	s.resetAdjustmentsLocked()
	s.resetUILocked()
	return s
}

// Hydrate fusiona un snapshot persistido en el estado: las colecciones
// persistidas sobreescriben las actuales y todo campo transitorio (estados de
// carga, modales, selecciones) se fuerza a su default cerrado/idle, venga lo
// que venga del snapshot. Así una recarga nunca restaura un modal abierto ni
// un loading colgado. El disparo es responsabilidad del host (una sola vez).
func (s *Store) Hydrate(products []entity.Product, adjustments []entity.AdjustmentTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if products == nil {
		products = []entity.Product{}
	}
	if adjustments == nil {
		adjustments = []entity.AdjustmentTransaction{}
	}
	s.products = products
	s.adjustments = adjustments

	// Cursores a su estado inicial: el snapshot no persiste paginación.
	s.productPage = 1
	s.productHasMore = true
	s.adjustmentPage = 1
	s.adjustmentTotal = 0

	s.productState = StateIdle
	s.adjustmentState = StateIdle
	s.resetUILocked()
}

// ClearAll vacía colecciones, cursores y estado de UI (logout/reset global).
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetProductsLocked()
	s.resetAdjustmentsLocked()
	s.resetUILocked()
	s.productState = StateIdle
	s.adjustmentState = StateIdle
}

func (s *Store) resetProductsLocked() {
	s.products = []entity.Product{}
	s.productPage = 1
	s.productHasMore = true
}

func (s *Store) resetAdjustmentsLocked() {
	s.adjustments = []entity.AdjustmentTransaction{}
	s.adjustmentPage = 1
	s.adjustmentTotal = 0
}

func (s *Store) resetUILocked() {
	s.modal = ModalNone
	s.adjustmentMode = ModeCreate
	s.selectedProduct = nil
	s.selectedAdjustment = nil
}
