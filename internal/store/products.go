package store

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
)

// ProductPatch campos opcionales para un update parcial de producto.
// Solo los punteros no nil se aplican sobre la entidad existente.
type ProductPatch struct {
	Title       *string
	SKU         *string
	Description *string
	Image       *string
	Price       *decimal.Decimal
	Stock       *int
}

// ReplaceProducts sobreescribe la colección completa (carga de página 1 o
// reset). nil se trata como colección vacía: contrato defensivo, no error.
func (s *Store) ReplaceProducts(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if products == nil {
		products = []entity.Product{}
	}
	s.products = products
}

// AppendProducts concatena una página al final en el orden recibido del
// backend. No hay de-duplicación: el caller no debe añadir una página ya
// presente (la guarda es BeginProductLoad).
func (s *Store) AppendProducts(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, products...)
}

// AddProduct inserta un producto recién creado al frente para que sea visible
// sin re-fetch (update optimista tras un create confirmado).
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entity.Product{p}, s.products...)
}

// PatchProduct aplica un update parcial sobre el producto con ese ID.
// No-op si el ID no está en la colección.
func (s *Store) PatchProduct(id string, patch ProductPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		applyProductPatch(&s.products[i], patch)
		return
	}
}

func applyProductPatch(p *entity.Product, patch ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
}

// RemoveProduct elimina el producto con ese ID (tras un delete confirmado).
func (s *Store) RemoveProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	s.products = out
}

// SetProductPage fija la última página cargada.
func (s *Store) SetProductPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productPage = page
}

// SetProductHasMore fija el flag de "quedan páginas" del scroll incremental.
func (s *Store) SetProductHasMore(hasMore bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productHasMore = hasMore
}

// ResetProducts vuelve la colección y su cursor al estado inicial.
// No toca el estado de carga: una carga en vuelo sigue siendo del caller
// que la adquirió.
func (s *Store) ResetProducts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetProductsLocked()
}

// Products devuelve una copia del snapshot actual de la colección.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductCursor devuelve la paginación actual (última página cargada, hasMore).
func (s *Store) ProductCursor() (page int, hasMore bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productPage, s.productHasMore
}

// ProductCount devuelve cuántos productos hay cargados.
func (s *Store) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
