package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-cliente/internal/application/catalog"
	"github.com/jhoicas/Inventario-cliente/internal/application/dto"
	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/store"
)

// ProductHandler juega el rol de las vistas de productos: lee del store y
// delega en el caso de uso todo lo que toca red.
type ProductHandler struct {
	uc    *catalog.UseCase
	store *store.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.UseCase, st *store.Store) *ProductHandler {
	return &ProductHandler{uc: uc, store: st}
}

// List sirve la colección cargada. ?query= filtra con la búsqueda del store;
// ?low_stock=<umbral> devuelve solo los productos con stock bajo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.store.SearchProducts(c.Query("query"))
	if c.Query("low_stock") != "" {
		products = h.store.LowStockProducts(c.QueryInt("low_stock", store.DefaultLowStockThreshold))
	}

	page, hasMore := h.store.ProductCursor()
	return c.JSON(dto.ProductListResponse{
		Items:   products,
		Count:   len(products),
		Page:    page,
		HasMore: hasMore,
		State:   h.store.ProductLoadState().String(),
	})
}

// GetByID sirve un producto cargado por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p := h.store.ProductByID(c.Params("id"))
	if p == nil {
		return writeError(c, domain.ErrNotFound)
	}
	return c.JSON(p)
}

// Load dispara una carga de página: body {"refresh": true} recarga desde la
// página 1, si no trae la siguiente del scroll incremental.
func (h *ProductHandler) Load(c *fiber.Ctx) error {
	var in struct {
		Refresh bool `json:"refresh"`
	}
	// Body vacío = load more.
	_ = c.BodyParser(&in)

	var err error
	if in.Refresh {
		err = h.uc.Refresh(c.Context())
	} else {
		err = h.uc.LoadMore(c.Context())
	}
	if err != nil {
		return writeError(c, err)
	}

	page, hasMore := h.store.ProductCursor()
	return c.JSON(dto.ProductListResponse{
		Items:   h.store.Products(),
		Count:   h.store.ProductCount(),
		Page:    page,
		HasMore: hasMore,
		State:   h.store.ProductLoadState().String(),
	})
}

// Create valida y da de alta un producto (update optimista en el store).
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.uc.Create(c.Context(), form)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update valida y actualiza un producto existente.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.uc.Update(c.Context(), c.Params("id"), form)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// Delete borra un producto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
