package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-cliente/internal/application/dto"
	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/store"
)

// ModalHandler expone la máquina de estados de modales al front. Abrir un
// modal cierra incondicionalmente el que estuviera abierto; nunca hay dos.
type ModalHandler struct {
	store *store.Store
}

// NewModalHandler construye el handler.
func NewModalHandler(st *store.Store) *ModalHandler {
	return &ModalHandler{store: st}
}

// State sirve el estado actual de modales y selección.
func (h *ModalHandler) State(c *fiber.Ctx) error {
	return c.JSON(toModalResponse(h.store.ModalState()))
}

func toModalResponse(s store.ModalSnapshot) dto.ModalStateResponse {
	return dto.ModalStateResponse{
		Open:               s.Open.String(),
		AdjustmentMode:     s.AdjustmentMode.String(),
		SelectedProduct:    s.SelectedProduct,
		SelectedAdjustment: s.SelectedAdjustment,
	}
}

type modalOpenRequest struct {
	ID   string `json:"id"`
	Mode string `json:"mode"`
}

// OpenProductForm abre el formulario de producto: con id = edición (el
// producto debe estar cargado), sin id = alta.
func (h *ModalHandler) OpenProductForm(c *fiber.Ctx) error {
	var in modalOpenRequest
	_ = c.BodyParser(&in)

	if in.ID == "" {
		h.store.OpenProductModal(nil)
		return h.State(c)
	}
	p := h.store.ProductByID(in.ID)
	if p == nil {
		return writeError(c, domain.ErrNotFound)
	}
	h.store.OpenProductModal(p)
	return h.State(c)
}

// CloseProductForm cierra el formulario de producto.
func (h *ModalHandler) CloseProductForm(c *fiber.Ctx) error {
	h.store.CloseProductModal()
	return h.State(c)
}

// OpenProductDetail abre la vista de detalle del producto indicado.
func (h *ModalHandler) OpenProductDetail(c *fiber.Ctx) error {
	var in modalOpenRequest
	_ = c.BodyParser(&in)

	p := h.store.ProductByID(in.ID)
	if p == nil {
		return writeError(c, domain.ErrNotFound)
	}
	h.store.OpenProductDetail(*p)
	return h.State(c)
}

// CloseProductDetail cierra la vista de detalle.
func (h *ModalHandler) CloseProductDetail(c *fiber.Ctx) error {
	h.store.CloseProductDetail()
	return h.State(c)
}

// OpenAdjustment abre el modal de ajustes: mode create (sin id) o edit/view
// sobre una transacción cargada.
func (h *ModalHandler) OpenAdjustment(c *fiber.Ctx) error {
	var in modalOpenRequest
	_ = c.BodyParser(&in)

	mode, err := store.ParseModalMode(in.Mode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MODE", Message: "mode debe ser create, edit o view"})
	}
	if mode == store.ModeCreate {
		h.store.OpenAdjustmentModal(nil, mode)
		return h.State(c)
	}
	a := h.store.AdjustmentByID(in.ID)
	if a == nil {
		return writeError(c, domain.ErrNotFound)
	}
	h.store.OpenAdjustmentModal(a, mode)
	return h.State(c)
}

// CloseAdjustment cierra el modal de ajustes.
func (h *ModalHandler) CloseAdjustment(c *fiber.Ctx) error {
	h.store.CloseAdjustmentModal()
	return h.State(c)
}

// CloseAll fuerza el estado cerrado desde cualquier situación.
func (h *ModalHandler) CloseAll(c *fiber.Ctx) error {
	h.store.CloseAllModals()
	return h.State(c)
}
