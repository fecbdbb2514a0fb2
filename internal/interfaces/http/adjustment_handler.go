package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-cliente/internal/application/adjustment"
	"github.com/jhoicas/Inventario-cliente/internal/application/dto"
	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/store"
)

// AdjustmentHandler vistas de la tabla de transacciones de ajuste.
type AdjustmentHandler struct {
	uc        *adjustment.UseCase
	store     *store.Store
	pageLimit int
}

// NewAdjustmentHandler construye el handler. pageLimit se usa para derivar el
// número total de páginas a partir del total que reporta el backend.
func NewAdjustmentHandler(uc *adjustment.UseCase, st *store.Store, pageLimit int) *AdjustmentHandler {
	if pageLimit <= 0 {
		pageLimit = 10
	}
	return &AdjustmentHandler{uc: uc, store: st, pageLimit: pageLimit}
}

func (h *AdjustmentHandler) listResponse() dto.AdjustmentListResponse {
	page, total := h.store.AdjustmentCursor()
	totalPages := (total + h.pageLimit - 1) / h.pageLimit
	return dto.AdjustmentListResponse{
		Items:      h.store.Adjustments(),
		Page:       page,
		Total:      total,
		TotalPages: totalPages,
		State:      h.store.AdjustmentLoadState().String(),
	}
}

// List sirve la página cargada de la tabla.
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.listResponse())
}

// GetByID sirve una transacción cargada por ID.
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	a := h.store.AdjustmentByID(c.Params("id"))
	if a == nil {
		return writeError(c, domain.ErrNotFound)
	}
	return c.JSON(a)
}

// Load carga la página pedida (?page=n, default 1) reemplazando la actual.
func (h *AdjustmentHandler) Load(c *fiber.Ctx) error {
	if err := h.uc.LoadPage(c.Context(), c.QueryInt("page", 1)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.listResponse())
}

// Create registra un ajuste nuevo a partir del producto seleccionado.
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var form dto.AdjustmentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.uc.Create(c.Context(), form)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update revisa la cantidad de una transacción existente.
func (h *AdjustmentHandler) Update(c *fiber.Ctx) error {
	var form dto.AdjustmentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.uc.Revise(c.Context(), c.Params("id"), form)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

// Delete borra una transacción.
func (h *AdjustmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
