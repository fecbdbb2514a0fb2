package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-cliente/internal/application/dto"
	"github.com/jhoicas/Inventario-cliente/internal/domain"
	"github.com/jhoicas/Inventario-cliente/internal/infrastructure/restapi"
)

// writeError traduce la taxonomía de errores del cliente a HTTP local:
//   - validación            -> 400 con mensajes por campo (nunca llegó a la red)
//   - error HTTP del backend -> el mismo status, mensaje tal cual (502 si transporte)
//   - fallo de negocio (2xx + success:false) -> 502 con el mensaje del backend
//   - carga en vuelo        -> 409 (el caller debe esperar o reintentar)
func writeError(c *fiber.Ctx, err error) error {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: verr.Fields,
		})
	}

	var apiErr *restapi.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status == 0 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: apiErr.Message})
	}

	switch {
	case errors.Is(err, domain.ErrUpstream):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_REJECTED", Message: err.Error()})
	case errors.Is(err, domain.ErrLoadInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOAD_IN_FLIGHT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
