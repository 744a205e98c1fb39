package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/domain"
	"github.com/jhoicas/carniceria-pos/internal/infrastructure/backend"
)

// respondError traduce errores de dominio y del backend a respuestas HTTP.
// Un *backend.Error conserva su código HTTP y su mensaje tal cual: la UI debe
// mostrar el texto del servidor sin reformular.
func respondError(c *fiber.Ctx, err error) error {
	var be *backend.Error
	switch {
	case errors.As(err, &be):
		return c.Status(be.Status).JSON(dto.ErrorResponse{Code: "BACKEND", Message: be.Message})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "El carrito está vacío."})
	case errors.Is(err, domain.ErrNoActiveLine):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_LINE", Message: "no hay línea de venta activa"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrNoTicket):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_TICKET", Message: "no hay ticket disponible"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNREACHABLE", Message: "No se pudo conectar con el servidor"})
	}
}
