package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/pkg/session"
)

// RequireSession bloquea las rutas protegidas mientras no haya sesión activa
// contra el backend. El POS no valida la firma del token (eso lo hace el
// backend en cada petición); aquí solo se exige haber iniciado sesión y que
// el token no esté vencido.
func RequireSession(sess *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sess.Active() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NO_SESSION",
				Message: "No hay sesión. Inicia sesión de nuevo.",
			})
		}
		return c.Next()
	}
}
