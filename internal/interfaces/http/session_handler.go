package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carniceria-pos/internal/application/auth"
	"github.com/jhoicas/carniceria-pos/internal/application/dto"
)

// SessionHandler maneja el inicio, consulta y cierre de la sesión del terminal.
type SessionHandler struct {
	uc *auth.AuthUseCase
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(uc *auth.AuthUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión contra el backend
// @Tags         sesion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/sesion/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado de la sesión
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/sesion [get]
func (h *SessionHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status())
}

// Logout godoc
// @Summary      Cerrar la sesión local
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/sesion [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return c.JSON(h.uc.Status())
}
