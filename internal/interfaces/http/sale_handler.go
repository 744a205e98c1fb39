package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/usecase"
)

// SaleHandler expone el flujo de la venta en curso: sesión de venta, línea en
// edición, carrito y registro (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// StartSession godoc
// @Summary      Abrir la sesión de venta (carga el catálogo)
// @Tags         venta
// @Produce      json
// @Success      200  {array}   entity.Product
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/venta/sesion [post]
func (h *SaleHandler) StartSession(c *fiber.Ctx) error {
	out, err := h.uc.StartSession(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Buscar en el snapshot de la sesión de venta
// @Tags         venta
// @Produce      json
// @Param        q  query  string  false  "filtro por nombre"
// @Success      200  {array}  entity.Product
// @Router       /api/venta/productos [get]
func (h *SaleHandler) Products(c *fiber.Ctx) error {
	return c.JSON(h.uc.Products(c.Query("q")))
}

// BeginLine godoc
// @Summary      Abrir la edición de una línea
// @Tags         venta
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BeginLineRequest  true  "producto_id"
// @Success      200   {object}  dto.LineStateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/venta/linea [post]
func (h *SaleHandler) BeginLine(c *fiber.Ctx) error {
	var in dto.BeginLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.BeginLine(in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LineState godoc
// @Summary      Estado de la línea en edición
// @Tags         venta
// @Produce      json
// @Success      200  {object}  dto.LineStateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/venta/linea [get]
func (h *SaleHandler) LineState(c *fiber.Ctx) error {
	out, err := h.uc.LineState()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EditField godoc
// @Summary      Editar precio, cantidad o importe de la línea
// @Tags         venta
// @Accept       json
// @Produce      json
// @Param        campo  path  string                true  "precio | cantidad | importe"
// @Param        body   body  dto.EditFieldRequest  true  "valor"
// @Success      200    {object}  dto.LineStateResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/venta/linea/{campo} [put]
func (h *SaleHandler) EditField(c *fiber.Ctx) error {
	var in dto.EditFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var (
		out *dto.LineStateResponse
		err error
	)
	switch c.Params("campo") {
	case "precio":
		out, err = h.uc.EditPrice(in.Value)
	case "cantidad":
		out, err = h.uc.EditQuantity(in.Value)
	case "importe":
		out, err = h.uc.EditAmount(in.Value)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FIELD", Message: "campo debe ser precio, cantidad o importe"})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ConfirmLine godoc
// @Summary      Confirmar la línea y pasarla al carrito
// @Tags         venta
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/venta/linea/confirmar [post]
func (h *SaleHandler) ConfirmLine(c *fiber.Ctx) error {
	out, err := h.uc.ConfirmLine()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CancelLine godoc
// @Summary      Descartar la línea en edición
// @Tags         venta
// @Produce      json
// @Success      204
// @Router       /api/venta/linea [delete]
func (h *SaleHandler) CancelLine(c *fiber.Ctx) error {
	h.uc.CancelLine()
	return c.SendStatus(fiber.StatusNoContent)
}

// Cart godoc
// @Summary      Carrito vigente con su total
// @Tags         venta
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/venta [get]
func (h *SaleHandler) Cart(c *fiber.Ctx) error {
	return c.JSON(h.uc.Cart())
}

// RemoveItem godoc
// @Summary      Quitar del carrito todas las líneas de un producto
// @Tags         venta
// @Produce      json
// @Param        productoID  path  int  true  "id del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/venta/items/{productoID} [delete]
func (h *SaleHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("productoID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	return c.JSON(h.uc.RemoveItem(id))
}

// RegisterSale godoc
// @Summary      Registrar la venta en el backend
// @Tags         venta
// @Produce      json
// @Success      200  {object}  dto.RegisterSaleResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/venta/registrar [post]
func (h *SaleHandler) RegisterSale(c *fiber.Ctx) error {
	out, err := h.uc.RegisterSale(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Ticket godoc
// @Summary      Ticket PDF de la última venta registrada
// @Tags         venta
// @Produce      application/pdf
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/venta/ticket [get]
func (h *SaleHandler) Ticket(c *fiber.Ctx) error {
	id, pdf, err := h.uc.LastTicket()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket-`+id+`.pdf"`)
	return c.Send(pdf)
}
