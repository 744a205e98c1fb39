package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carniceria-pos/internal/application/usecase"
)

// ReportHandler pantallas de reportes (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas por rango de fechas
// @Tags         reportes
// @Produce      json
// @Param        inicio  query  string  true  "fecha inicio (YYYY-MM-DD)"
// @Param        fin     query  string  true  "fecha fin (YYYY-MM-DD)"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(c.Context(), c.Query("inicio"), c.Query("fin"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos por rango de fechas
// @Tags         reportes
// @Produce      json
// @Param        inicio  query  string  true  "fecha inicio (YYYY-MM-DD)"
// @Param        fin     query  string  true  "fecha fin (YYYY-MM-DD)"
// @Success      200  {object}  dto.TopProductsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/mas-vendidos [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.Context(), c.Query("inicio"), c.Query("fin"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Inventario actual
// @Tags         reportes
// @Produce      json
// @Success      200  {object}  dto.InventoryResponse
// @Router       /api/reportes/inventario [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
