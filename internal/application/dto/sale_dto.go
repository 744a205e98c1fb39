package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carniceria-pos/internal/domain/entity"
)

// BeginLineRequest abre la edición de una línea para un producto del catálogo.
type BeginLineRequest struct {
	ProductID int64 `json:"producto_id"`
}

// EditFieldRequest nuevo valor para uno de los campos editables de la línea.
type EditFieldRequest struct {
	Value decimal.Decimal `json:"valor"`
}

// LineStateResponse estado de la línea en edición tras la reconciliación.
type LineStateResponse struct {
	ProductID  int64           `json:"producto_id"`
	Name       string          `json:"nombre"`
	Unit       string          `json:"unidad"`
	Price      decimal.Decimal `json:"precio"`
	Quantity   decimal.Decimal `json:"cantidad"`
	Amount     decimal.Decimal `json:"importe"`
	LastEdited string          `json:"ultimo_editado"` // precio | cantidad | importe | ninguno
}

// CartResponse carrito vigente con su total derivado.
type CartResponse struct {
	Items []entity.SaleLine `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// RegisterSaleResponse resultado de registrar la venta en el backend.
type RegisterSaleResponse struct {
	Message  string `json:"mensaje"`
	TicketID string `json:"ticket_id,omitempty"`
}
