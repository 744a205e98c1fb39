package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el catálogo remoto.
type CreateProductRequest struct {
	Name  string          `json:"nombre"`
	Unit  string          `json:"unidad"` // kg | pieza
	Price decimal.Decimal `json:"precio"`
	Stock decimal.Decimal `json:"existencia"`
}

// UpdateProductRequest edición de producto; a diferencia del alta permite
// cambiar el flag activo.
type UpdateProductRequest struct {
	Name   string          `json:"nombre"`
	Unit   string          `json:"unidad"`
	Price  decimal.Decimal `json:"precio"`
	Stock  decimal.Decimal `json:"existencia"`
	Active bool            `json:"activo"`
}
