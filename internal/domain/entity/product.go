package entity

import (
	"github.com/shopspring/decimal"
)

// Unidades de venta que maneja la carnicería. El backend no acepta otras.
const (
	UnitKg    = "kg"
	UnitPiece = "pieza"
)

// ValidUnit reporta si la unidad pertenece al conjunto cerrado {kg, pieza}.
func ValidUnit(u string) bool {
	return u == UnitKg || u == UnitPiece
}

// Product es un producto del catálogo remoto. El POS lo trata como lectura:
// el catálogo es propiedad del backend y aquí solo se consume.
// Price y Stock llegan del backend como número o como string; decimal.Decimal
// acepta ambas formas al deserializar.
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"nombre"`
	Unit      string          `json:"unidad"` // kg | pieza
	Price     decimal.Decimal `json:"precio"`
	Stock     decimal.Decimal `json:"existencia"`
	Active    bool            `json:"activo"`
	UpdatedAt string          `json:"actualizado_en,omitempty"` // timestamp del backend, solo informativo
}
