package entity

import (
	"github.com/shopspring/decimal"
)

// SaleLine es una línea confirmada de la venta en curso: snapshot inmutable
// del producto y de las cantidades al momento de confirmar. Nunca se muta
// después de crearse; solo se quita del carrito de forma explícita.
type SaleLine struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"nombre"`
	Unit      string          `json:"unidad"`
	Price     decimal.Decimal `json:"precio"`
	Quantity  decimal.Decimal `json:"cantidad"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
