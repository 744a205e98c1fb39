package dto

import (
	"github.com/shopspring/decimal"
)

// SaleReportRow una venta registrada, como la devuelve el backend.
type SaleReportRow struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"usuario_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt string          `json:"creado_en"`
	Date      string          `json:"fecha"`
}

// SalesReportResponse reporte de ventas por rango de fechas.
type SalesReportResponse struct {
	Sales []SaleReportRow `json:"ventas"`
}

// TopProductRow producto más vendido en el rango consultado.
type TopProductRow struct {
	Name     string          `json:"nombre"`
	Quantity decimal.Decimal `json:"cantidad_vendida"`
	Total    decimal.Decimal `json:"total_generado"`
}

// TopProductsResponse reporte de productos más vendidos.
type TopProductsResponse struct {
	Products []TopProductRow `json:"productos"`
}

// InventoryRow existencia actual de un producto.
type InventoryRow struct {
	ID    int64           `json:"id"`
	Name  string          `json:"nombre"`
	Price decimal.Decimal `json:"precio"`
	Stock decimal.Decimal `json:"existencia"`
}

// InventoryResponse reporte de inventario actual.
type InventoryResponse struct {
	Items []InventoryRow `json:"inventario"`
}
