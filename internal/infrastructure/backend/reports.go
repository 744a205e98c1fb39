package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/ports"
)

var _ ports.ReportProvider = (*Client)(nil)

// SalesReport consulta GET /api/reportes/ventas?inicio&fin.
func (c *Client) SalesReport(ctx context.Context, from, to string) (*dto.SalesReportResponse, error) {
	var out dto.SalesReportResponse
	path := "/api/reportes/ventas?" + rangeQuery(from, to)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopProducts consulta GET /api/reportes/mas-vendidos?inicio&fin.
func (c *Client) TopProducts(ctx context.Context, from, to string) (*dto.TopProductsResponse, error) {
	var out dto.TopProductsResponse
	path := "/api/reportes/mas-vendidos?" + rangeQuery(from, to)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Inventory consulta GET /api/reportes/inventario.
func (c *Client) Inventory(ctx context.Context) (*dto.InventoryResponse, error) {
	var out dto.InventoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/reportes/inventario", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func rangeQuery(from, to string) string {
	q := url.Values{}
	q.Set("inicio", from)
	q.Set("fin", to)
	return q.Encode()
}
