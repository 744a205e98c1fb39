package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/ports"
	"github.com/jhoicas/carniceria-pos/internal/domain/entity"
)

var _ ports.CatalogProvider = (*Client)(nil)

// ListProducts trae el catálogo completo de GET /api/productos. El backend
// puede enviar precio y existencia como número o como string; decimal.Decimal
// acepta ambas formas al deserializar, así que no hay coerción manual.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.do(ctx, http.MethodGet, "/api/productos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct da de alta un producto vía POST /api/productos y devuelve el
// registro creado por el backend.
func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if err := c.do(ctx, http.MethodPost, "/api/productos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct edita un producto vía PUT /api/productos/:id.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	var out entity.Product
	path := fmt.Sprintf("/api/productos/%d", id)
	if err := c.do(ctx, http.MethodPut, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct elimina un producto vía DELETE /api/productos/:id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/productos/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
