package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/carniceria-pos/internal/application/ports"
	"github.com/jhoicas/carniceria-pos/internal/domain/sale"
)

var _ ports.SaleSubmitter = (*Client)(nil)

// SubmitSale registra la venta vía POST /api/ventas. Ante una respuesta no
// exitosa devuelve *Error con el mensaje del servidor sin tocar: el caso de
// uso lo muestra al usuario y conserva el carrito para reintentar.
func (c *Client) SubmitSale(ctx context.Context, req *sale.Request) error {
	return c.do(ctx, http.MethodPost, "/api/ventas", req, nil)
}
