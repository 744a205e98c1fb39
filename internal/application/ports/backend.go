// Package ports declara los colaboradores externos del terminal POS tal como
// los consumen los casos de uso. Las implementaciones viven en
// internal/infrastructure.
package ports

import (
	"context"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/domain/entity"
	"github.com/jhoicas/carniceria-pos/internal/domain/sale"
)

// Authenticator inicia sesión contra el backend y devuelve el token emitido.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

// CatalogProvider expone el catálogo remoto de productos.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// SaleSubmitter registra una venta terminada en el backend. Un error de tipo
// *backend.Error conserva el mensaje del servidor tal cual para mostrarlo al
// usuario; el carrito no debe vaciarse ante cualquier fallo.
type SaleSubmitter interface {
	SubmitSale(ctx context.Context, req *sale.Request) error
}

// ReportProvider consulta los reportes del backend.
type ReportProvider interface {
	SalesReport(ctx context.Context, from, to string) (*dto.SalesReportResponse, error)
	TopProducts(ctx context.Context, from, to string) (*dto.TopProductsResponse, error)
	Inventory(ctx context.Context) (*dto.InventoryResponse, error)
}

// TicketGenerator produce el ticket de venta en PDF a partir de las líneas
// registradas.
type TicketGenerator interface {
	GenerateTicket(ctx context.Context, t TicketData) ([]byte, error)
}

// TicketData datos necesarios para imprimir el ticket de una venta registrada.
type TicketData struct {
	TicketID  string
	StoreName string
	Lines     []entity.SaleLine
	Total     string // total ya formateado a 2 decimales
	IssuedAt  string
}
