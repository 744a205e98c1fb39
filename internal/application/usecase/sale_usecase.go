package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/ports"
	"github.com/jhoicas/carniceria-pos/internal/domain"
	"github.com/jhoicas/carniceria-pos/internal/domain/entity"
	"github.com/jhoicas/carniceria-pos/internal/domain/sale"
	"github.com/jhoicas/carniceria-pos/pkg/logger"
)

// SaleUseCase es el dueño de la venta en curso del terminal: el snapshot del
// catálogo cargado al abrir la sesión de venta, la línea en edición y el
// carrito. El terminal atiende una sola venta a la vez; este caso de uso
// serializa el acceso con un mutex y el núcleo (editor y carrito) permanece
// sin bloqueos.
type SaleUseCase struct {
	mu        sync.Mutex
	catalog   ports.CatalogProvider
	submitter ports.SaleSubmitter
	tickets   ports.TicketGenerator
	log       *logger.Logger
	storeName string
	ticketDir string

	products     map[int64]entity.Product
	ordered      []entity.Product
	editor       *sale.LineEditor
	cart         *sale.Cart
	lastTicketID string
	lastTicket   []byte
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	catalog ports.CatalogProvider,
	submitter ports.SaleSubmitter,
	tickets ports.TicketGenerator,
	storeName string,
	ticketDir string,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		catalog:   catalog,
		submitter: submitter,
		tickets:   tickets,
		log:       log,
		storeName: storeName,
		ticketDir: ticketDir,
		editor:    sale.NewLineEditor(),
		cart:      sale.NewCart(),
	}
}

// StartSession carga el catálogo del backend y lo deja como snapshot de la
// sesión de venta. Se invoca una vez al abrir la pantalla de ventas; la venta
// en curso (línea y carrito) no se toca, así un recargo de catálogo no pierde
// el trabajo del cajero.
func (uc *SaleUseCase) StartSession(ctx context.Context) ([]entity.Product, error) {
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.products = make(map[int64]entity.Product, len(products))
	uc.ordered = products
	for _, p := range products {
		uc.products[p.ID] = p
	}
	return products, nil
}

// Products devuelve el snapshot de la sesión filtrado por nombre (búsqueda
// local, sin red), ignorando mayúsculas y acentos.
func (uc *SaleUseCase) Products(query string) []entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if strings.TrimSpace(query) == "" {
		out := make([]entity.Product, len(uc.ordered))
		copy(out, uc.ordered)
		return out
	}
	needle := foldForSearch(query)
	out := make([]entity.Product, 0, len(uc.ordered))
	for _, p := range uc.ordered {
		if strings.Contains(foldForSearch(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// BeginLine abre la edición de una línea para el producto indicado del
// snapshot de la sesión.
func (uc *SaleUseCase) BeginLine(productID int64) (*dto.LineStateResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, ok := uc.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	uc.editor.Begin(p)
	return uc.lineState(), nil
}

// EditPrice fija el precio unitario de la línea activa y reconcilia.
func (uc *SaleUseCase) EditPrice(v decimal.Decimal) (*dto.LineStateResponse, error) {
	return uc.edit(uc.editor.EditPrice, v)
}

// EditQuantity fija la cantidad de la línea activa y reconcilia.
func (uc *SaleUseCase) EditQuantity(v decimal.Decimal) (*dto.LineStateResponse, error) {
	return uc.edit(uc.editor.EditQuantity, v)
}

// EditAmount fija el importe de la línea activa y reconcilia.
func (uc *SaleUseCase) EditAmount(v decimal.Decimal) (*dto.LineStateResponse, error) {
	return uc.edit(uc.editor.EditAmount, v)
}

func (uc *SaleUseCase) edit(f func(decimal.Decimal) error, v decimal.Decimal) (*dto.LineStateResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := f(v); err != nil {
		return nil, err
	}
	return uc.lineState(), nil
}

// LineState devuelve el estado de la línea en edición.
func (uc *SaleUseCase) LineState() (*dto.LineStateResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.editor.Active() {
		return nil, domain.ErrNoActiveLine
	}
	return uc.lineState(), nil
}

// lineState proyecta el editor al DTO. Requiere línea activa y el mutex tomado.
func (uc *SaleUseCase) lineState() *dto.LineStateResponse {
	p := uc.editor.Product()
	return &dto.LineStateResponse{
		ProductID:  p.ID,
		Name:       p.Name,
		Unit:       p.Unit,
		Price:      uc.editor.Price(),
		Quantity:   uc.editor.Quantity(),
		Amount:     uc.editor.Amount(),
		LastEdited: fieldName(uc.editor.LastEdited()),
	}
}

func fieldName(f sale.EditedField) string {
	switch f {
	case sale.FieldPrice:
		return "precio"
	case sale.FieldQuantity:
		return "cantidad"
	case sale.FieldAmount:
		return "importe"
	default:
		return "ninguno"
	}
}

// ConfirmLine cierra la línea en edición y la agrega al carrito.
func (uc *SaleUseCase) ConfirmLine() (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	line, err := uc.editor.Confirm()
	if err != nil {
		return nil, err
	}
	uc.cart.Add(line)
	return uc.cartResponse(), nil
}

// CancelLine descarta la línea en edición; es idempotente.
func (uc *SaleUseCase) CancelLine() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.editor.Cancel()
}

// Cart devuelve el carrito vigente con su total.
func (uc *SaleUseCase) Cart() *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cartResponse()
}

// RemoveItem quita del carrito todas las líneas del producto indicado.
func (uc *SaleUseCase) RemoveItem(productID int64) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.cart.Remove(productID)
	return uc.cartResponse()
}

func (uc *SaleUseCase) cartResponse() *dto.CartResponse {
	return &dto.CartResponse{
		Items: uc.cart.Lines(),
		Total: uc.cart.Total(),
	}
}

// RegisterSale envía la venta al backend. Con el carrito vacío falla con
// ErrEmptyCart antes de tocar la red. Si el backend rechaza la venta, el
// carrito queda intacto para reintentar; solo tras el éxito se vacía y se
// genera el ticket.
func (uc *SaleUseCase) RegisterSale(ctx context.Context) (*dto.RegisterSaleResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	req, err := uc.cart.ToRequest()
	if err != nil {
		return nil, err
	}
	if err := uc.submitter.SubmitSale(ctx, req); err != nil {
		return nil, err
	}

	lines := uc.cart.Lines()
	total := uc.cart.Total().StringFixed(2)
	uc.cart.Clear()

	ticketID := uuid.New().String()
	ticket, err := uc.tickets.GenerateTicket(ctx, ports.TicketData{
		TicketID:  ticketID,
		StoreName: uc.storeName,
		Lines:     lines,
		Total:     total,
		IssuedAt:  time.Now().Format("02/01/2006 15:04"),
	})
	if err != nil {
		// La venta ya quedó registrada; un ticket fallido no la revierte.
		uc.log.Warn().Err(err).Msg("no se pudo generar el ticket de la venta")
		return &dto.RegisterSaleResponse{Message: "Venta registrada con éxito"}, nil
	}
	uc.lastTicketID = ticketID
	uc.lastTicket = ticket
	uc.archiveTicket(ticketID, ticket)

	return &dto.RegisterSaleResponse{
		Message:  "Venta registrada con éxito",
		TicketID: ticketID,
	}, nil
}

// archiveTicket guarda una copia del ticket en disco. Es un archivo de
// respaldo: si falla solo se registra la advertencia.
func (uc *SaleUseCase) archiveTicket(ticketID string, pdf []byte) {
	if uc.ticketDir == "" {
		return
	}
	if err := os.MkdirAll(uc.ticketDir, 0o755); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo crear el directorio de tickets")
		return
	}
	path := filepath.Join(uc.ticketDir, ticketID+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		uc.log.Warn().Err(err).Str("ruta", path).Msg("no se pudo archivar el ticket")
	}
}

// LastTicket devuelve el PDF del ticket de la última venta registrada.
func (uc *SaleUseCase) LastTicket() (string, []byte, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if len(uc.lastTicket) == 0 {
		return "", nil, domain.ErrNoTicket
	}
	return uc.lastTicketID, uc.lastTicket, nil
}
