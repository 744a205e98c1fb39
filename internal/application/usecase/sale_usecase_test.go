package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/ports"
	"github.com/jhoicas/carniceria-pos/internal/application/usecase"
	"github.com/jhoicas/carniceria-pos/internal/domain"
	"github.com/jhoicas/carniceria-pos/internal/domain/entity"
	"github.com/jhoicas/carniceria-pos/internal/domain/sale"
	"github.com/jhoicas/carniceria-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalog struct {
	products []entity.Product
	err      error
}

func (f *fakeCatalog) ListProducts(context.Context) ([]entity.Product, error) {
	return f.products, f.err
}
func (f *fakeCatalog) CreateProduct(_ context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	return &entity.Product{ID: 99, Name: in.Name, Unit: in.Unit, Price: in.Price, Stock: in.Stock, Active: true}, nil
}
func (f *fakeCatalog) UpdateProduct(_ context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	return &entity.Product{ID: id, Name: in.Name, Unit: in.Unit, Price: in.Price, Stock: in.Stock, Active: in.Active}, nil
}
func (f *fakeCatalog) DeleteProduct(context.Context, int64) error { return nil }

type fakeSubmitter struct {
	err      error
	received *sale.Request
	calls    int
}

func (f *fakeSubmitter) SubmitSale(_ context.Context, req *sale.Request) error {
	f.calls++
	f.received = req
	return f.err
}

type fakeTickets struct {
	err   error
	calls int
}

func (f *fakeTickets) GenerateTicket(context.Context, ports.TicketData) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7 ticket"), nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Bistec de res", Unit: entity.UnitKg, Price: dec("150.00"), Stock: dec("12"), Active: true},
		{ID: 2, Name: "Jamón serrano", Unit: entity.UnitKg, Price: dec("280.00"), Stock: dec("4"), Active: true},
		{ID: 3, Name: "Chorizo", Unit: entity.UnitPiece, Price: dec("45.50"), Stock: dec("30"), Active: true},
	}
}

func newSaleUC(t *testing.T, catalog *fakeCatalog, submitter *fakeSubmitter, tickets *fakeTickets) *usecase.SaleUseCase {
	t.Helper()
	uc := usecase.NewSaleUseCase(catalog, submitter, tickets, "Carnicería La Moderna", "", logger.Nop())
	_, err := uc.StartSession(context.Background())
	require.NoError(t, err)
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión de venta y búsqueda local
// ──────────────────────────────────────────────────────────────────────────────

func TestStartSession_CargaCatalogo(t *testing.T) {
	uc := usecase.NewSaleUseCase(&fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{}, "Carnicería", "", logger.Nop())

	products, err := uc.StartSession(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestStartSession_ErrorDelBackend(t *testing.T) {
	uc := usecase.NewSaleUseCase(&fakeCatalog{err: errors.New("sin conexión")}, &fakeSubmitter{}, &fakeTickets{}, "Carnicería", "", logger.Nop())

	_, err := uc.StartSession(context.Background())
	require.Error(t, err)
}

func TestProducts_BusquedaSinAcentos(t *testing.T) {
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{})

	got := uc.Products("jamon")
	require.Len(t, got, 1)
	assert.Equal(t, "Jamón serrano", got[0].Name)

	got = uc.Products("CHOR")
	require.Len(t, got, 1)
	assert.Equal(t, "Chorizo", got[0].Name)

	assert.Len(t, uc.Products(""), 3, "sin término devuelve todo el snapshot")
	assert.Empty(t, uc.Products("pollo"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de línea: begin → editar → confirmar
// ──────────────────────────────────────────────────────────────────────────────

func TestBeginLine_ProductoDesconocido(t *testing.T) {
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{})

	_, err := uc.BeginLine(404)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFlujoDeLinea_Completo(t *testing.T) {
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{})

	st, err := uc.BeginLine(1)
	require.NoError(t, err)
	assert.Equal(t, "Bistec de res", st.Name)
	assert.True(t, dec("1").Equal(st.Quantity))
	assert.True(t, dec("150").Equal(st.Amount))
	assert.Equal(t, "ninguno", st.LastEdited)

	st, err = uc.EditQuantity(dec("2"))
	require.NoError(t, err)
	assert.True(t, dec("300").Equal(st.Amount))
	assert.Equal(t, "cantidad", st.LastEdited)

	cart, err := uc.ConfirmLine()
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, dec("300").Equal(cart.Total))

	// Tras confirmar el editor queda en reposo.
	_, err = uc.LineState()
	assert.ErrorIs(t, err, domain.ErrNoActiveLine)
}

func TestEditarSinLineaActiva(t *testing.T) {
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{})

	_, err := uc.EditPrice(dec("10"))
	assert.ErrorIs(t, err, domain.ErrNoActiveLine)
	_, err = uc.ConfirmLine()
	assert.ErrorIs(t, err, domain.ErrNoActiveLine)
}

func TestCancelLine_NoTocaElCarrito(t *testing.T) {
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{})

	_, err := uc.BeginLine(1)
	require.NoError(t, err)
	_, err = uc.ConfirmLine()
	require.NoError(t, err)

	_, err = uc.BeginLine(3)
	require.NoError(t, err)
	uc.CancelLine()
	uc.CancelLine() // idempotente

	cart := uc.Cart()
	assert.Len(t, cart.Items, 1, "cancelar la línea no afecta lo ya confirmado")
}

func TestRemoveItem(t *testing.T) {
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{})

	for _, id := range []int64{1, 3, 1} {
		_, err := uc.BeginLine(id)
		require.NoError(t, err)
		_, err = uc.ConfirmLine()
		require.NoError(t, err)
	}

	cart := uc.RemoveItem(1)
	require.Len(t, cart.Items, 1, "se quitan todas las líneas del producto 1")
	assert.Equal(t, int64(3), cart.Items[0].ProductID)
	assert.True(t, dec("45.50").Equal(cart.Total))
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de la venta
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_CarritoVacio(t *testing.T) {
	submitter := &fakeSubmitter{}
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, submitter, &fakeTickets{})

	_, err := uc.RegisterSale(context.Background())
	require.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Zero(t, submitter.calls, "con carrito vacío no se toca la red")
}

func TestRegisterSale_FalloDelBackendConservaCarrito(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("Stock insuficiente")}
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, submitter, &fakeTickets{})

	_, err := uc.BeginLine(1)
	require.NoError(t, err)
	_, err = uc.ConfirmLine()
	require.NoError(t, err)

	_, err = uc.RegisterSale(context.Background())
	require.Error(t, err)

	cart := uc.Cart()
	assert.Len(t, cart.Items, 1, "el carrito sobrevive al fallo para reintentar")
	assert.True(t, dec("150").Equal(cart.Total))
}

func TestRegisterSale_ExitoVaciaCarritoYGeneraTicket(t *testing.T) {
	submitter := &fakeSubmitter{}
	tickets := &fakeTickets{}
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, submitter, tickets)

	_, err := uc.BeginLine(1)
	require.NoError(t, err)
	_, err = uc.EditQuantity(dec("2"))
	require.NoError(t, err)
	_, err = uc.ConfirmLine()
	require.NoError(t, err)

	out, err := uc.RegisterSale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Venta registrada con éxito", out.Message)
	assert.NotEmpty(t, out.TicketID)

	// El cuerpo enviado refleja el carrito.
	require.NotNil(t, submitter.received)
	require.Len(t, submitter.received.Items, 1)
	assert.Equal(t, int64(1), submitter.received.Items[0].ProductID)

	// Carrito vacío tras el éxito.
	assert.Empty(t, uc.Cart().Items)

	// El ticket queda disponible.
	id, pdf, err := uc.LastTicket()
	require.NoError(t, err)
	assert.Equal(t, out.TicketID, id)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, tickets.calls)
}

func TestRegisterSale_ArchivaElTicket(t *testing.T) {
	dir := t.TempDir()
	uc := usecase.NewSaleUseCase(&fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{}, "Carnicería", dir, logger.Nop())
	_, err := uc.StartSession(context.Background())
	require.NoError(t, err)

	_, err = uc.BeginLine(1)
	require.NoError(t, err)
	_, err = uc.ConfirmLine()
	require.NoError(t, err)

	out, err := uc.RegisterSale(context.Background())
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, out.TicketID+".pdf"))
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestRegisterSale_TicketFallidoNoRevierteLaVenta(t *testing.T) {
	tickets := &fakeTickets{err: errors.New("sin fuente helvetica")}
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, &fakeSubmitter{}, tickets)

	_, err := uc.BeginLine(1)
	require.NoError(t, err)
	_, err = uc.ConfirmLine()
	require.NoError(t, err)

	out, err := uc.RegisterSale(context.Background())
	require.NoError(t, err, "la venta ya quedó registrada aunque el ticket falle")
	assert.Empty(t, out.TicketID)
	assert.Empty(t, uc.Cart().Items)

	_, _, err = uc.LastTicket()
	assert.ErrorIs(t, err, domain.ErrNoTicket)
}

func TestLastTicket_SinVentas(t *testing.T) {
	uc := newSaleUC(t, &fakeCatalog{products: testProducts()}, &fakeSubmitter{}, &fakeTickets{})

	_, _, err := uc.LastTicket()
	assert.ErrorIs(t, err, domain.ErrNoTicket)
}
