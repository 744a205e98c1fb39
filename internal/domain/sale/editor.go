// Package sale implementa el núcleo de la venta en curso: el editor de la
// línea activa (precio / cantidad / importe) y el carrito que agrega las
// líneas confirmadas.
//
// Regla de reconciliación de la línea:
//
//	precio o cantidad editados  ⇒ importe  = round2(precio × cantidad)
//	importe editado             ⇒ cantidad = round3(importe / precio)  si precio > 0
//	importe editado, precio = 0 ⇒ cantidad queda intacta (guarda de división)
//
// El campo editado por el usuario nunca se sobreescribe en el mismo evento.
// Redondeo: half-away-from-zero (decimal.Round), importe a 2 decimales y
// cantidad a 3, igual que el backend.
package sale

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carniceria-pos/internal/domain"
	"github.com/jhoicas/carniceria-pos/internal/domain/entity"
)

// Escalas de redondeo del dominio.
const (
	amountScale   = 2
	quantityScale = 3
)

// EditedField indica cuál de los tres campos editables recibió la última
// entrada del usuario; decide qué recalcula la reconciliación.
type EditedField int

const (
	FieldNone EditedField = iota
	FieldPrice
	FieldQuantity
	FieldAmount
)

// LineEditor mantiene la línea de venta en edición. Existe a lo sumo una
// línea activa a la vez: Begin abre la edición y Confirm o Cancel la cierran.
// No es seguro para uso concurrente; el dueño de la sesión serializa el acceso.
type LineEditor struct {
	product    *entity.Product
	price      decimal.Decimal
	quantity   decimal.Decimal
	amount     decimal.Decimal
	lastEdited EditedField
}

// NewLineEditor construye un editor en reposo (sin línea activa).
func NewLineEditor() *LineEditor {
	return &LineEditor{}
}

// Begin abre la edición de una línea para el producto dado: precio igual al
// del catálogo, cantidad 1 e importe derivado. Si había una línea en curso se
// descarta.
func (e *LineEditor) Begin(p entity.Product) {
	e.product = &p
	e.price = p.Price
	e.quantity = decimal.NewFromInt(1)
	e.amount = e.price.Mul(e.quantity).Round(amountScale)
	e.lastEdited = FieldNone
}

// Active reporta si hay una línea en edición.
func (e *LineEditor) Active() bool {
	return e.product != nil
}

// EditPrice fija el precio unitario y recalcula el importe.
func (e *LineEditor) EditPrice(v decimal.Decimal) error {
	return e.edit(FieldPrice, v)
}

// EditQuantity fija la cantidad y recalcula el importe.
func (e *LineEditor) EditQuantity(v decimal.Decimal) error {
	return e.edit(FieldQuantity, v)
}

// EditAmount fija el importe y recalcula la cantidad (si el precio lo permite).
func (e *LineEditor) EditAmount(v decimal.Decimal) error {
	return e.edit(FieldAmount, v)
}

func (e *LineEditor) edit(field EditedField, v decimal.Decimal) error {
	if !e.Active() {
		return domain.ErrNoActiveLine
	}
	if v.IsNegative() {
		return domain.ErrInvalidInput
	}
	switch field {
	case FieldPrice:
		e.price = v
	case FieldQuantity:
		e.quantity = v
	case FieldAmount:
		e.amount = v
	}
	e.lastEdited = field
	e.reconcile()
	return nil
}

// reconcile recalcula el campo dependiente según el último editado.
// Con precio = 0 e importe editado no hay nada que derivar: la cantidad se
// deja como estaba en lugar de producir un valor infinito.
func (e *LineEditor) reconcile() {
	switch e.lastEdited {
	case FieldPrice, FieldQuantity:
		e.amount = e.price.Mul(e.quantity).Round(amountScale)
	case FieldAmount:
		if e.price.IsPositive() {
			e.quantity = e.amount.Div(e.price).Round(quantityScale)
		}
	}
}

// Confirm cierra la edición y devuelve el snapshot inmutable de la línea.
// El subtotal es el importe vigente al confirmar. El editor vuelve a reposo.
func (e *LineEditor) Confirm() (entity.SaleLine, error) {
	if !e.Active() {
		return entity.SaleLine{}, domain.ErrNoActiveLine
	}
	line := entity.SaleLine{
		ProductID: e.product.ID,
		Name:      e.product.Name,
		Unit:      e.product.Unit,
		Price:     e.price,
		Quantity:  e.quantity,
		Subtotal:  e.amount,
	}
	e.reset()
	return line, nil
}

// Cancel descarta la línea en edición. Es idempotente: cancelar sin línea
// activa no hace nada.
func (e *LineEditor) Cancel() {
	e.reset()
}

func (e *LineEditor) reset() {
	e.product = nil
	e.price = decimal.Zero
	e.quantity = decimal.Zero
	e.amount = decimal.Zero
	e.lastEdited = FieldNone
}

// Product devuelve el producto de la línea activa, o nil en reposo.
func (e *LineEditor) Product() *entity.Product {
	return e.product
}

// Price devuelve el precio unitario vigente de la línea activa.
func (e *LineEditor) Price() decimal.Decimal { return e.price }

// Quantity devuelve la cantidad vigente de la línea activa.
func (e *LineEditor) Quantity() decimal.Decimal { return e.quantity }

// Amount devuelve el importe vigente de la línea activa.
func (e *LineEditor) Amount() decimal.Decimal { return e.amount }

// LastEdited devuelve el último campo editado por el usuario.
func (e *LineEditor) LastEdited() EditedField { return e.lastEdited }
