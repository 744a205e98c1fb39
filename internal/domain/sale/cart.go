package sale

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carniceria-pos/internal/domain"
	"github.com/jhoicas/carniceria-pos/internal/domain/entity"
)

// Cart es la secuencia ordenada de líneas confirmadas de la venta en curso,
// con el total derivado. El orden de inserción es el orden de presentación y
// de envío. No es seguro para uso concurrente; lo serializa el dueño de la
// sesión.
type Cart struct {
	lines []entity.SaleLine
	total decimal.Decimal
}

// NewCart construye un carrito vacío.
func NewCart() *Cart {
	return &Cart{total: decimal.Zero}
}

// Add agrega la línea al final del carrito y recalcula el total. No fusiona
// líneas del mismo producto: dos líneas con el mismo id quedan como entradas
// distintas.
func (c *Cart) Add(line entity.SaleLine) {
	c.lines = append(c.lines, line)
	c.recompute()
}

// Remove quita todas las líneas del producto indicado y recalcula el total.
// Quitar "todas" y no solo la primera es una decisión deliberada: así se
// comporta la pantalla de ventas original. Un id ausente no es error.
// Devuelve cuántas líneas se quitaron.
func (c *Cart) Remove(productID int64) int {
	kept := c.lines[:0]
	removed := 0
	for _, l := range c.lines {
		if l.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	c.lines = kept
	if removed > 0 {
		c.recompute()
	}
	return removed
}

// Total devuelve el total vigente: round2 de la suma de subtotales.
func (c *Cart) Total() decimal.Decimal {
	return c.total
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []entity.SaleLine {
	out := make([]entity.SaleLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len devuelve el número de líneas.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear vacía el carrito y deja el total en cero. Se invoca solo tras una
// venta registrada con éxito.
func (c *Cart) Clear() {
	c.lines = nil
	c.total = decimal.Zero
}

func (c *Cart) recompute() {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Subtotal)
	}
	c.total = sum.Round(amountScale)
}

// Request es el cuerpo que el backend espera en POST /api/ventas. Los montos
// van como números JSON sin comillas, de ahí json.Number.
type Request struct {
	Items []RequestItem `json:"items"`
	Total json.Number   `json:"total"`
}

// RequestItem es una línea de la venta saliente.
type RequestItem struct {
	ProductID int64       `json:"producto_id"`
	Quantity  json.Number `json:"cantidad"`
	Price     json.Number `json:"precio"`
}

// ToRequest proyecta el carrito al cuerpo de envío. Con el carrito vacío
// devuelve ErrEmptyCart sin mutar nada: la validación debe llegar al usuario
// antes de intentar cualquier red.
func (c *Cart) ToRequest() (*Request, error) {
	if len(c.lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	items := make([]RequestItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, RequestItem{
			ProductID: l.ProductID,
			Quantity:  json.Number(l.Quantity.String()),
			Price:     json.Number(l.Price.String()),
		})
	}
	return &Request{
		Items: items,
		Total: json.Number(c.total.String()),
	}, nil
}
