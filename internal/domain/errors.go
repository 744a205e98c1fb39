package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoActiveLine    = errors.New("no hay línea de venta activa")
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrNoTicket        = errors.New("no hay ticket disponible")
)
