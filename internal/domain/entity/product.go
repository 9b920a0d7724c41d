package entity

import "github.com/shopspring/decimal"

// Product representa un producto del estoque, identificado por su código.
// Quantity sólo cambia vía movimientos (entrada/salida) después del alta.
type Product struct {
	Code     string // código único elegido por el usuario
	Name     string
	Category string
	Quantity int
	Price    decimal.Decimal // precio unitario
	Location Location
}

// Location posición física del producto en el depósito.
type Location struct {
	Sector string
	Shelf  string
	Level  string
}
