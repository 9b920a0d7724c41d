package dto

import "github.com/shopspring/decimal"

// LocationDTO posición en el depósito.
type LocationDTO struct {
	Sector string
	Shelf  string
	Level  string
}

// RegisterProductRequest entrada para cadastrar un producto.
type RegisterProductRequest struct {
	Code     string
	Name     string
	Category string
	Quantity int
	Price    decimal.Decimal
	Location LocationDTO
}

// ProductResponse salida de un producto, con su código y valor total en estoque.
type ProductResponse struct {
	Code       string
	Name       string
	Category   string
	Quantity   int
	Price      decimal.Decimal
	StockValue decimal.Decimal // Price * Quantity
	Location   LocationDTO
}
