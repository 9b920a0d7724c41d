package dto

import "time"

// StockLine fila de una sección del relatorio de estoque.
type StockLine struct {
	Code     string
	Name     string
	Quantity int
	Location LocationDTO
}

// MovementLine fila del histórico de movimientos.
type MovementLine struct {
	Timestamp   time.Time
	Type        string
	ProductName string
	Quantity    int
}
