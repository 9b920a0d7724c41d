package dto

import "time"

// MovementRequest entrada para registrar una entrada o salida de estoque.
type MovementRequest struct {
	Code     string
	Quantity int
}

// MovementResponse movimiento registrado y cantidad resultante del producto.
type MovementResponse struct {
	ID          string
	Timestamp   time.Time
	Type        string
	ProductName string
	Quantity    int
	NewQuantity int
}
