package entity

import "time"

// Tipos de movimiento de inventario; son también las etiquetas persistidas.
const (
	MovementTypeIN  = "Entrada"
	MovementTypeOUT = "Saída"
)

// TimestampLayout formato de fecha de los movimientos (precisión de segundos).
const TimestampLayout = "2006-01-02 15:04:05"

// InventoryMovement registro inmutable de una entrada o salida.
// ProductName es una copia del nombre al momento del movimiento, no una referencia.
type InventoryMovement struct {
	ID          string
	Timestamp   time.Time
	Type        string
	ProductName string
	Quantity    int // siempre positivo; el signo lo da Type
}
