package entity

// Snapshot estado completo que se intercambia con la persistencia:
// productos en orden de inserción y movimientos en orden cronológico.
type Snapshot struct {
	Products  []Product
	Movements []InventoryMovement
}
