package report

import (
	"github.com/jhoicas/estoque-cli/internal/application/dto"
	"github.com/jhoicas/estoque-cli/internal/domain/entity"
	"github.com/jhoicas/estoque-cli/internal/domain/inventory"
)

// UseCase relatorios de sólo lectura sobre el estado en memoria (no recarga de disco).
// Los umbrales son parámetros de cada invocación y no se persisten.
type UseCase struct {
	store *inventory.Store
}

// NewUseCase construye el caso de uso de relatorios.
func NewUseCase(store *inventory.Store) *UseCase {
	return &UseCase{store: store}
}

// OutOfStock productos con cantidad cero, en orden de inserción.
func (uc *UseCase) OutOfStock() []dto.StockLine {
	return uc.filter(func(p entity.Product) bool { return p.Quantity == 0 })
}

// LowStock productos con cantidad estrictamente menor que threshold.
func (uc *UseCase) LowStock(threshold int) []dto.StockLine {
	return uc.filter(func(p entity.Product) bool { return p.Quantity < threshold })
}

// Overstock productos con cantidad estrictamente mayor que threshold.
func (uc *UseCase) Overstock(threshold int) []dto.StockLine {
	return uc.filter(func(p entity.Product) bool { return p.Quantity > threshold })
}

// History todos los movimientos en el orden en que se registraron.
func (uc *UseCase) History() []dto.MovementLine {
	movements := uc.store.Movements()
	out := make([]dto.MovementLine, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementLine{
			Timestamp:   m.Timestamp,
			Type:        m.Type,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
		})
	}
	return out
}

func (uc *UseCase) filter(keep func(entity.Product) bool) []dto.StockLine {
	out := []dto.StockLine{}
	for _, p := range uc.store.Products() {
		if !keep(p) {
			continue
		}
		out = append(out, dto.StockLine{
			Code:     p.Code,
			Name:     p.Name,
			Quantity: p.Quantity,
			Location: dto.LocationDTO{
				Sector: p.Location.Sector,
				Shelf:  p.Location.Shelf,
				Level:  p.Location.Level,
			},
		})
	}
	return out
}
