package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-cli/internal/application/dto"
	"github.com/jhoicas/estoque-cli/internal/domain/entity"
)

// StockIn registra una entrada: suma la cantidad, anota el movimiento y persiste.
// Errores recuperables: domain.ErrNotFound, domain.ErrInvalidInput.
func (uc *UseCase) StockIn(ctx context.Context, in dto.MovementRequest) (*dto.MovementResponse, error) {
	mov, err := uc.store.Increase(in.Code, in.Quantity, uc.newMovement())
	if err != nil {
		return nil, err
	}
	return uc.afterMovement(ctx, in.Code, mov)
}

// StockOut registra una salida. Nunca deja el estoque negativo.
// Errores recuperables: domain.ErrNotFound, domain.ErrInvalidInput, domain.ErrInsufficientStock.
func (uc *UseCase) StockOut(ctx context.Context, in dto.MovementRequest) (*dto.MovementResponse, error) {
	mov, err := uc.store.Decrease(in.Code, in.Quantity, uc.newMovement())
	if err != nil {
		return nil, err
	}
	return uc.afterMovement(ctx, in.Code, mov)
}

// newMovement fija ID y fecha (truncada a segundos, la precisión persistida).
func (uc *UseCase) newMovement() entity.InventoryMovement {
	return entity.InventoryMovement{
		ID:        uc.newID(),
		Timestamp: uc.now().Truncate(time.Second),
	}
}

func (uc *UseCase) afterMovement(ctx context.Context, code string, mov entity.InventoryMovement) (*dto.MovementResponse, error) {
	if err := uc.Save(ctx); err != nil {
		return nil, err
	}
	p, _ := uc.store.Get(code)
	return &dto.MovementResponse{
		ID:          mov.ID,
		Timestamp:   mov.Timestamp,
		Type:        mov.Type,
		ProductName: mov.ProductName,
		Quantity:    mov.Quantity,
		NewQuantity: p.Quantity,
	}, nil
}
