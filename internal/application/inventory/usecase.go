package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-cli/internal/application/dto"
	"github.com/jhoicas/estoque-cli/internal/domain/entity"
	"github.com/jhoicas/estoque-cli/internal/domain/inventory"
	"github.com/jhoicas/estoque-cli/internal/domain/repository"
)

// UseCase operaciones sobre el estoque. Cada mutación exitosa reescribe el
// snapshot completo; un error de persistencia se devuelve envuelto y es fatal.
type UseCase struct {
	store *inventory.Store
	repo  repository.SnapshotRepository
	now   Clock
	newID IDGenerator
}

// NewUseCase construye el caso de uso sobre un Store ya cargado.
func NewUseCase(store *inventory.Store, repo repository.SnapshotRepository, opts ...Option) *UseCase {
	uc := &UseCase{
		store: store,
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Register cadastra un producto nuevo y persiste.
// Errores recuperables: domain.ErrDuplicate, domain.ErrInvalidCategory, domain.ErrInvalidInput.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterProductRequest) (*dto.ProductResponse, error) {
	product := entity.Product{
		Code:     in.Code,
		Name:     strings.TrimSpace(in.Name),
		Category: in.Category,
		Quantity: in.Quantity,
		Price:    in.Price,
		Location: entity.Location{
			Sector: in.Location.Sector,
			Shelf:  in.Location.Shelf,
			Level:  in.Location.Level,
		},
	}
	if err := uc.store.Add(product); err != nil {
		return nil, err
	}
	if err := uc.Save(ctx); err != nil {
		return nil, err
	}
	stored, _ := uc.store.Get(in.Code)
	return toProductResponse(stored), nil
}

// Exists indica si el código ya está cadastrado.
func (uc *UseCase) Exists(code string) bool {
	return uc.store.Exists(code)
}

// Get obtiene un producto por código; nil si no existe.
func (uc *UseCase) Get(code string) *dto.ProductResponse {
	p, ok := uc.store.Get(code)
	if !ok {
		return nil
	}
	return toProductResponse(p)
}

// Search busca por código o nombre (subcadena, sin distinguir mayúsculas).
// Sin coincidencias devuelve una lista vacía, no un error.
func (uc *UseCase) Search(term string) []dto.ProductResponse {
	found := uc.store.Search(term)
	out := make([]dto.ProductResponse, 0, len(found))
	for _, p := range found {
		out = append(out, *toProductResponse(p))
	}
	return out
}

// Save reescribe ambos documentos con el estado actual.
func (uc *UseCase) Save(ctx context.Context) error {
	if err := uc.repo.Save(ctx, uc.store.Snapshot()); err != nil {
		return fmt.Errorf("salvar dados: %w", err)
	}
	return nil
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Code:       p.Code,
		Name:       p.Name,
		Category:   p.Category,
		Quantity:   p.Quantity,
		Price:      p.Price,
		StockValue: inventory.StockValue(p.Price, p.Quantity),
		Location: dto.LocationDTO{
			Sector: p.Location.Sector,
			Shelf:  p.Location.Shelf,
			Level:  p.Location.Level,
		},
	}
}
