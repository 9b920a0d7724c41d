// Package inventory contiene el agregado en memoria del estoque: el mapa
// código -> producto (Inventory Store) y el historial de movimientos
// (Movement Log). Toda validación ocurre antes de mutar; una operación
// rechazada no deja rastro.
package inventory

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/estoque-cli/internal/domain"
	"github.com/jhoicas/estoque-cli/internal/domain/entity"
)

// Store dueño de ambas colecciones. No es seguro para uso concurrente;
// el programa es de un solo hilo.
type Store struct {
	products  map[string]*entity.Product
	order     []string // códigos en orden de inserción
	movements []entity.InventoryMovement
}

// NewStore construye el agregado a partir de un snapshot (nil = vacío).
// Códigos repetidos en el snapshot conservan la última versión en la primera posición.
func NewStore(snap *entity.Snapshot) *Store {
	s := &Store{products: make(map[string]*entity.Product)}
	if snap == nil {
		return s
	}
	for i := range snap.Products {
		p := snap.Products[i]
		if _, ok := s.products[p.Code]; !ok {
			s.order = append(s.order, p.Code)
		}
		s.products[p.Code] = &p
	}
	s.movements = append(s.movements, snap.Movements...)
	return s
}

// Snapshot copia el estado actual (productos en orden de inserción).
func (s *Store) Snapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Products:  s.Products(),
		Movements: s.Movements(),
	}
}

// Len número de productos registrados.
func (s *Store) Len() int { return len(s.order) }

// Exists indica si el código ya está registrado.
func (s *Store) Exists(code string) bool {
	_, ok := s.products[code]
	return ok
}

// Get devuelve una copia del producto.
func (s *Store) Get(code string) (entity.Product, bool) {
	p, ok := s.products[code]
	if !ok {
		return entity.Product{}, false
	}
	return *p, true
}

// Products copia de los productos en orden de inserción.
func (s *Store) Products() []entity.Product {
	out := make([]entity.Product, 0, len(s.order))
	for _, code := range s.order {
		out = append(out, *s.products[code])
	}
	return out
}

// Movements copia del historial en el orden en que se registró.
func (s *Store) Movements() []entity.InventoryMovement {
	out := make([]entity.InventoryMovement, len(s.movements))
	copy(out, s.movements)
	return out
}

// Add registra un producto nuevo.
func (s *Store) Add(p entity.Product) error {
	if strings.TrimSpace(p.Code) == "" || strings.TrimSpace(p.Name) == "" {
		return domain.ErrInvalidInput
	}
	if s.Exists(p.Code) {
		return fmt.Errorf("código '%s': %w", p.Code, domain.ErrDuplicate)
	}
	if !entity.IsValidCategory(p.Category) {
		return fmt.Errorf("%q: %w", p.Category, domain.ErrInvalidCategory)
	}
	if p.Quantity < 0 || p.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	p.Category = entity.NormalizeCategory(p.Category)
	s.products[p.Code] = &p
	s.order = append(s.order, p.Code)
	return nil
}

// Increase suma quantity al producto y anota una Entrada en el historial.
// mov aporta ID y Timestamp; Type, ProductName y Quantity se completan aquí.
func (s *Store) Increase(code string, quantity int, mov entity.InventoryMovement) (entity.InventoryMovement, error) {
	p, err := s.movable(code, quantity)
	if err != nil {
		return entity.InventoryMovement{}, err
	}
	if quantity > math.MaxInt-p.Quantity {
		return entity.InventoryMovement{}, domain.ErrQuantityOverflow
	}
	p.Quantity += quantity
	return s.appendMovement(p, entity.MovementTypeIN, quantity, mov), nil
}

// Decrease resta quantity del producto y anota una Saída. Nunca deja stock negativo.
func (s *Store) Decrease(code string, quantity int, mov entity.InventoryMovement) (entity.InventoryMovement, error) {
	p, err := s.movable(code, quantity)
	if err != nil {
		return entity.InventoryMovement{}, err
	}
	if quantity > p.Quantity {
		return entity.InventoryMovement{}, domain.ErrInsufficientStock
	}
	p.Quantity -= quantity
	return s.appendMovement(p, entity.MovementTypeOUT, quantity, mov), nil
}

func (s *Store) movable(code string, quantity int) (*entity.Product, error) {
	p, ok := s.products[code]
	if !ok {
		return nil, fmt.Errorf("código '%s': %w", code, domain.ErrNotFound)
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return p, nil
}

func (s *Store) appendMovement(p *entity.Product, typ string, quantity int, mov entity.InventoryMovement) entity.InventoryMovement {
	mov.Type = typ
	mov.ProductName = p.Name
	mov.Quantity = quantity
	s.movements = append(s.movements, mov)
	return mov
}

// Search devuelve, en orden de inserción, los productos cuyo código o nombre
// contienen term, sin distinguir mayúsculas. Un término vacío no encuentra nada.
func (s *Store) Search(term string) []entity.Product {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var out []entity.Product
	for _, code := range s.order {
		p := s.products[code]
		if strings.Contains(fold.String(code), needle) || strings.Contains(fold.String(p.Name), needle) {
			out = append(out, *p)
		}
	}
	return out
}
