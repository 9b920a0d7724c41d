package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("produto não encontrado no estoque")
	ErrDuplicate         = errors.New("produto já cadastrado")
	ErrInvalidCategory   = errors.New("categoria inválida")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidNumber     = errors.New("valor numérico inválido")
	ErrInsufficientStock = errors.New("quantidade em estoque insuficiente")

	// ErrQuantityOverflow también es ErrInvalidInput.
	ErrQuantityOverflow = fmt.Errorf("quantidade excede o máximo suportado: %w", ErrInvalidInput)
)
