package repository

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-cli/internal/domain/entity"
)

// SnapshotRepository define el puerto de persistencia del estoque completo (DIP).
// Load nunca falla por documentos ausentes o corruptos: los sustituye por vacíos
// y lo informa en las notificaciones. Save reescribe ambos documentos enteros.
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.Snapshot, []LoadNotice, error)
	Save(ctx context.Context, snap *entity.Snapshot) error
}

// Tipos de notificación de carga.
const (
	NoticeMissing = "missing" // documento inexistente: se crea uno nuevo
	NoticeCorrupt = "corrupt" // documento ilegible: se descarta
)

// Documentos persistidos.
const (
	DocumentProducts  = "products"
	DocumentMovements = "movements"
)

// LoadNotice aviso no fatal producido durante Load.
type LoadNotice struct {
	Document string // DocumentProducts o DocumentMovements
	Path     string
	Kind     string // NoticeMissing o NoticeCorrupt
	Err      error  // causa del NoticeCorrupt
}

func (n LoadNotice) String() string {
	if n.Err != nil {
		return fmt.Sprintf("%s (%s): %s: %v", n.Document, n.Path, n.Kind, n.Err)
	}
	return fmt.Sprintf("%s (%s): %s", n.Document, n.Path, n.Kind)
}
