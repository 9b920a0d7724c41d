// Package jsonstore implementa la persistencia del estoque en dos documentos
// JSON (productos y movimientos) reescritos completos en cada guardado.
package jsonstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/jhoicas/estoque-cli/internal/domain/entity"
	"github.com/jhoicas/estoque-cli/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*Gateway)(nil)

// Gateway adaptador de persistencia sobre un afero.Fs (disco en producción, memoria en tests).
type Gateway struct {
	fs            afero.Fs
	productsPath  string
	movementsPath string
	loc           *time.Location
}

// NewGateway construye el adaptador para las rutas de ambos documentos.
func NewGateway(fsys afero.Fs, productsPath, movementsPath string) *Gateway {
	return &Gateway{
		fs:            fsys,
		productsPath:  productsPath,
		movementsPath: movementsPath,
		loc:           time.Local,
	}
}

// Load lee ambos documentos. Ausente, vacío o corrupto => colección vacía;
// sólo los errores de lectura (permisos, E/S) son fatales.
func (g *Gateway) Load(ctx context.Context) (*entity.Snapshot, []repository.LoadNotice, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	snap := &entity.Snapshot{}
	var notices []repository.LoadNotice

	data, notice, err := g.read(repository.DocumentProducts, g.productsPath)
	if err != nil {
		return nil, nil, err
	}
	if data != nil {
		products, err := decodeProducts(data)
		if err != nil {
			notice = &repository.LoadNotice{Document: repository.DocumentProducts, Path: g.productsPath, Kind: repository.NoticeCorrupt, Err: err}
		} else {
			snap.Products = products
		}
	}
	if notice != nil {
		notices = append(notices, *notice)
	}

	data, notice, err = g.read(repository.DocumentMovements, g.movementsPath)
	if err != nil {
		return nil, nil, err
	}
	if data != nil {
		movements, err := decodeMovements(data, g.loc)
		if err != nil {
			notice = &repository.LoadNotice{Document: repository.DocumentMovements, Path: g.movementsPath, Kind: repository.NoticeCorrupt, Err: err}
		} else {
			snap.Movements = movements
		}
	}
	if notice != nil {
		notices = append(notices, *notice)
	}

	return snap, notices, nil
}

// read devuelve el contenido del documento, o nil si no existe o está en blanco.
func (g *Gateway) read(doc, path string) ([]byte, *repository.LoadNotice, error) {
	data, err := afero.ReadFile(g.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &repository.LoadNotice{Document: doc, Path: path, Kind: repository.NoticeMissing}, nil
		}
		return nil, nil, fmt.Errorf("ler %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, nil
	}
	return data, nil, nil
}

// Save reescribe productos y luego movimientos. Un fallo en el segundo no deshace el primero.
func (g *Gateway) Save(ctx context.Context, snap *entity.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snap == nil {
		snap = &entity.Snapshot{}
	}
	products, err := encodeProducts(snap.Products)
	if err != nil {
		return err
	}
	movements, err := encodeMovements(snap.Movements)
	if err != nil {
		return fmt.Errorf("codificar movimentações: %w", err)
	}
	if err := g.write(g.productsPath, products); err != nil {
		return err
	}
	return g.write(g.movementsPath, movements)
}

func (g *Gateway) write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := g.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("criar diretório %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(g.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("gravar %s: %w", path, err)
	}
	return nil
}
