package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-cli/internal/application/dto"
	appinventory "github.com/jhoicas/estoque-cli/internal/application/inventory"
	"github.com/jhoicas/estoque-cli/internal/domain"
	"github.com/jhoicas/estoque-cli/internal/domain/entity"
	"github.com/jhoicas/estoque-cli/internal/domain/inventory"
	"github.com/jhoicas/estoque-cli/internal/domain/repository"
	"github.com/jhoicas/estoque-cli/internal/infrastructure/jsonstore"
)

// fakeRepo guarda cada snapshot recibido; err simula una falha de escrita.
type fakeRepo struct {
	saves []*entity.Snapshot
	err   error
}

func (r *fakeRepo) Load(context.Context) (*entity.Snapshot, []repository.LoadNotice, error) {
	return &entity.Snapshot{}, nil, nil
}

func (r *fakeRepo) Save(_ context.Context, snap *entity.Snapshot) error {
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, snap)
	return nil
}

var fixedNow = time.Date(2024, 3, 15, 9, 45, 30, 123456789, time.Local)

func newUseCase(repo repository.SnapshotRepository) *appinventory.UseCase {
	n := 0
	return appinventory.NewUseCase(inventory.NewStore(nil), repo,
		appinventory.WithClock(func() time.Time { return fixedNow }),
		appinventory.WithIDGenerator(func() string {
			n++
			return "mov-" + string(rune('0'+n))
		}),
	)
}

func mouseRequest() dto.RegisterProductRequest {
	return dto.RegisterProductRequest{
		Code:     "A1",
		Name:     "Mouse",
		Category: "Periféricos",
		Quantity: 10,
		Price:    decimal.RequireFromString("49.90"),
		Location: dto.LocationDTO{Sector: "S1", Shelf: "P1", Level: "N1"},
	}
}

func TestRegister_PersisteESeEncontraNaPesquisa(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	resp, err := uc.Register(context.Background(), mouseRequest())
	require.NoError(t, err)
	assert.Equal(t, "A1", resp.Code)
	assert.True(t, decimal.RequireFromString("499").Equal(resp.StockValue))
	require.Len(t, repo.saves, 1)
	require.Len(t, repo.saves[0].Products, 1)

	found := uc.Search("mouse")
	require.Len(t, found, 1)
	assert.Equal(t, "A1", found[0].Code)
}

func TestRegister_RejeicoesNaoPersistem(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)
	_, err := uc.Register(context.Background(), mouseRequest())
	require.NoError(t, err)

	dup := mouseRequest()
	dup.Name = "Outro"
	_, err = uc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	bad := mouseRequest()
	bad.Code = "B2"
	bad.Category = "Livros"
	_, err = uc.Register(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	assert.Len(t, repo.saves, 1, "só o cadastro válido salva")
	assert.Equal(t, "Mouse", uc.Get("A1").Name)
	assert.False(t, uc.Exists("B2"))
}

func TestStockInStockOut_Cenario(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)
	ctx := context.Background()
	_, err := uc.Register(ctx, mouseRequest())
	require.NoError(t, err)

	in, err := uc.StockIn(ctx, dto.MovementRequest{Code: "A1", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 15, in.NewQuantity)
	assert.Equal(t, entity.MovementTypeIN, in.Type)
	assert.Equal(t, "Mouse", in.ProductName)
	assert.Equal(t, "mov-1", in.ID)
	assert.Equal(t, fixedNow.Truncate(time.Second), in.Timestamp)

	_, err = uc.StockOut(ctx, dto.MovementRequest{Code: "A1", Quantity: 20})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 15, uc.Get("A1").Quantity)

	out, err := uc.StockOut(ctx, dto.MovementRequest{Code: "A1", Quantity: 15})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NewQuantity)
	assert.Equal(t, entity.MovementTypeOUT, out.Type)

	require.Len(t, repo.saves, 3)
	last := repo.saves[2]
	require.Len(t, last.Movements, 2)
	assert.Equal(t, 5, last.Movements[0].Quantity)
	assert.Equal(t, 15, last.Movements[1].Quantity)
}

func TestStockIn_CodigoInexistente(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	_, err := uc.StockIn(context.Background(), dto.MovementRequest{Code: "X", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.StockOut(context.Background(), dto.MovementRequest{Code: "X", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.saves)
}

func TestSave_FalhaDePersistenciaPropaga(t *testing.T) {
	boom := errors.New("disco cheio")
	uc := newUseCase(&fakeRepo{err: boom})

	_, err := uc.Register(context.Background(), mouseRequest())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "salvar dados")
}

func TestSearch_SemResultadoEListaVazia(t *testing.T) {
	uc := newUseCase(&fakeRepo{})
	_, err := uc.Register(context.Background(), mouseRequest())
	require.NoError(t, err)

	assert.NotNil(t, uc.Search("teclado"))
	assert.Empty(t, uc.Search("teclado"))
	assert.Empty(t, uc.Search(""))
}

// Persistência real em memória: o que foi salvo volta idêntico.
func TestRegister_RoundTripComGateway(t *testing.T) {
	fsys := afero.NewMemMapFs()
	gw := jsonstore.NewGateway(fsys, "estoque.json", "movimentacoes.json")
	uc := newUseCase(gw)
	ctx := context.Background()

	_, err := uc.Register(ctx, mouseRequest())
	require.NoError(t, err)
	_, err = uc.StockIn(ctx, dto.MovementRequest{Code: "A1", Quantity: 5})
	require.NoError(t, err)

	snap, notices, err := gw.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, notices)
	reloaded := appinventory.NewUseCase(inventory.NewStore(snap), gw)

	got := reloaded.Get("A1")
	require.NotNil(t, got)
	assert.Equal(t, "Mouse", got.Name)
	assert.Equal(t, "Periféricos", got.Category)
	assert.Equal(t, 15, got.Quantity)
	assert.True(t, decimal.RequireFromString("49.90").Equal(got.Price))
	assert.Equal(t, dto.LocationDTO{Sector: "S1", Shelf: "P1", Level: "N1"}, got.Location)
	require.Len(t, snap.Movements, 1)
	assert.True(t, fixedNow.Truncate(time.Second).Equal(snap.Movements[0].Timestamp))
}
