package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-cli/internal/application/dto"
	"github.com/jhoicas/estoque-cli/internal/application/report"
	"github.com/jhoicas/estoque-cli/internal/domain/entity"
	"github.com/jhoicas/estoque-cli/internal/domain/inventory"
)

func product(code string, qty int) entity.Product {
	return entity.Product{
		Code:     code,
		Name:     "Produto " + code,
		Category: "Outros",
		Quantity: qty,
		Price:    decimal.NewFromInt(10),
		Location: entity.Location{Sector: "S-" + code, Shelf: "P1", Level: "N1"},
	}
}

func newStore(t *testing.T) *inventory.Store {
	t.Helper()
	ts := time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)
	return inventory.NewStore(&entity.Snapshot{
		Products: []entity.Product{
			product("e", 0), product("b", 3), product("m", 10), product("o", 50), product("z", 0),
		},
		Movements: []entity.InventoryMovement{
			{Timestamp: ts, Type: entity.MovementTypeIN, ProductName: "Produto o", Quantity: 50},
			{Timestamp: ts.Add(time.Hour), Type: entity.MovementTypeOUT, ProductName: "Produto e", Quantity: 4},
		},
	})
}

func codes(lines []dto.StockLine) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Code)
	}
	return out
}

func TestOutOfStock_OrdemDeInsercao(t *testing.T) {
	uc := report.NewUseCase(newStore(t))
	assert.Equal(t, []string{"e", "z"}, codes(uc.OutOfStock()))
}

func TestLowStock_LimiteEstrito(t *testing.T) {
	uc := report.NewUseCase(newStore(t))

	low := uc.LowStock(10)
	assert.Equal(t, []string{"e", "b", "z"}, codes(low))
	assert.Equal(t, dto.LocationDTO{Sector: "S-b", Shelf: "P1", Level: "N1"}, low[1].Location)
	assert.Empty(t, uc.LowStock(0))
}

func TestOverstock_LimiteEstrito(t *testing.T) {
	uc := report.NewUseCase(newStore(t))

	assert.Equal(t, []string{"o"}, codes(uc.Overstock(10)))
	assert.Empty(t, uc.Overstock(50))
}

func TestHistory_OrdemCronologica(t *testing.T) {
	uc := report.NewUseCase(newStore(t))

	h := uc.History()
	require.Len(t, h, 2)
	assert.Equal(t, entity.MovementTypeIN, h[0].Type)
	assert.Equal(t, "Produto e", h[1].ProductName)
	assert.True(t, h[0].Timestamp.Before(h[1].Timestamp))
}

func TestSecoes_BaixoEExcessoDisjuntos(t *testing.T) {
	uc := report.NewUseCase(newStore(t))

	for _, pair := range [][2]int{{1, 1}, {5, 20}, {10, 10}, {0, 49}} {
		seen := map[string]bool{}
		for _, l := range uc.LowStock(pair[0]) {
			seen[l.Code] = true
		}
		for _, l := range uc.Overstock(pair[1]) {
			assert.False(t, seen[l.Code], "%s em baixo e excesso com limites %v", l.Code, pair)
		}
	}
}

func TestSecoes_EstoqueVazio(t *testing.T) {
	uc := report.NewUseCase(inventory.NewStore(nil))

	assert.Empty(t, uc.OutOfStock())
	assert.Empty(t, uc.LowStock(5))
	assert.Empty(t, uc.Overstock(10))
	assert.Empty(t, uc.History())
	assert.NotNil(t, uc.LowStock(5))
}
