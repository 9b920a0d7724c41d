package cli

import (
	"context"
	"errors"

	"github.com/jhoicas/estoque-cli/internal/application/dto"
	appinventory "github.com/jhoicas/estoque-cli/internal/application/inventory"
	"github.com/jhoicas/estoque-cli/internal/domain"
	"github.com/jhoicas/estoque-cli/pkg/logger"
)

// InventoryHandler entradas y salidas de estoque.
type InventoryHandler struct {
	uc     *appinventory.UseCase
	prompt *Prompter
	view   *Presenter
	log    *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.UseCase, prompt *Prompter, view *Presenter, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, prompt: prompt, view: view, log: log}
}

// StockIn opción "Registrar Entrada".
func (h *InventoryHandler) StockIn(ctx context.Context) error {
	h.view.Title("Registrar Entrada")
	in, ok, err := h.read("Quantidade recebida: ")
	if err != nil || !ok {
		return err
	}
	resp, err := h.uc.StockIn(ctx, in)
	if err != nil {
		return h.fail(in, err)
	}
	return h.done(resp)
}

// StockOut opción "Registrar Saída".
func (h *InventoryHandler) StockOut(ctx context.Context) error {
	h.view.Title("Registrar Saída")
	in, ok, err := h.read("Quantidade vendida: ")
	if err != nil || !ok {
		return err
	}
	resp, err := h.uc.StockOut(ctx, in)
	if err != nil {
		return h.fail(in, err)
	}
	return h.done(resp)
}

// read pide código y cantidad; ok=false si el código no existe (ya informado).
func (h *InventoryHandler) read(quantityLabel string) (dto.MovementRequest, bool, error) {
	code, err := h.prompt.Line("Código do produto: ")
	if err != nil {
		return dto.MovementRequest{}, false, err
	}
	if !h.uc.Exists(code) {
		h.view.Failure("Produto com código '%s' não encontrado no estoque.", code)
		return dto.MovementRequest{}, false, nil
	}
	qty, err := h.prompt.Int(quantityLabel)
	if err != nil {
		return dto.MovementRequest{}, false, err
	}
	return dto.MovementRequest{Code: code, Quantity: qty}, true, nil
}

func (h *InventoryHandler) done(resp *dto.MovementResponse) error {
	h.log.Info().
		Str("id", resp.ID).
		Str("type", resp.Type).
		Str("product", resp.ProductName).
		Int("quantity", resp.Quantity).
		Int("new_quantity", resp.NewQuantity).
		Msg("movimentação registrada")
	h.view.Info("Movimentação registrada: %s de %d unidade(s) do produto '%s'.\n", resp.Type, resp.Quantity, resp.ProductName)
	h.view.Info("Dados salvos com sucesso!")
	return nil
}

func (h *InventoryHandler) fail(in dto.MovementRequest, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.view.Failure("Produto com código '%s' não encontrado no estoque.", in.Code)
	case errors.Is(err, domain.ErrInsufficientStock):
		h.view.Failure("Erro: Quantidade em estoque insuficiente.")
	case errors.Is(err, domain.ErrQuantityOverflow):
		h.view.Failure("Erro: A quantidade excede o máximo suportado pelo estoque.")
	case errors.Is(err, domain.ErrInvalidInput):
		h.view.Failure("Erro: A quantidade deve ser maior que zero.")
	default:
		return err
	}
	h.log.Warn().Err(err).Str("code", in.Code).Int("quantity", in.Quantity).Msg("movimentação rejeitada")
	return nil
}
