package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/estoque-cli/internal/application/dto"
	appinventory "github.com/jhoicas/estoque-cli/internal/application/inventory"
	"github.com/jhoicas/estoque-cli/internal/domain"
	"github.com/jhoicas/estoque-cli/internal/domain/entity"
	"github.com/jhoicas/estoque-cli/pkg/logger"
)

// ProductHandler cadastro y búsqueda de productos.
type ProductHandler struct {
	uc     *appinventory.UseCase
	prompt *Prompter
	view   *Presenter
	log    *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *appinventory.UseCase, prompt *Prompter, view *Presenter, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, prompt: prompt, view: view, log: log}
}

// Register pide los datos del producto. Código duplicado y categoría inválida
// se rechazan en cuanto se leen, sin pedir el resto.
func (h *ProductHandler) Register(ctx context.Context) error {
	h.view.Title("Cadastro de Produto")
	code, err := h.prompt.Line("Código do produto: ")
	if err != nil {
		return err
	}
	if h.uc.Exists(code) {
		h.view.Failure("O produto com o código '%s' já está cadastrado. Tente novamente.", code)
		return nil
	}

	name, err := h.prompt.Line("Nome do produto: ")
	if err != nil {
		return err
	}
	categories := strings.Join(entity.Categories, ", ")
	category, err := h.prompt.Line("Categoria do produto (Escolha entre " + categories + "): ")
	if err != nil {
		return err
	}
	if !entity.IsValidCategory(category) {
		h.view.Failure("Categoria inválida. Escolha entre: %s", categories)
		return nil
	}

	in := dto.RegisterProductRequest{Code: code, Name: name, Category: category}
	if in.Quantity, err = h.prompt.Int("Quantidade em estoque: "); err != nil {
		return err
	}
	if in.Price, err = h.prompt.Decimal("Preço do produto: "); err != nil {
		return err
	}
	if in.Location.Sector, err = h.prompt.Line("Setor no depósito: "); err != nil {
		return err
	}
	if in.Location.Shelf, err = h.prompt.Line("Prateleira no depósito: "); err != nil {
		return err
	}
	if in.Location.Level, err = h.prompt.Line("Nível na prateleira: "); err != nil {
		return err
	}

	resp, err := h.uc.Register(ctx, in)
	if err != nil {
		return h.fail(err)
	}
	h.log.Info().Str("code", resp.Code).Str("category", resp.Category).Int("quantity", resp.Quantity).Msg("produto cadastrado")
	h.view.Info("Produto '%s' cadastrado com sucesso!\n", resp.Name)
	h.view.Info("Dados salvos com sucesso!")
	return nil
}

// Search busca por código o nombre y muestra el detalle de cada resultado.
func (h *ProductHandler) Search() error {
	h.view.Title("Pesquisa de Produtos")
	term, err := h.prompt.Line("Digite o código ou o nome do produto: ")
	if err != nil {
		return err
	}
	found := h.uc.Search(term)
	h.log.Debug().Str("term", term).Int("results", len(found)).Msg("pesquisa")
	if len(found) == 0 {
		h.view.Failure("Nenhum produto encontrado com o termo informado.")
		return nil
	}
	for _, p := range found {
		h.view.Product(p)
	}
	return nil
}

// fail traduce errores de dominio a mensajes; los demás se devuelven como fatales.
func (h *ProductHandler) fail(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		h.view.Failure("Produto já cadastrado. Tente novamente.")
	case errors.Is(err, domain.ErrInvalidCategory):
		h.view.Failure("Categoria inválida. Escolha entre: %s", strings.Join(entity.Categories, ", "))
	case errors.Is(err, domain.ErrInvalidInput):
		h.view.Failure("Dados inválidos: nome obrigatório, quantidade e preço não podem ser negativos.")
	default:
		return err
	}
	h.log.Warn().Err(err).Msg("cadastro rejeitado")
	return nil
}
