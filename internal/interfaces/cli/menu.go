// Package cli es el adaptador de consola: un menú de texto que captura la
// entrada, delega en los casos de uso y traduce los errores de dominio a
// mensajes. Sólo los errores fatales salen de Menu.Run.
package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	appinventory "github.com/jhoicas/estoque-cli/internal/application/inventory"
	"github.com/jhoicas/estoque-cli/internal/application/report"
	"github.com/jhoicas/estoque-cli/pkg/logger"
)

// MenuDeps dependencias del menú.
type MenuDeps struct {
	Inventory *appinventory.UseCase
	Reports   *report.UseCase
	In        io.Reader
	Out       io.Writer
	Color     bool
	Log       *logger.Logger
}

// Menu máquina de un solo estado ("esperando opción") con seis transiciones.
type Menu struct {
	products  *ProductHandler
	inventory *InventoryHandler
	reports   *ReportHandler
	inv       *appinventory.UseCase
	prompt    *Prompter
	view      *Presenter
	log       *logger.Logger
}

// NewMenu construye el menú y sus handlers.
func NewMenu(deps MenuDeps) *Menu {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	prompt := NewPrompter(deps.In, deps.Out)
	view := NewPresenter(deps.Out, deps.Color)
	return &Menu{
		products:  NewProductHandler(deps.Inventory, prompt, view, log),
		inventory: NewInventoryHandler(deps.Inventory, prompt, view, log),
		reports:   NewReportHandler(deps.Reports, prompt, view),
		inv:       deps.Inventory,
		prompt:    prompt,
		view:      view,
		log:       log,
	}
}

// Run atiende opciones hasta "6. Sair" o el fin de la entrada; ambos guardan
// una última vez. Devuelve sólo errores fatales (número inválido, falla al guardar).
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.view.MainMenu()
		choice, err := m.prompt.Line("Escolha uma opção: ")
		if err != nil {
			return m.finish(ctx, err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.products.Register(ctx)
		case "2":
			err = m.inventory.StockIn(ctx)
		case "3":
			err = m.inventory.StockOut(ctx)
		case "4":
			err = m.reports.Generate()
		case "5":
			err = m.products.Search()
		case "6":
			return m.exit(ctx)
		default:
			m.log.Debug().Str("choice", choice).Msg("opção inválida")
			m.view.Failure("Opção inválida. Tente novamente.")
		}
		if err != nil {
			return m.finish(ctx, err)
		}
	}
}

// finish trata el fin de la entrada como salida normal; cualquier otro error es fatal.
func (m *Menu) finish(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		m.log.Info().Msg("entrada encerrada")
		return m.exit(ctx)
	}
	return err
}

func (m *Menu) exit(ctx context.Context) error {
	if err := m.inv.Save(ctx); err != nil {
		return err
	}
	m.view.Info("Dados salvos com sucesso!")
	m.view.Info("Saindo do sistema. Até mais!")
	return nil
}
