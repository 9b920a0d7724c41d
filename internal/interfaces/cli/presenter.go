package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-cli/internal/application/dto"
	"github.com/jhoicas/estoque-cli/internal/domain/entity"
)

// Presenter escribe la salida de texto del menú. Los colores sólo decoran
// encabezados y errores; con colored=false la salida es texto plano.
type Presenter struct {
	out    io.Writer
	red    *color.Color
	yellow *color.Color
	green  *color.Color
	bold   *color.Color
}

// NewPresenter construye el presentador sobre out.
func NewPresenter(out io.Writer, colored bool) *Presenter {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if !colored {
			c.DisableColor()
		}
		return c
	}
	return &Presenter{
		out:    out,
		red:    mk(color.FgRed),
		yellow: mk(color.FgYellow),
		green:  mk(color.FgGreen),
		bold:   mk(color.Bold),
	}
}

// MainMenu opciones del menú principal.
func (p *Presenter) MainMenu() {
	p.bold.Fprintln(p.out, "==== Sistema de Gerenciamento de Estoque ====")
	fmt.Fprintln(p.out, "1. Cadastrar Produto")
	fmt.Fprintln(p.out, "2. Registrar Entrada")
	fmt.Fprintln(p.out, "3. Registrar Saída")
	fmt.Fprintln(p.out, "4. Gerar Relatórios")
	fmt.Fprintln(p.out, "5. Pesquisar Produto")
	fmt.Fprintln(p.out, "6. Sair")
}

// Title encabezado de una operación.
func (p *Presenter) Title(title string) {
	fmt.Fprintf(p.out, "== %s ==\n", title)
}

// Info mensaje informativo.
func (p *Presenter) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Failure error recuperable: se informa y se vuelve al menú.
func (p *Presenter) Failure(format string, args ...any) {
	p.red.Fprintf(p.out, format+"\n", args...)
	fmt.Fprintln(p.out)
}

// Warning aviso no fatal (p. ej. documento corrupto al cargar).
func (p *Presenter) Warning(format string, args ...any) {
	p.yellow.Fprintf(p.out, format+"\n", args...)
}

// Product detalle completo de un producto encontrado.
func (p *Presenter) Product(pr dto.ProductResponse) {
	fmt.Fprintln(p.out)
	p.bold.Fprintln(p.out, "=== Detalhes do Produto ===")
	fmt.Fprintf(p.out, "Código: %s\n", pr.Code)
	fmt.Fprintf(p.out, "Descrição: %s\n", pr.Name)
	fmt.Fprintf(p.out, "Categoria: %s\n", pr.Category)
	fmt.Fprintf(p.out, "Quantidade em Estoque: %d\n", pr.Quantity)
	fmt.Fprintf(p.out, "Valor Unitário: %s\n", money(pr.Price))
	fmt.Fprintf(p.out, "Valor Total em Estoque: %s\n", money(pr.StockValue))
	fmt.Fprintln(p.out, "Localização:")
	fmt.Fprintln(p.out, formatLocation(pr.Location))
	fmt.Fprintln(p.out)
}

// ReportHeader abre el relatorio.
func (p *Presenter) ReportHeader() {
	fmt.Fprintln(p.out)
	p.bold.Fprintln(p.out, "=== RELATÓRIO DE ESTOQUE ===")
	fmt.Fprintln(p.out)
}

// OutOfStock sección de productos en falta.
func (p *Presenter) OutOfStock(lines []dto.StockLine) {
	p.red.Fprintln(p.out, "-- PRODUTOS EM FALTA --")
	if len(lines) == 0 {
		fmt.Fprintln(p.out, "Nenhum produto em falta.")
		fmt.Fprintln(p.out)
		return
	}
	for _, l := range lines {
		fmt.Fprintf(p.out, "- %s | Código: %s\n", l.Name, l.Code)
	}
}

// LowStockHeader encabezado de la sección de estoque bajo (antes de pedir el límite).
func (p *Presenter) LowStockHeader() {
	p.yellow.Fprintln(p.out, "-- PRODUTOS COM ESTOQUE BAIXO --")
}

// OverstockHeader encabezado de la sección de exceso (antes de pedir el límite).
func (p *Presenter) OverstockHeader() {
	p.green.Fprintln(p.out, "-- PRODUTOS COM EXCESSO DE ESTOQUE --")
}

// StockLines filas con cantidad y localización; empty se muestra si no hay filas.
func (p *Presenter) StockLines(lines []dto.StockLine, empty string) {
	if len(lines) == 0 {
		fmt.Fprintln(p.out, empty)
		return
	}
	for _, l := range lines {
		fmt.Fprintf(p.out, "- %s | Código: %s | Quantidade: %d\n", l.Name, l.Code, l.Quantity)
		fmt.Fprintf(p.out, "  Localização:\n%s\n", formatLocation(l.Location))
	}
}

// History sección del histórico de movimientos.
func (p *Presenter) History(lines []dto.MovementLine) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "-- HISTÓRICO DE MOVIMENTAÇÕES --")
	if len(lines) == 0 {
		fmt.Fprintln(p.out, "Nenhuma movimentação registrada.")
	}
	for _, m := range lines {
		fmt.Fprintf(p.out, "%s | %s | %s | Quantidade: %d\n",
			m.Timestamp.Format(entity.TimestampLayout), m.Type, m.ProductName, m.Quantity)
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Relatório concluído.")
	fmt.Fprintln(p.out)
}

func formatLocation(l dto.LocationDTO) string {
	return fmt.Sprintf("    Setor: %s\n    Prateleira: %s\n    Nível: %s", l.Sector, l.Shelf, l.Level)
}

func money(d decimal.Decimal) string {
	return "R$" + d.StringFixed(2)
}
