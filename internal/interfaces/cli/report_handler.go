package cli

import "github.com/jhoicas/estoque-cli/internal/application/report"

// ReportHandler opción "Gerar Relatórios". Los límites se piden entre secciones,
// igual que en pantalla; todas las secciones leen el mismo estado en memoria.
type ReportHandler struct {
	uc     *report.UseCase
	prompt *Prompter
	view   *Presenter
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, prompt *Prompter, view *Presenter) *ReportHandler {
	return &ReportHandler{uc: uc, prompt: prompt, view: view}
}

// Generate imprime las cuatro secciones.
func (h *ReportHandler) Generate() error {
	h.view.ReportHeader()
	h.view.OutOfStock(h.uc.OutOfStock())

	h.view.LowStockHeader()
	low, err := h.prompt.Int("Informe o limite para estoque baixo: ")
	if err != nil {
		return err
	}
	h.view.StockLines(h.uc.LowStock(low), "Nenhum produto com estoque baixo.")

	h.view.OverstockHeader()
	over, err := h.prompt.Int("Informe o limite para excesso de estoque: ")
	if err != nil {
		return err
	}
	h.view.StockLines(h.uc.Overstock(over), "Nenhum produto com excesso de estoque.")

	h.view.History(h.uc.History())
	return nil
}
