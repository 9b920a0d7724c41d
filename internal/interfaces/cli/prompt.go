package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-cli/internal/domain"
)

// maxLineSize límite de una línea de entrada; más larga es error de lectura.
const maxLineSize = 1 << 20

// Prompter lee respuestas línea a línea. Separa la captura de entrada de la
// validación: devuelve valores crudos o ya convertidos, nunca muta el estoque.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewPrompter construye el lector sobre in; las preguntas se escriben en out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Prompter{sc: sc, out: out}
}

// Line muestra label y devuelve la línea leída sin el salto final.
// Devuelve io.EOF cuando la entrada se agota.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("ler entrada: %w", err)
		}
		return "", io.EOF
	}
	return p.sc.Text(), nil
}

// Int lee un entero. Un valor no numérico es un error fatal (domain.ErrInvalidNumber).
func (p *Prompter) Int(label string) (int, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, domain.ErrInvalidNumber)
	}
	return n, nil
}

// Decimal lee un valor monetario; acepta coma como separador decimal ("49,90").
func (p *Prompter) Decimal(label string) (decimal.Decimal, error) {
	s, err := p.Line(label)
	if err != nil {
		return decimal.Zero, err
	}
	raw := strings.TrimSpace(s)
	if !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, domain.ErrInvalidNumber)
	}
	return d, nil
}
