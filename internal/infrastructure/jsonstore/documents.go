package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-cli/internal/domain/entity"
)

const indent = "    "

// productDoc valor de cada entrada del documento de productos (la clave es el código).
type productDoc struct {
	Nome        string      `json:"nome"`
	Categoria   string      `json:"categoria"`
	Quantidade  int         `json:"quantidade"`
	Preco       json.Number `json:"preco"`
	Localizacao locationDoc `json:"localizacao"`
}

type locationDoc struct {
	Setor      string `json:"setor"`
	Prateleira string `json:"prateleira"`
	Nivel      string `json:"nivel"`
}

// movementDoc elemento del documento de movimientos.
type movementDoc struct {
	ID         string `json:"id,omitempty"`
	Data       string `json:"data"`
	Tipo       string `json:"tipo"`
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

func toProductDoc(p entity.Product) productDoc {
	return productDoc{
		Nome:       p.Name,
		Categoria:  p.Category,
		Quantidade: p.Quantity,
		Preco:      json.Number(p.Price.String()),
		Localizacao: locationDoc{
			Setor:      p.Location.Sector,
			Prateleira: p.Location.Shelf,
			Nivel:      p.Location.Level,
		},
	}
}

func (d productDoc) toEntity(code string) (entity.Product, error) {
	price := decimal.Zero
	if d.Preco != "" {
		var err error
		price, err = decimal.NewFromString(d.Preco.String())
		if err != nil {
			return entity.Product{}, fmt.Errorf("preço do produto '%s': %w", code, err)
		}
	}
	return entity.Product{
		Code:     code,
		Name:     d.Nome,
		Category: d.Categoria,
		Quantity: d.Quantidade,
		Price:    price,
		Location: entity.Location{
			Sector: d.Localizacao.Setor,
			Shelf:  d.Localizacao.Prateleira,
			Level:  d.Localizacao.Nivel,
		},
	}, nil
}

// encodeProducts serializa el objeto código -> producto respetando el orden de inserción
// (encoding/json ordenaría las claves de un map).
func encodeProducts(products []entity.Product) ([]byte, error) {
	if len(products) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, p := range products {
		key, err := json.Marshal(p.Code)
		if err != nil {
			return nil, fmt.Errorf("codificar código '%s': %w", p.Code, err)
		}
		val, err := json.MarshalIndent(toProductDoc(p), indent, indent)
		if err != nil {
			return nil, fmt.Errorf("codificar produto '%s': %w", p.Code, err)
		}
		buf.WriteString(indent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(products)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeProducts lee el objeto código -> producto conservando el orden del documento.
func decodeProducts(data []byte) ([]entity.Product, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var products []entity.Product
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		code, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("chave inesperada %v", tok)
		}
		var doc productDoc
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("produto '%s': %w", code, err)
		}
		p, err := doc.toEntity(code)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return products, expectEOF(dec)
}

func encodeMovements(movements []entity.InventoryMovement) ([]byte, error) {
	docs := make([]movementDoc, 0, len(movements))
	for _, m := range movements {
		docs = append(docs, movementDoc{
			ID:         m.ID,
			Data:       m.Timestamp.Format(entity.TimestampLayout),
			Tipo:       m.Type,
			Nome:       m.ProductName,
			Quantidade: m.Quantity,
		})
	}
	return json.MarshalIndent(docs, "", indent)
}

func decodeMovements(data []byte, loc *time.Location) ([]entity.InventoryMovement, error) {
	var docs []movementDoc
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&docs); err != nil {
		return nil, err
	}
	if docs == nil {
		return nil, errors.New("documento nulo")
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	movements := make([]entity.InventoryMovement, 0, len(docs))
	for i, d := range docs {
		ts, err := time.ParseInLocation(entity.TimestampLayout, d.Data, loc)
		if err != nil {
			return nil, fmt.Errorf("movimentação %d: data: %w", i, err)
		}
		if d.Tipo != entity.MovementTypeIN && d.Tipo != entity.MovementTypeOUT {
			return nil, fmt.Errorf("movimentação %d: tipo desconhecido %q", i, d.Tipo)
		}
		movements = append(movements, entity.InventoryMovement{
			ID:          d.ID,
			Timestamp:   ts,
			Type:        d.Tipo,
			ProductName: d.Nome,
			Quantity:    d.Quantidade,
		})
	}
	return movements, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("esperado %q, encontrado %v", want, tok)
	}
	return nil
}

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("conteúdo após o fim do documento")
	}
	return nil
}
