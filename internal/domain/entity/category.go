package entity

import "golang.org/x/text/unicode/norm"

// Categories conjunto fijo de categorías válidas, en el orden en que se ofrecen al usuario.
var Categories = []string{
	"Celulares",
	"Computadores",
	"Periféricos",
	"Consoles",
	"Jogos",
	"Acessórios Gamer",
	"Câmeras",
	"Áudio e Vídeo",
	"Outros",
}

// NormalizeCategory lleva el texto a forma NFC; "Periféricos" compuesto o descompuesto es la misma categoría.
func NormalizeCategory(s string) string {
	return norm.NFC.String(s)
}

// IsValidCategory indica si s pertenece al conjunto fijo (comparación exacta tras NFC).
func IsValidCategory(s string) bool {
	s = NormalizeCategory(s)
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
