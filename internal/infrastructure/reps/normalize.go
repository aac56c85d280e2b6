// Package reps implementa los parsers del export oficial del Registro
// Especial de Prestadores de Servicios de Salud (REPS). El registro publica
// los datos como CSV separado por ';' en ISO-8859-1, o como XML; ambos
// formatos se decodifican aquí a las filas neutrales de application/reps.
package reps

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone.
// "Bogotá D.C." y "BOGOTA D.C." deben colapsar al mismo valor de matching.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un nombre del registro para matching: sin tildes, en
// minúsculas y con espacios colapsados. No se usa para mostrar, solo comparar.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s // entrada no normalizable: comparar tal cual
	}
	folded = strings.ToLower(strings.TrimSpace(folded))

	var b strings.Builder
	b.Grow(len(folded))
	prevSpace := false
	for _, r := range folded {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
