package pedido

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Candidato son los campos de un pedido contra los que se evalúa una búsqueda.
type Candidato struct {
	ID            string
	NombreCliente string
	Telefono      string
	Notas         string
}

// Coincide aplica la regla de búsqueda de texto libre: subcadena sin distinguir mayúsculas
// ni acentos sobre id, nombre del cliente y notas; si la consulta trae algún dígito, además
// compara solo dígitos y '+' contra el teléfono. Basta con que un campo coincida.
// Una consulta vacía coincide con todo.
func Coincide(consulta string, c Candidato) bool {
	q := Normalizar(strings.TrimSpace(consulta))
	if q == "" {
		return true
	}
	for _, campo := range []string{c.ID, c.NombreCliente, c.Notas} {
		if campo != "" && strings.Contains(Normalizar(campo), q) {
			return true
		}
	}
	if tieneDigito(consulta) && c.Telefono != "" {
		qd := SoloDigitos(consulta)
		if qd != "" && strings.Contains(SoloDigitos(c.Telefono), qd) {
			return true
		}
	}
	return false
}

// Normalizar pasa a minúsculas y elimina marcas diacríticas ("José" -> "jose").
func Normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// SoloDigitos conserva únicamente dígitos y el signo '+'.
func SoloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func tieneDigito(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
