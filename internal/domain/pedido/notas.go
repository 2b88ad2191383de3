package pedido

import (
	"strings"

	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
)

const (
	etiquetaCliente = "Cliente: "
	etiquetaTel     = "Tel: "
	etiquetaNotas   = "Notas: "
	separadorNotas  = " | "
)

// ComponerNotas arma la representación de una sola línea usada por pedidos antiguos:
// "Cliente: X | Tel: Y | Notas: Z". Los campos vacíos se omiten.
func ComponerNotas(nombre, telefono, notas string) string {
	var partes []string
	if s := strings.TrimSpace(nombre); s != "" {
		partes = append(partes, etiquetaCliente+s)
	}
	if s := strings.TrimSpace(telefono); s != "" {
		partes = append(partes, etiquetaTel+s)
	}
	if s := strings.TrimSpace(notas); s != "" {
		partes = append(partes, etiquetaNotas+s)
	}
	return strings.Join(partes, separadorNotas)
}

// ParsearNotasHeredadas extrae nombre, teléfono y notas libres de un texto con el formato
// de ComponerNotas. Si el texto no tiene etiquetas se devuelve completo como notas.
func ParsearNotasHeredadas(s string) (nombre, telefono, notas string) {
	if !strings.Contains(s, etiquetaCliente) && !strings.Contains(s, etiquetaTel) {
		return "", "", s
	}
	var resto []string
	for _, parte := range strings.Split(s, separadorNotas) {
		p := strings.TrimSpace(parte)
		switch {
		case strings.HasPrefix(p, etiquetaCliente):
			nombre = strings.TrimSpace(strings.TrimPrefix(p, etiquetaCliente))
		case strings.HasPrefix(p, etiquetaTel):
			telefono = strings.TrimSpace(strings.TrimPrefix(p, etiquetaTel))
		case strings.HasPrefix(p, etiquetaNotas):
			resto = append(resto, strings.TrimSpace(strings.TrimPrefix(p, etiquetaNotas)))
		case p != "":
			resto = append(resto, p)
		}
	}
	return nombre, telefono, strings.Join(resto, separadorNotas)
}

// ContactoMostrador devuelve nombre y teléfono del cliente de mostrador, prefiriendo las
// columnas estructuradas y usando las notas heredadas como respaldo.
func ContactoMostrador(p *entity.Pedido) (nombre, telefono string) {
	nombre, telefono = p.ClienteNombre, p.ClienteTelefono
	if nombre != "" && telefono != "" {
		return nombre, telefono
	}
	n, t, _ := ParsearNotasHeredadas(p.Notas)
	if nombre == "" {
		nombre = n
	}
	if telefono == "" {
		telefono = t
	}
	return nombre, telefono
}
