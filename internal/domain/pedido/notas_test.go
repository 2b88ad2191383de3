package pedido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/pedido"
)

func TestComponerNotas(t *testing.T) {
	assert.Equal(t, "Cliente: Ana | Tel: 555 | Notas: sin almidón",
		pedido.ComponerNotas("Ana", "555", "sin almidón"))
	assert.Equal(t, "Cliente: Ana | Notas: urgente", pedido.ComponerNotas("Ana", "", "urgente"))
	assert.Equal(t, "", pedido.ComponerNotas(" ", "", ""))
}

func TestParsearNotasHeredadas(t *testing.T) {
	nombre, tel, notas := pedido.ParsearNotasHeredadas("Cliente: Ana López | Tel: 55 1234 | Notas: doblar")
	assert.Equal(t, "Ana López", nombre)
	assert.Equal(t, "55 1234", tel)
	assert.Equal(t, "doblar", notas)

	nombre, tel, notas = pedido.ParsearNotasHeredadas("solo un comentario")
	assert.Empty(t, nombre)
	assert.Empty(t, tel)
	assert.Equal(t, "solo un comentario", notas)
}

func TestComponerYParsear_IdaYVuelta(t *testing.T) {
	s := pedido.ComponerNotas("Luis", "+52 55", "entregar tarde")
	nombre, tel, notas := pedido.ParsearNotasHeredadas(s)
	assert.Equal(t, "Luis", nombre)
	assert.Equal(t, "+52 55", tel)
	assert.Equal(t, "entregar tarde", notas)
}

func TestContactoMostrador(t *testing.T) {
	// Columnas estructuradas tienen prioridad.
	p := &entity.Pedido{ClienteNombre: "Eva", ClienteTelefono: "111", Notas: "Cliente: Otra | Tel: 222"}
	nombre, tel := pedido.ContactoMostrador(p)
	assert.Equal(t, "Eva", nombre)
	assert.Equal(t, "111", tel)

	// Pedido antiguo: solo notas.
	p = &entity.Pedido{Notas: "Cliente: Raúl | Tel: 333 | Notas: x"}
	nombre, tel = pedido.ContactoMostrador(p)
	assert.Equal(t, "Raúl", nombre)
	assert.Equal(t, "333", tel)
}
