package pedido

import (
	"time"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// VariacionIngresos calcula el cambio porcentual de ingresos de ayer a hoy.
// Con ayer en cero devuelve 100 si hoy es positivo y 0 en otro caso.
func VariacionIngresos(hoy, ayer decimal.Decimal) decimal.Decimal {
	if ayer.IsZero() {
		if hoy.GreaterThan(decimal.Zero) {
			return cien
		}
		return decimal.Zero
	}
	return hoy.Sub(ayer).Div(ayer).Mul(cien).Round(2)
}

// DiaNegocio define cómo se corta un día de operación: zona horaria y hora de inicio.
type DiaNegocio struct {
	Zona       *time.Location
	HoraInicio int // 0-23
}

// Inicio devuelve el comienzo del día de negocio que contiene t.
func (d DiaNegocio) Inicio(t time.Time) time.Time {
	loc := d.Zona
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	inicio := time.Date(lt.Year(), lt.Month(), lt.Day(), d.HoraInicio, 0, 0, 0, loc)
	if lt.Before(inicio) {
		inicio = inicio.AddDate(0, 0, -1)
	}
	return inicio
}

// Rangos devuelve [ayer, hoy, mañana) en inicios de día de negocio relativos a ahora.
// AddDate respeta los cambios de horario de verano.
func (d DiaNegocio) Rangos(ahora time.Time) (ayer, hoy, manana time.Time) {
	hoy = d.Inicio(ahora)
	return hoy.AddDate(0, 0, -1), hoy, hoy.AddDate(0, 0, 1)
}
