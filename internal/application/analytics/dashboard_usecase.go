// Package analytics contiene los casos de uso de reportes de operación del dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Lavanderia-api/internal/application/auth"
	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/pedido"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase calcula el resumen de operación de una lavandería.
//
// Fuente de datos: ResumenSource (lectura de estado, total y fecha de los pedidos no
// cancelados). Los días se cortan según DiaNegocio.
type DashboardUseCase struct {
	source repository.ResumenSource
	dia    pedido.DiaNegocio
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now puede ser nil.
func NewDashboardUseCase(source repository.ResumenSource, dia pedido.DiaNegocio, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{source: source, dia: dia, now: now}
}

// GetResumen cuenta pedidos por estado y compara ingresos de hoy contra ayer.
// Un fallo del almacén se devuelve como *domain.AggregationError.
func (uc *DashboardUseCase) GetResumen(ctx context.Context, a auth.Contexto, lavanderiaID string) (*dto.DashboardResumenDTO, error) {
	if err := a.Autorizar(auth.AccionVerDashboard, lavanderiaID); err != nil {
		return nil, err
	}
	rows, err := uc.source.ListResumen(ctx, lavanderiaID)
	if err != nil {
		return nil, &domain.AggregationError{Err: err}
	}

	ayer, hoy, manana := uc.dia.Rangos(uc.now())
	out := Resumir(rows, ayer, hoy, manana)
	out.FechaReferencia = hoy.Format("2006-01-02")
	out.ZonaHoraria = hoy.Location().String()
	return out, nil
}

// Resumir agrega las filas. Los ingresos cuentan todo pedido no cancelado creado dentro del
// rango [desde, hasta) del día correspondiente.
func Resumir(rows []repository.PedidoResumenRow, ayer, hoy, manana time.Time) *dto.DashboardResumenDTO {
	out := &dto.DashboardResumenDTO{
		IngresosHoy:  decimal.Zero,
		IngresosAyer: decimal.Zero,
	}
	for _, r := range rows {
		switch r.Estado {
		case entity.EstadoCreado:
			out.Pendientes++
		case entity.EstadoEnProceso:
			out.EnProceso++
		case entity.EstadoListo:
			out.Listos++
		case entity.EstadoEntregado:
			out.Completados++
		default:
			continue
		}
		switch {
		case enRango(r.CreatedAt, hoy, manana):
			out.IngresosHoy = out.IngresosHoy.Add(r.Total)
		case enRango(r.CreatedAt, ayer, hoy):
			out.IngresosAyer = out.IngresosAyer.Add(r.Total)
		}
	}
	out.VariacionIngresos = pedido.VariacionIngresos(out.IngresosHoy, out.IngresosAyer)
	return out
}

func enRango(t, desde, hasta time.Time) bool {
	return !t.Before(desde) && t.Before(hasta)
}
