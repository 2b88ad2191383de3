package dto

import "github.com/shopspring/decimal"

// DashboardResumenDTO respuesta de GET /api/dashboard/resumen.
// Conteos por estado (cancelados excluidos) e ingresos de hoy contra ayer.
type DashboardResumenDTO struct {
	Pendientes  int `json:"pendientes"` // creado
	EnProceso   int `json:"en_proceso"`
	Listos      int `json:"listos"`
	Completados int `json:"completados"` // entregado

	IngresosHoy       decimal.Decimal `json:"ingresos_hoy"`
	IngresosAyer      decimal.Decimal `json:"ingresos_ayer"`
	VariacionIngresos decimal.Decimal `json:"variacion_ingresos"` // porcentaje

	// Metadatos del corte
	FechaReferencia string `json:"fecha_referencia"` // YYYY-MM-DD del día de negocio actual
	ZonaHoraria     string `json:"zona_horaria"`
}
