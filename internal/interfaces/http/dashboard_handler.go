package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavanderia-api/internal/application/auth"
	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"
)

type resumenProvider interface {
	GetResumen(ctx context.Context, a auth.Contexto, lavanderiaID string) (*dto.DashboardResumenDTO, error)
}

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc  resumenProvider
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc resumenProvider, log *logger.Logger) *DashboardHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardHandler{uc: uc, log: log.Component("http.dashboard")}
}

// GetResumen godoc
// @Summary      Resumen de operación
// @Description  Conteos por estado (sin cancelados) e ingresos de hoy contra ayer según el
// @Description  día de negocio configurado.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        X-Lavanderia-ID  header  string  false  "Lavandería (solo superadmin)"
// @Success      200  {object}  dto.DashboardResumenDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/resumen [get]
func (h *DashboardHandler) GetResumen(c *fiber.Ctx) error {
	a := Contexto(c)
	lavanderiaID, err := a.ResolverLavanderia(c.Get(HeaderLavanderia))
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.GetResumen(c.Context(), a, lavanderiaID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
