package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"
)

type rolSelector interface {
	CambiarRol(ctx context.Context, usuarioID string, in dto.CambiarRolRequest) (*dto.SesionResponse, error)
}

// SesionHandler permite elegir el rol activo de la sesión.
type SesionHandler struct {
	uc  rolSelector
	log *logger.Logger
}

// NewSesionHandler construye el handler.
func NewSesionHandler(uc rolSelector, log *logger.Logger) *SesionHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SesionHandler{uc: uc, log: log.Component("http.sesion")}
}

// CambiarRol godoc
// @Summary      Resolver o fijar el rol activo
// @Description  Sin cuerpo (o con rol vacío) aplica la prioridad superadmin > encargado >
// @Description  repartidor > cliente. Con rol fijado, el usuario debe tenerlo asignado.
// @Tags         sesion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CambiarRolRequest  false  "Rol y lavandería a fijar"
// @Success      200  {object}  dto.SesionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sesion/rol [post]
func (h *SesionHandler) CambiarRol(c *fiber.Ctx) error {
	var in dto.CambiarRolRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.CambiarRol(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
