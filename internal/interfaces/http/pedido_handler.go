package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavanderia-api/internal/application/auth"
	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"
)

// Contratos mínimos de los casos de uso de pedidos que consumen los handlers.
type (
	pedidoConsultor interface {
		Buscar(ctx context.Context, a auth.Contexto, lavanderiaID string, in dto.BuscarPedidosRequest) (*dto.PedidoListResponse, error)
		Obtener(ctx context.Context, a auth.Contexto, lavanderiaID, id string) (*dto.PedidoDetalleResponse, error)
	}
	walkInCreador interface {
		Crear(ctx context.Context, a auth.Contexto, lavanderiaID string, in dto.CrearWalkInRequest) (*dto.PedidoDetalleResponse, error)
	}
	pedidoTransicionador interface {
		Transicionar(ctx context.Context, a auth.Contexto, lavanderiaID, pedidoID, hacia string) (*dto.PedidoResponse, error)
	}
)

// PedidoHandler maneja las peticiones HTTP de pedidos (protegido).
type PedidoHandler struct {
	consulta   pedidoConsultor
	walkIn     walkInCreador
	transicion pedidoTransicionador
	log        *logger.Logger
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(consulta pedidoConsultor, walkIn walkInCreador, transicion pedidoTransicionador, log *logger.Logger) *PedidoHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PedidoHandler{consulta: consulta, walkIn: walkIn, transicion: transicion, log: log.Component("http.pedidos")}
}

// List godoc
// @Summary      Buscar pedidos
// @Description  Pedidos de la lavandería, más recientes primero. Filtro de estado exacto
// @Description  ("all" o vacío = todos) y texto libre sobre id, cliente, notas y teléfono.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        estado  query   string  false  "creado | en_proceso | listo | entregado | cancelado | all"
// @Param        q       query   string  false  "Texto libre"
// @Param        cursor  query   string  false  "Cursor de la página anterior (next_cursor)"
// @Param        limit   query   int     false  "Tamaño de página (default 50, max 100)"
// @Param        X-Lavanderia-ID  header  string  false  "Lavandería (solo superadmin)"
// @Success      200  {object}  dto.PedidoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	a := Contexto(c)
	lavanderiaID, err := a.ResolverLavanderia(c.Get(HeaderLavanderia))
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req dto.BuscarPedidosRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.consulta.Buscar(c.Context(), a, lavanderiaID, req)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Param        X-Lavanderia-ID  header  string  false  "Lavandería (solo superadmin)"
// @Success      200  {object}  dto.PedidoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	a := Contexto(c)
	lavanderiaID, err := a.ResolverLavanderia(c.Get(HeaderLavanderia))
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.consulta.Obtener(c.Context(), a, lavanderiaID, id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateWalkIn godoc
// @Summary      Crear pedido de mostrador
// @Description  Crea un pedido para un cliente sin cuenta con sus ítems en una sola transacción.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearWalkInRequest  true  "Cliente e ítems"
// @Param        X-Lavanderia-ID  header  string  false  "Lavandería (solo superadmin)"
// @Success      201  {object}  dto.PedidoDetalleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/pedidos/walk-in [post]
func (h *PedidoHandler) CreateWalkIn(c *fiber.Ctx) error {
	a := Contexto(c)
	lavanderiaID, err := a.ResolverLavanderia(c.Get(HeaderLavanderia))
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.CrearWalkInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.walkIn.Crear(c.Context(), a, lavanderiaID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEstado godoc
// @Summary      Cambiar estado de un pedido
// @Description  Aplica una transición permitida: creado→en_proceso|listo|entregado,
// @Description  en_proceso→listo|entregado, listo→entregado. El repartidor solo puede entregar.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del pedido"
// @Param        body  body  dto.TransicionRequest   true  "Estado destino"
// @Param        X-Lavanderia-ID  header  string  false  "Lavandería (solo superadmin)"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/estado [patch]
func (h *PedidoHandler) UpdateEstado(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	a := Contexto(c)
	lavanderiaID, err := a.ResolverLavanderia(c.Get(HeaderLavanderia))
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.TransicionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Estado == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado es requerido"})
	}
	out, err := h.transicion.Transicionar(c.Context(), a, lavanderiaID, id, in.Estado)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
