package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Consulta   pedidoConsultor
	WalkIn     walkInCreador
	Transicion pedidoTransicionador
	Dashboard  resumenProvider
	Sesion     rolSelector
	JWTSecret  string
	Logger     *logger.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Sesión: cualquier usuario autenticado puede resolver su rol
	sesionHandler := NewSesionHandler(deps.Sesion, deps.Logger)
	api.Post("/sesion/rol", sesionHandler.CambiarRol)

	// Pedidos (personal de la lavandería)
	pedidos := api.Group("/pedidos", RequireRole(entity.RoleSuperadmin, entity.RoleEncargado, entity.RoleRepartidor))
	pedidoHandler := NewPedidoHandler(deps.Consulta, deps.WalkIn, deps.Transicion, deps.Logger)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Post("/walk-in", RequireRole(entity.RoleSuperadmin, entity.RoleEncargado), pedidoHandler.CreateWalkIn)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Patch("/:id/estado", pedidoHandler.UpdateEstado)

	// Dashboard
	dashboard := api.Group("/dashboard", RequireRole(entity.RoleSuperadmin, entity.RoleEncargado))
	dashboardHandler := NewDashboardHandler(deps.Dashboard, deps.Logger)
	dashboard.Get("/resumen", dashboardHandler.GetResumen)
}
