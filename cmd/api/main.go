package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Lavanderia-api/internal/application/analytics"
	"github.com/jhoicas/Lavanderia-api/internal/application/auth"
	"github.com/jhoicas/Lavanderia-api/internal/application/pedidos"
	"github.com/jhoicas/Lavanderia-api/internal/domain/pedido"
	"github.com/jhoicas/Lavanderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Lavanderia-api/internal/interfaces/http"
	"github.com/jhoicas/Lavanderia-api/pkg/config"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"

	_ "github.com/jhoicas/Lavanderia-api/docs"
)

// @title                       Lavandería API
// @version                     1.0
// @description                 Pedidos, transiciones de estado y dashboard para lavanderías.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.MigrateOnStart {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	zona, err := cfg.Negocio.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria de negocio")
	}

	pedidoRepo := postgres.NewPedidoRepository(pool)
	servicioRepo := postgres.NewServicioRepository(pool)
	perfilRepo := postgres.NewPerfilRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clock := pedidos.Clock(time.Now)
	consultaUC := pedidos.NewConsultaUseCase(pedidoRepo, servicioRepo, perfilRepo, pedidos.PaginaConfig{
		Default: cfg.Search.PageSize,
		Max:     cfg.Search.MaxPageSize,
	}, log)
	walkInUC := pedidos.NewWalkInUseCase(txRunner, clock, log)
	transicionUC := pedidos.NewTransicionUseCase(pedidoRepo, perfilRepo, clock, log)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, pedido.DiaNegocio{
		Zona:       zona,
		HoraInicio: cfg.Negocio.DayStartHour,
	}, time.Now)
	sesionUC := auth.NewSesionUseCase(rolRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lavandería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Consulta:   consultaUC,
		WalkIn:     walkInUC,
		Transicion: transicionUC,
		Dashboard:  dashboardUC,
		Sesion:     sesionUC,
		JWTSecret:  cfg.JWT.Secret,
		Logger:     log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
