package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jhoicas/Lavanderia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Lavanderia-api/pkg/config"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "migrate",
		Usage: "migraciones del esquema de pedidos",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "DSN postgres://; por defecto se toma de la configuración",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "aplica todas las migraciones pendientes",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrate) error {
						if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
							return err
						}
						return nil
					})
				},
			},
			{
				Name:      "down",
				Usage:     "revierte N migraciones (1 por defecto)",
				ArgsUsage: "[N]",
				Action: func(c *cli.Context) error {
					n := 1
					if c.Args().Present() {
						v, err := strconv.Atoi(c.Args().First())
						if err != nil || v <= 0 {
							return fmt.Errorf("N debe ser un entero positivo: %q", c.Args().First())
						}
						n = v
					}
					return withMigrator(c, func(m *migrate.Migrate) error {
						return m.Steps(-n)
					})
				},
			},
			{
				Name:  "version",
				Usage: "muestra la versión aplicada",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrate) error {
						v, dirty, err := m.Version()
						if errors.Is(err, migrate.ErrNilVersion) {
							fmt.Fprintln(c.App.Writer, "sin migraciones aplicadas")
							return nil
						}
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "versión %d (dirty=%t)\n", v, dirty)
						return nil
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log := logger.New(logger.Config{Env: os.Getenv("APP_ENV"), Level: "info"})
		log.Fatal().Err(err).Msg("migrate")
	}
}

func withMigrator(c *cli.Context, fn func(m *migrate.Migrate) error) error {
	dsn := c.String("database-url")
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		dsn = cfg.DB.ConnectionString()
	}
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}
