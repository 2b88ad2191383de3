package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "lavanderia-api", cfg.App.Name)
	assert.Equal(t, 50, cfg.Search.PageSize)
	assert.Equal(t, 100, cfg.Search.MaxPageSize)
	assert.Equal(t, 0, cfg.Negocio.DayStartHour)
	assert.Equal(t, "America/Mexico_City", cfg.Negocio.Timezone)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("BUSINESS_TIMEZONE", "America/Bogota")
	t.Setenv("BUSINESS_DAY_START_HOUR", "6")
	t.Setenv("SEARCH_PAGE_SIZE", "20")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "America/Bogota", cfg.Negocio.Timezone)
	assert.Equal(t, 6, cfg.Negocio.DayStartHour)
	assert.Equal(t, 20, cfg.Search.PageSize)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_HoraInicioInvalida(t *testing.T) {
	t.Setenv("BUSINESS_DAY_START_HOUR", "25")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ZonaInvalida(t *testing.T) {
	t.Setenv("BUSINESS_TIMEZONE", "Marte/Olympus")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "lavanderia", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/lavanderia?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
