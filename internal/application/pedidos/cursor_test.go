package pedidos_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lavanderia-api/internal/application/pedidos"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
)

func TestCursor_IdaYVuelta(t *testing.T) {
	in := repository.Cursor{
		CreatedAt: time.Date(2024, 5, 10, 15, 4, 5, 123456789, time.UTC),
		ID:        "40000000-0000-0000-0000-000000000001",
	}
	got, err := pedidos.DecodeCursor(pedidos.EncodeCursor(in))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, in.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, in.ID, got.ID)
}

func TestCursor_Vacio(t *testing.T) {
	got, err := pedidos.DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCursor_Invalido(t *testing.T) {
	for _, s := range []string{
		"%%%",
		base64.RawURLEncoding.EncodeToString([]byte("sin-separador")),
		base64.RawURLEncoding.EncodeToString([]byte("ayer|40000000-0000-0000-0000-000000000001")),
		base64.RawURLEncoding.EncodeToString([]byte("2024-05-10T15:04:05Z|no-es-uuid")),
	} {
		_, err := pedidos.DecodeCursor(s)
		assert.ErrorIs(t, err, domain.ErrValidation, s)
	}
}
