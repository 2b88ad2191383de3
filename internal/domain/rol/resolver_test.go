package rol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/rol"
)

const (
	lavA = "00000000-0000-0000-0000-00000000000a"
	lavB = "00000000-0000-0000-0000-00000000000b"
)

func asignacion(r, lav string) entity.RolAsignado {
	return entity.RolAsignado{UsuarioID: "u1", Rol: r, LavanderiaID: lav, Activo: true}
}

func TestResolver_SinAsignaciones_EsCliente(t *testing.T) {
	got, err := rol.Resolver(nil, rol.Fijado{})
	require.NoError(t, err)
	assert.Equal(t, rol.Activo{Rol: entity.RoleCliente}, got)
}

func TestResolver_Prioridad(t *testing.T) {
	cases := []struct {
		name string
		in   []entity.RolAsignado
		want rol.Activo
	}{
		{
			name: "superadmin global gana",
			in:   []entity.RolAsignado{asignacion(entity.RoleEncargado, lavA), asignacion(entity.RoleSuperadmin, "")},
			want: rol.Activo{Rol: entity.RoleSuperadmin},
		},
		{
			name: "encargado antes que repartidor",
			in:   []entity.RolAsignado{asignacion(entity.RoleRepartidor, lavA), asignacion(entity.RoleEncargado, lavB)},
			want: rol.Activo{Rol: entity.RoleEncargado, LavanderiaID: lavB},
		},
		{
			name: "repartidor antes que cliente",
			in:   []entity.RolAsignado{asignacion(entity.RoleCliente, lavA), asignacion(entity.RoleRepartidor, lavB)},
			want: rol.Activo{Rol: entity.RoleRepartidor, LavanderiaID: lavB},
		},
		{
			name: "empate se resuelve por id de lavandería menor",
			in:   []entity.RolAsignado{asignacion(entity.RoleEncargado, lavB), asignacion(entity.RoleEncargado, lavA)},
			want: rol.Activo{Rol: entity.RoleEncargado, LavanderiaID: lavA},
		},
		{
			name: "superadmin ligado a lavandería no es global",
			in:   []entity.RolAsignado{asignacion(entity.RoleSuperadmin, lavA), asignacion(entity.RoleRepartidor, lavA)},
			want: rol.Activo{Rol: entity.RoleRepartidor, LavanderiaID: lavA},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rol.Resolver(tc.in, rol.Fijado{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolver_IgnoraInactivosYDesconocidos(t *testing.T) {
	inactivo := asignacion(entity.RoleEncargado, lavA)
	inactivo.Activo = false
	in := []entity.RolAsignado{inactivo, asignacion("gerente", lavA), asignacion(entity.RoleRepartidor, lavB)}

	got, err := rol.Resolver(in, rol.Fijado{})
	require.NoError(t, err)
	assert.Equal(t, rol.Activo{Rol: entity.RoleRepartidor, LavanderiaID: lavB}, got)
}

func TestResolver_Determinista(t *testing.T) {
	in := []entity.RolAsignado{
		asignacion(entity.RoleRepartidor, lavB),
		asignacion(entity.RoleEncargado, lavB),
		asignacion(entity.RoleEncargado, lavA),
	}
	primero, err := rol.Resolver(in, rol.Fijado{})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := rol.Resolver(in, rol.Fijado{})
		require.NoError(t, err)
		assert.Equal(t, primero, got)
	}
}

func TestResolver_Fijado(t *testing.T) {
	in := []entity.RolAsignado{asignacion(entity.RoleEncargado, lavA), asignacion(entity.RoleRepartidor, lavB)}

	got, err := rol.Resolver(in, rol.Fijado{Rol: entity.RoleRepartidor})
	require.NoError(t, err)
	assert.Equal(t, rol.Activo{Rol: entity.RoleRepartidor, LavanderiaID: lavB}, got)

	_, err = rol.Resolver(in, rol.Fijado{Rol: entity.RoleRepartidor, LavanderiaID: lavA})
	assert.ErrorIs(t, err, domain.ErrForbidden, "repartidor no está asignado en lavA")

	_, err = rol.Resolver(in, rol.Fijado{Rol: entity.RoleSuperadmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = rol.Resolver(in, rol.Fijado{Rol: "gerente"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResolver_FijarClienteSinAsignaciones(t *testing.T) {
	got, err := rol.Resolver(nil, rol.Fijado{Rol: entity.RoleCliente})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, got.Rol)
}
