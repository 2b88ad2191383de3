// Package rol resuelve el rol activo de un usuario a partir de sus asignaciones.
package rol

import (
	"sort"

	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
)

// prioridad menor = más fuerte.
var prioridad = map[string]int{
	entity.RoleSuperadmin: 0,
	entity.RoleEncargado:  1,
	entity.RoleRepartidor: 2,
	entity.RoleCliente:    3,
}

// Activo es el rol con el que opera una sesión.
type Activo struct {
	Rol          string
	LavanderiaID string
}

// Fijado es la elección explícita de rol que hace el usuario (cambio de rol).
// Rol vacío significa "usar el predeterminado".
type Fijado struct {
	Rol          string
	LavanderiaID string
}

// EsValido informa si r es un rol conocido.
func EsValido(r string) bool {
	_, ok := prioridad[r]
	return ok
}

// Resolver elige el rol activo.
//
// Sin rol fijado: superadmin (global, sin lavandería) > encargado > repartidor > cliente;
// empates por lavandería se resuelven con el id menor. Sin asignaciones aplicables devuelve
// cliente. Con rol fijado, el usuario debe tenerlo activo; si no, domain.ErrForbidden.
func Resolver(asignaciones []entity.RolAsignado, fijado Fijado) (Activo, error) {
	candidatos := aplicables(asignaciones)

	if fijado.Rol != "" {
		if !EsValido(fijado.Rol) {
			return Activo{}, domain.NewValidationError("rol", "rol desconocido: "+fijado.Rol)
		}
		for _, a := range candidatos {
			if a.Rol != fijado.Rol {
				continue
			}
			if fijado.LavanderiaID == "" || fijado.LavanderiaID == a.LavanderiaID {
				return Activo{Rol: a.Rol, LavanderiaID: a.LavanderiaID}, nil
			}
		}
		if fijado.Rol == entity.RoleCliente && len(candidatos) == 0 {
			return Activo{Rol: entity.RoleCliente}, nil
		}
		return Activo{}, domain.ErrForbidden
	}

	if len(candidatos) == 0 {
		return Activo{Rol: entity.RoleCliente}, nil
	}
	a := candidatos[0]
	return Activo{Rol: a.Rol, LavanderiaID: a.LavanderiaID}, nil
}

// aplicables filtra asignaciones activas de roles conocidos y las ordena de forma determinista.
// Un superadmin ligado a una lavandería no cuenta como global.
func aplicables(asignaciones []entity.RolAsignado) []entity.RolAsignado {
	out := make([]entity.RolAsignado, 0, len(asignaciones))
	for _, a := range asignaciones {
		if !a.Activo || !EsValido(a.Rol) {
			continue
		}
		if a.Rol == entity.RoleSuperadmin && a.LavanderiaID != "" {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := prioridad[out[i].Rol], prioridad[out[j].Rol]
		if pi != pj {
			return pi < pj
		}
		return out[i].LavanderiaID < out[j].LavanderiaID
	})
	return out
}
