package entity

// Roles válidos de un usuario.
const (
	RoleSuperadmin = "superadmin"
	RoleEncargado  = "encargado"
	RoleRepartidor = "repartidor"
	RoleCliente    = "cliente"
)

// RolAsignado es una asignación (rol, lavandería, activo) de un usuario.
// LavanderiaID vacío indica un rol global (superadmin).
type RolAsignado struct {
	UsuarioID    string
	Rol          string
	LavanderiaID string
	Activo       bool
}
