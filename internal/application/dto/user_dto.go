package dto

// CambiarRolRequest body para POST /api/sesion/rol.
// Rol vacío pide el rol predeterminado por prioridad.
type CambiarRolRequest struct {
	Rol          string `json:"rol,omitempty"`
	LavanderiaID string `json:"lavanderia_id,omitempty"`
}

// SesionResponse token re-emitido con el rol activo.
type SesionResponse struct {
	Token        string `json:"token"`
	UserID       string `json:"user_id"`
	Rol          string `json:"rol"`
	LavanderiaID string `json:"lavanderia_id,omitempty"`
}
