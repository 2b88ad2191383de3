package dto

// CursorPage metadatos de paginación por cursor.
// NextCursor vacío indica que no hay más resultados.
type CursorPage struct {
	Limit      int    `json:"limit"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
