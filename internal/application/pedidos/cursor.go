package pedidos

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
)

// EncodeCursor serializa la posición como base64(created_at RFC3339Nano|id).
func EncodeCursor(c repository.Cursor) string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor es la inversa de EncodeCursor. Una cadena vacía devuelve nil.
func DecodeCursor(s string) (*repository.Cursor, error) {
	if s == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, domain.NewValidationError("cursor", "formato inválido")
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, domain.NewValidationError("cursor", "formato inválido")
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, domain.NewValidationError("cursor", "fecha inválida")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.NewValidationError("cursor", "id inválido")
	}
	return &repository.Cursor{CreatedAt: t, ID: id}, nil
}
