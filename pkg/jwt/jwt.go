package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el rol activo ya resuelto.
// LavanderiaID va vacío para superadmin (rol global).
type Claims struct {
	jwt.RegisteredClaims
	UserID       string `json:"user_id"`
	LavanderiaID string `json:"lavanderia_id,omitempty"`
	Role         string `json:"role"` // "superadmin" | "encargado" | "repartidor" | "cliente"
}

// Sesion datos de sesión que viajan en el token.
type Sesion struct {
	UserID       string
	LavanderiaID string
	Role         string
}

// Generate genera un token JWT firmado con la sesión.
func Generate(secret string, s Sesion, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:       s.UserID,
		LavanderiaID: s.LavanderiaID,
		Role:         s.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Sesion, error) {
	if secret == "" {
		return Sesion{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Sesion{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Sesion{}, fmt.Errorf("claims inválidos")
	}
	return Sesion{UserID: claims.UserID, LavanderiaID: claims.LavanderiaID, Role: claims.Role}, nil
}
