package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
	"github.com/jhoicas/Lavanderia-api/internal/domain/rol"
	"github.com/jhoicas/Lavanderia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SesionUseCase resuelve el rol activo de un usuario ya autenticado y re-emite su token.
// La autenticación (login) vive en otro servicio; aquí solo se elige el rol.
type SesionUseCase struct {
	rolRepo repository.RolRepository
	jwtCfg  JWTConfig
}

// NewSesionUseCase construye el caso de uso de sesión.
func NewSesionUseCase(rolRepo repository.RolRepository, jwtCfg JWTConfig) *SesionUseCase {
	return &SesionUseCase{rolRepo: rolRepo, jwtCfg: jwtCfg}
}

// CambiarRol resuelve el rol (predeterminado o fijado) y devuelve un token nuevo.
func (uc *SesionUseCase) CambiarRol(ctx context.Context, usuarioID string, in dto.CambiarRolRequest) (*dto.SesionResponse, error) {
	if usuarioID == "" {
		return nil, domain.ErrUnauthorized
	}
	asignaciones, err := uc.rolRepo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("sesion: roles del usuario: %w", err)
	}
	activo, err := rol.Resolver(asignaciones, rol.Fijado{Rol: in.Rol, LavanderiaID: in.LavanderiaID})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Sesion{
		UserID:       usuarioID,
		LavanderiaID: activo.LavanderiaID,
		Role:         activo.Rol,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SesionResponse{
		Token:        token,
		UserID:       usuarioID,
		Rol:          activo.Rol,
		LavanderiaID: activo.LavanderiaID,
	}, nil
}
