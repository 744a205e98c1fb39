package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/ports"
	"github.com/jhoicas/carniceria-pos/internal/domain"
	"github.com/jhoicas/carniceria-pos/pkg/session"
)

// AuthUseCase inicia y consulta la sesión del terminal contra el backend.
// El token vive en el session.Store y se adjunta a toda petición saliente;
// nunca se lee de almacenamiento ambiental.
type AuthUseCase struct {
	backend ports.Authenticator
	sess    *session.Store
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(backend ports.Authenticator, sess *session.Store) *AuthUseCase {
	return &AuthUseCase{backend: backend, sess: sess}
}

// Login autentica contra el backend y guarda el token de la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	token, err := uc.backend.Login(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}
	uc.sess.Set(token, email)
	return uc.Status(), nil
}

// Status devuelve el estado vigente de la sesión.
func (uc *AuthUseCase) Status() *dto.SessionResponse {
	out := &dto.SessionResponse{
		Active: uc.sess.Active(),
		Email:  uc.sess.Email(),
	}
	if exp := uc.sess.ExpiresAt(); !exp.IsZero() {
		out.ExpiresAt = &exp
	}
	return out
}

// Logout descarta la sesión local. El backend no expone revocación de tokens.
func (uc *AuthUseCase) Logout() {
	uc.sess.Clear()
}
