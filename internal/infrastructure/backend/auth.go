package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/carniceria-pos/internal/application/ports"
)

// Verificar en tiempo de compilación que Client implementa el puerto.
var _ ports.Authenticator = (*Client)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login autentica contra POST /api/auth/login y devuelve el token emitido.
// Credenciales incorrectas llegan como *Error con el mensaje del backend.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}
