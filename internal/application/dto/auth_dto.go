package dto

import "time"

// LoginRequest credenciales para iniciar sesión contra el backend.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse estado de la sesión del terminal.
type SessionResponse struct {
	Active    bool       `json:"activa"`
	Email     string     `json:"email,omitempty"`
	ExpiresAt *time.Time `json:"expira_en,omitempty"`
}
