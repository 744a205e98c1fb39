// Package session guarda el token de sesión emitido por el backend y permite
// consultarlo de forma explícita en lugar de leerlo de un almacenamiento
// ambiental. El POS no valida la firma del token (no conoce el secreto del
// backend); solo inspecciona los claims sin verificar para conocer su
// expiración y decidir si la sesión sigue viva.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store mantiene el token de la sesión activa del terminal. Seguro para uso
// concurrente: la fachada HTTP lo lee en cada petición al backend.
type Store struct {
	mu        sync.RWMutex
	token     string
	email     string
	expiresAt time.Time
}

// NewStore construye un almacén de sesión vacío (sin sesión iniciada).
func NewStore() *Store {
	return &Store{}
}

// Set registra el token devuelto por el login. La expiración se lee de los
// claims del propio token; si el token no trae claim exp queda en cero y la
// sesión se considera viva hasta que el backend la rechace.
func (s *Store) Set(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.email = email
	s.expiresAt = tokenExpiry(token)
}

// Token devuelve el token vigente, o cadena vacía si no hay sesión.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Email devuelve el correo con el que se inició la sesión.
func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// ExpiresAt devuelve la expiración leída del token (cero si no trae exp).
func (s *Store) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Active reporta si hay una sesión con token no expirado.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return false
	}
	if s.expiresAt.IsZero() {
		return true
	}
	return time.Now().Before(s.expiresAt)
}

// Clear descarta la sesión.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.email = ""
	s.expiresAt = time.Time{}
}

// tokenExpiry extrae el claim exp sin verificar la firma. Un token que no
// parsea o no trae exp devuelve cero.
func tokenExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
