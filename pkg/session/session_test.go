package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carniceria-pos/pkg/session"
)

// signedToken emite un JWT firmado con un secreto arbitrario: el almacén no
// verifica la firma, solo inspecciona los claims.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	require.NoError(t, err)
	return tok
}

func TestStore_Vacio(t *testing.T) {
	s := session.NewStore()

	assert.False(t, s.Active())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Email())
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestStore_TokenConExpiracion(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	tok := signedToken(t, jwt.MapClaims{"sub": "cajero", "exp": exp.Unix()})

	s := session.NewStore()
	s.Set(tok, "cajero@carniceria.mx")

	assert.True(t, s.Active())
	assert.Equal(t, tok, s.Token())
	assert.Equal(t, "cajero@carniceria.mx", s.Email())
	assert.WithinDuration(t, exp, s.ExpiresAt(), time.Second)
}

func TestStore_TokenExpirado(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})

	s := session.NewStore()
	s.Set(tok, "cajero@carniceria.mx")

	assert.False(t, s.Active())
}

func TestStore_TokenSinExp(t *testing.T) {
	// Sin claim exp la sesión se considera viva hasta que el backend la
	// rechace con 401.
	tok := signedToken(t, jwt.MapClaims{"sub": "cajero"})

	s := session.NewStore()
	s.Set(tok, "cajero@carniceria.mx")

	assert.True(t, s.Active())
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestStore_TokenOpaco(t *testing.T) {
	// Un token que no es JWT también sostiene la sesión.
	s := session.NewStore()
	s.Set("token-opaco", "cajero@carniceria.mx")

	assert.True(t, s.Active())
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestStore_Clear(t *testing.T) {
	s := session.NewStore()
	s.Set("token-opaco", "cajero@carniceria.mx")
	s.Clear()

	assert.False(t, s.Active())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Email())
}
