// Package backend implementa el cliente HTTP hacia el backend de la tienda:
// autenticación, catálogo de productos, registro de ventas y reportes.
// Usa net/http de la librería estándar; el token de sesión se toma del
// session.Store en cada petición, nunca de estado ambiental.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/carniceria-pos/pkg/session"
)

// Error es una respuesta no exitosa del backend. Message conserva el mensaje
// del servidor tal cual llegó, para mostrarlo al usuario sin reformular.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %s (HTTP %d)", e.Message, e.Status)
}

// errorPayload forma de error del backend. Las rutas de negocio responden
// {error}; el login fallido responde {message}.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client cliente HTTP del backend de la tienda.
type Client struct {
	baseURL    string
	sess       *session.Store
	httpClient *http.Client
}

// NewClient construye el cliente. El timeout cubre la petición completa; el
// POS no reintenta ni aplica backoff (responsabilidad del operador).
func NewClient(baseURL string, timeout time.Duration, sess *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		sess:    sess,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do ejecuta una petición JSON contra el backend. body y out pueden ser nil.
// Una respuesta no 2xx se devuelve como *Error con el mensaje del servidor, o
// un mensaje genérico si el cuerpo no trae ninguno.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: construir request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("backend: deserializar respuesta de %s: %w", path, err)
		}
	}
	return nil
}

func newError(status int, raw []byte) *Error {
	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)
	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("el servidor respondió %d", status)
	}
	return &Error{Status: status, Message: msg}
}
