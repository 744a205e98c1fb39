package dto

// ErrorResponse cuerpo de error HTTP de la fachada.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
