package dto

// ErrorResponse cuerpo de error HTTP de la aplicación local.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
