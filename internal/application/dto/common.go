package dto

import "github.com/jhoicas/inventory-tracker/internal/domain"

// ErrorResponse cuerpo de error HTTP. Errors solo viene en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// MessageResponse respuesta simple con un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
