package dto

// ErrorResponse cuerpo de error HTTP. Stack solo se incluye fuera de production.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}
