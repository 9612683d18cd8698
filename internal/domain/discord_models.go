package domain

import "fmt"

// Códigos de error de la API de Discord que nos interesan.
const (
	CodeMissingPermissions = 50013 // permisos o jerarquía de roles
	CodeInvalidFormBody    = 50035 // nickname inválido
)

// Guild es el DTO mínimo del servidor objetivo.
type Guild struct {
	ID   string
	Name string
}

// Member es el DTO mínimo del miembro objetivo.
type Member struct {
	UserID   string
	Username string
	Nick     string
}

// APIError es un error REST de la plataforma con su código numérico.
type APIError struct {
	Status  int
	Code    int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("discord api status %d code %d", e.Status, e.Code)
}

func (e *APIError) Unwrap() error { return e.Err }
