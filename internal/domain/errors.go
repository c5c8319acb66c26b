package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrWriteFailed  = errors.New("la escritura no afectó ningún registro")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError agrupa todas las violaciones de campo de una entidad.
// Se evalúan todas las reglas antes de retornar; nunca se corta en la primera.
type ValidationError struct {
	Entity   string
	Messages []string
}

func (e *ValidationError) Error() string {
	return e.Entity + ": " + strings.Join(e.Messages, "; ")
}

// Problem devuelve el mapa entidad -> mensajes con el que se serializa el error.
func (e *ValidationError) Problem() map[string][]string {
	return map[string][]string{e.Entity: e.Messages}
}
