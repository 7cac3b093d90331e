package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidOperation = errors.New("operación no permitida")
	ErrUnauthorized     = errors.New("no autorizado")
)

// UpstreamError representa una respuesta de error del backend remoto.
// Nunca se produce en modo demo.
type UpstreamError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend %s %s: HTTP %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("backend %s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Is permite que un 404 del backend se trate como ErrNotFound con errors.Is.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// InvalidOperation construye un ErrInvalidOperation con un motivo legible.
func InvalidOperation(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, reason)
}

// NotFound construye un ErrNotFound indicando el recurso y el identificador buscado.
func NotFound(resource string, key any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, resource, key)
}

// InvalidInput construye un ErrInvalidInput con el detalle del dato rechazado.
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
