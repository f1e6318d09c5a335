package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un error para que el flujo de bootstrap y los handlers HTTP
// decidan sin depender del texto del mensaje.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindAuthentication Kind = "UNAUTHORIZED"
	KindRegistration   Kind = "REGISTRATION"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindRemote         Kind = "REMOTE"
)

// Error error de dominio con clasificación.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is permite errors.Is(err, domain.ErrNotFound) contra cualquier error del mismo Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinelas por clase (sin mensaje: sirven para errors.Is).
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrUnauthorized   = &Error{Kind: KindAuthentication}
	ErrRegistration   = &Error{Kind: KindRegistration}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrConflict       = &Error{Kind: KindConflict}
	ErrRemote         = &Error{Kind: KindRemote}
	ErrSessionExpired = NewAuthentication("Session expired")
	ErrNoSession      = NewAuthentication("No user logged in")
)

// NewValidation error de entrada detectado localmente (nunca llega a la red).
func NewValidation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// NewAuthentication credenciales rechazadas o sesión inválida/expirada.
func NewAuthentication(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }

// NewNotFound recurso ausente.
func NewNotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// NewConflict recurso duplicado.
func NewConflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// Wrap clasifica un error existente. El mensaje del proveedor se conserva tal cual.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf devuelve la clase del error o "" si no es un error de dominio.
func KindOf(err error) Kind {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Kind
	}
	return ""
}

func IsValidation(err error) bool     { return KindOf(err) == KindValidation }
func IsAuthentication(err error) bool { return KindOf(err) == KindAuthentication }
func IsNotFound(err error) bool       { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool       { return KindOf(err) == KindConflict }
