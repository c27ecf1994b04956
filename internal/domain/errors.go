package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los traducen
// a códigos HTTP; nunca llegan al cliente como stack traces.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUserAlreadyExists = errors.New("el usuario ya existe en esa fábrica")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
