package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrLoadInFlight = errors.New("ya hay una carga en curso para esta colección")
	ErrUpstream     = errors.New("el backend rechazó la operación")
	ErrNoSnapshot   = errors.New("no existe snapshot persistido")
)
