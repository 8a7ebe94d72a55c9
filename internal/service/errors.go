package service

import "fmt"

// Typed errors raised at the service boundary. Handlers map them once:
// ValidationError → 422, ConflictError → 400, NotFoundError → 404; anything
// else is a store fault and becomes a generic 500.

// ValidationError reports the first input rule violated, with the field name.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

// ConflictError signals a duplicate (name, size) pair on create.
type ConflictError struct {
	Name string
	Size string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Ya existe una bebida '%s' con tamaño '%s'", e.Name, e.Size)
}

// NotFoundError signals a missing lookup/delete target.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }
