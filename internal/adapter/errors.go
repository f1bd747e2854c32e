package adapter

import "errors"

var (
	// ErrNetwork marks failures where the server could not be reached or
	// could not answer: transport errors, 5xx statuses and an open circuit.
	ErrNetwork = errors.New("grocy server unreachable")

	// ErrMalformedServerRecord marks a record that could not be decoded or
	// failed validation. Such records are skipped, not returned.
	ErrMalformedServerRecord = errors.New("malformed server record")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnknownEntity is returned for entity types without an object route.
	ErrUnknownEntity = errors.New("entity has no object route")
)
