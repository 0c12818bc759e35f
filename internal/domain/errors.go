package domain

import "errors"

// ErrNotFound is returned by store, repo, and service functions when the
// requested resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end time before start time).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a create collides with an existing resource
// (e.g. registering an email that is already taken, or scheduling the same
// activity twice on one day).
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when credentials are missing, wrong, or the
// bearer token is invalid or expired.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when the caller is authenticated but lacks the
// role required for the operation.
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")
