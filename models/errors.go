package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Username allocation related errors. Both are expected validation outcomes,
// not faults: the caller is supposed to fall back to manual username entry.
var (
	ErrInvalidEmailForUsername = errors.Wrap(BadParameterError,
		"email cannot be turned into a username")
	ErrUsernameSpaceExhausted = errors.Wrap(BadParameterError,
		"all username suffixes are taken, a username must be entered manually")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
