// Package domain holds the error taxonomy shared by the storage and
// application layers. Delivery maps these to HTTP status codes.
package domain

import "errors"

var (
	// ErrNotFound covers both a missing entity and an entity owned by
	// someone else. Merging the two keeps ownership checks from leaking
	// whether a resource exists.
	ErrNotFound = errors.New("not found")

	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("too many requests")
)
