// Package apperrors defines the error kinds the core services surface to the
// API layer. Handlers classify with errors.Is and map each kind to a status
// code; everything unmatched is treated as an internal error.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced user/post/comment/notification that does
	// not exist or is soft-deleted on a read path that requires activeness.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks content that is missing or exceeds its size bound.
	ErrValidation = errors.New("validation failed")

	// ErrPermission marks a mutation by an actor who neither owns the
	// resource nor holds elevated privilege.
	ErrPermission = errors.New("permission denied")

	// ErrSelfFollow marks an attempt to follow oneself.
	ErrSelfFollow = errors.New("cannot follow yourself")
)

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

func Permission(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrPermission)
}
