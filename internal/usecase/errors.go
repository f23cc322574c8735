package usecase

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrForbidden means the actor's role (or ownership) does not permit the
	// action. Handlers answer it with a soft redirect, not a hard fault.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation means the request payload was malformed or incomplete.
	ErrValidation = errors.New("validation failed")
)

// notFound maps the store's missing-record error onto the use case taxonomy.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
