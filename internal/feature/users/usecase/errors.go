// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned by the repository when no user matches
	// the given id or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned by the repository when an insert hits
	// the unique index on username.
	ErrUsernameTaken = errors.New("username already exists")
)
