// Package app implements application business logic for the cookbook service.
package app

import "errors"

// Ошибки уровня бизнес-логики.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidID      = errors.New("invalid identifier")
)
