package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrEmptyTitle   = errors.New("task title is required")
	ErrTierLimit    = errors.New("task limit reached for the current plan")
	ErrTodoNotFound = errors.New("task not found")
)
