package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert budget")
	ErrFailedToGet    = errors.New("failed to get budget")
	ErrFailedToList   = errors.New("failed to list budgets")
	ErrFailedToUpdate = errors.New("failed to update budget")
)
