package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to fetch tasks from store")
	ErrFailedToCreate = errors.New("failed to create task in store")
	ErrFailedToUpdate = errors.New("failed to update task in store")
)
