package repository

import "errors"

var (
	ErrFailedToList = errors.New("failed to list projects")
	ErrFailedToGet  = errors.New("failed to get project")
)
