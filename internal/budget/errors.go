package budget

import "errors"

// Domain-specific errors for the budget package.
var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrEmptyName         = errors.New("budget name is required")
	ErrInvalidAmount     = errors.New("budget amount must be positive")
	ErrNoCategories      = errors.New("at least one category is required")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category name already exists")
)
