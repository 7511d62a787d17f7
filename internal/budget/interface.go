package budget

import "context"

// UseCase defines the business logic interface for the budget domain.
type UseCase interface {
	// Create builds a new budget: generated id, zeroed category spend,
	// active status. Client-side only in the source app; here it goes
	// through the repository (in-memory by default).
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	List(ctx context.Context) (ListOutput, error)

	// Detail returns one budget with every derived metric recomputed.
	Detail(ctx context.Context, id string) (DetailOutput, error)

	// Category mutations on an existing budget.
	AddCategory(ctx context.Context, input AddCategoryInput) (DetailOutput, error)
	UpdateCategory(ctx context.Context, input UpdateCategoryInput) (DetailOutput, error)
	DeleteCategory(ctx context.Context, budgetID, name string) (DetailOutput, error)

	// ExportReport produces the downloadable report document and its filename.
	ExportReport(ctx context.Context, id string) (ExportOutput, error)
}
