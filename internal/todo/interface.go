package todo

import "context"

// UseCase defines the business logic interface for the todo domain.
type UseCase interface {
	// List fetches all records from the task store and applies the
	// in-memory filter triple (status / search / category).
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Create validates the title, consults the tier gate, and sends the new
	// record to the task store. Tier usage is incremented only on success.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Update sends the full edited record to the task store.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Toggle flips the completion flag, sending only the derived status
	// field upstream. The store's response body is ignored: on success the
	// local projection is mutated independently.
	Toggle(ctx context.Context, id string) (ToggleOutput, error)

	// Delete drops the record from the caller's projection. It deliberately
	// performs no store call; the upstream record survives.
	Delete(ctx context.Context, id string) error

	// Stats computes total/completed/pending/overdue over the store's records.
	Stats(ctx context.Context) (StatsOutput, error)
}
