package report

import "context"

// UseCase defines the business logic interface for the report domain.
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)

	// Detail returns one project with its derived summary metrics and
	// recommendation list.
	Detail(ctx context.Context, id string) (DetailOutput, error)

	// ExportReport produces the downloadable report document and its filename.
	ExportReport(ctx context.Context, id string) (ExportOutput, error)
}
