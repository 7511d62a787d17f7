package usecase

import (
	"context"
	"fmt"
	"strings"

	"karobar-dashboard/internal/budget"
)

// ExportReport builds the downloadable report document. The filename is the
// budget name lower-cased with whitespace collapsed to hyphens.
func (uc *implUseCase) ExportReport(ctx context.Context, id string) (budget.ExportOutput, error) {
	b, err := uc.loadBudget(ctx, id)
	if err != nil {
		return budget.ExportOutput{}, err
	}

	return budget.ExportOutput{
		Filename: fmt.Sprintf("%s-budget-report.json", slugify(b.Name)),
		Report: budget.Report{
			Budget:      b,
			TotalSpent:  totalSpent(b),
			Variance:    variance(b),
			GeneratedAt: uc.now(),
		},
	}, nil
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
