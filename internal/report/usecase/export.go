package usecase

import (
	"context"
	"fmt"
	"strings"

	"karobar-dashboard/internal/report"
	"karobar-dashboard/pkg/response"
)

const reportType = "Project Summary Report"

// ExportReport builds the downloadable project report. The filename is the
// project name lower-cased with whitespace collapsed to hyphens.
func (uc *implUseCase) ExportReport(ctx context.Context, id string) (report.ExportOutput, error) {
	p, err := uc.loadProject(ctx, id)
	if err != nil {
		return report.ExportOutput{}, err
	}

	return report.ExportOutput{
		Filename: fmt.Sprintf("%s-report.json", slugify(p.Name)),
		Document: report.Document{
			Project:    p,
			ReportType: reportType,
			DateRange: fmt.Sprintf("%s to %s",
				p.StartDate.Format(response.DateFormat),
				p.EndDate.Format(response.DateFormat)),
			GeneratedAt:     uc.now(),
			Summary:         summarize(p),
			Recommendations: recommend(p),
		},
	}, nil
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
