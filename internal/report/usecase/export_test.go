package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/report"
	"karobar-dashboard/internal/report/repository/memory"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func testProject() model.Project {
	return model.Project{
		ID:             "proj-9",
		Name:           "Karachi Expansion",
		Status:         model.ProjectInProgress,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Budget:         80000,
		Spent:          20000,
		Tasks:          10,
		CompletedTasks: 8,
		TeamMembers:    4,
		Progress:       75,
	}
}

func TestExportReport(t *testing.T) {
	uc := New(memory.NewWithProjects([]model.Project{testProject()}), &mockLogger{})
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }

	out, err := uc.ExportReport(context.Background(), "proj-9")
	if err != nil {
		t.Fatalf("ExportReport: %v", err)
	}

	if out.Filename != "karachi-expansion-report.json" {
		t.Errorf("filename = %q", out.Filename)
	}
	doc := out.Document
	if doc.ReportType != "Project Summary Report" {
		t.Errorf("reportType = %q", doc.ReportType)
	}
	if doc.DateRange != "2024-01-01 to 2024-06-30" {
		t.Errorf("dateRange = %q", doc.DateRange)
	}
	if doc.Summary.BudgetUtilization != 25 || doc.Summary.CompletionRate != 80 {
		t.Errorf("summary = %+v", doc.Summary)
	}
	// 25% utilization + 80% completion: under-spend rule needs > 70, so it
	// fires; nearing-completion needs > 80, so it does not.
	if len(doc.Recommendations) != 1 {
		t.Errorf("recommendations = %v", doc.Recommendations)
	}

	// The document must round-trip as JSON with the project unmodified.
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	var back report.Document
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	if back.Project != testProject() {
		t.Errorf("project did not survive round trip: %+v", back.Project)
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := New(memory.NewWithProjects(nil), &mockLogger{})
	if _, err := uc.Detail(context.Background(), "missing"); err != report.ErrProjectNotFound {
		t.Errorf("Detail err = %v, want ErrProjectNotFound", err)
	}
	if _, err := uc.ExportReport(context.Background(), "missing"); err != report.ErrProjectNotFound {
		t.Errorf("ExportReport err = %v, want ErrProjectNotFound", err)
	}
}

func TestListSeededProjects(t *testing.T) {
	uc := New(memory.New(), &mockLogger{})
	out, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total == 0 || len(out.Projects) != out.Total {
		t.Errorf("unexpected list output: total=%d projects=%d", out.Total, len(out.Projects))
	}
	for _, p := range out.Projects {
		if p.ID == "" || p.Name == "" {
			t.Errorf("seeded project missing identity: %+v", p)
		}
	}
}
