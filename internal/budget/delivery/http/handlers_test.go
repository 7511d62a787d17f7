package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/budget"
	"karobar-dashboard/internal/model"
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

// mockUseCase returns canned outputs per method.
type mockUseCase struct {
	detailOut budget.DetailOutput
	detailErr error
	exportOut budget.ExportOutput
	exportErr error
}

func (m *mockUseCase) Create(ctx context.Context, input budget.CreateInput) (budget.CreateOutput, error) {
	return budget.CreateOutput{}, nil
}

func (m *mockUseCase) List(ctx context.Context) (budget.ListOutput, error) {
	return budget.ListOutput{}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (budget.DetailOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) AddCategory(ctx context.Context, input budget.AddCategoryInput) (budget.DetailOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) UpdateCategory(ctx context.Context, input budget.UpdateCategoryInput) (budget.DetailOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) DeleteCategory(ctx context.Context, budgetID, name string) (budget.DetailOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) ExportReport(ctx context.Context, id string) (budget.ExportOutput, error) {
	return m.exportOut, m.exportErr
}

func newTestRouter(uc budget.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc))
	return r
}

func TestDetailNotFoundStatus(t *testing.T) {
	r := newTestRouter(&mockUseCase{detailErr: budget.ErrBudgetNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/budgets/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCreateValidationStatus(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	// Malformed body binds to zero values; the usecase mock accepts it, so
	// exercise the bind failure path with invalid JSON instead.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestExportReportDownloadHeaders(t *testing.T) {
	uc := &mockUseCase{
		exportOut: budget.ExportOutput{
			Filename: "ops-budget-report.json",
			Report: budget.Report{
				Budget:     model.Budget{ID: "b1", Name: "Ops", TotalAmount: 1000},
				TotalSpent: 400,
				Variance:   600,
			},
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/budgets/b1/report", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "ops-budget-report.json") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	var doc budget.Report
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode attachment: %v", err)
	}
	if doc.Budget.ID != "b1" || doc.Variance != 600 {
		t.Errorf("unexpected document: %+v", doc)
	}
}
