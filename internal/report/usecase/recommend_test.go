package usecase

import (
	"strings"
	"testing"

	"karobar-dashboard/internal/model"
)

func TestRecommendationsQuietPlanningProject(t *testing.T) {
	// Low burn, low completion, small team, not in progress: nothing fires.
	p := model.Project{
		Status:         model.ProjectPlanning,
		Budget:         25000,
		Spent:          2000,
		Tasks:          15,
		CompletedTasks: 3,
		TeamMembers:    3,
	}
	if recs := recommend(p); len(recs) != 0 {
		t.Errorf("expected no recommendations, got %v", recs)
	}
}

func TestRecommendationsTeamSizeOnly(t *testing.T) {
	p := model.Project{
		Status:         model.ProjectPlanning,
		Budget:         25000,
		Spent:          2000,
		Tasks:          15,
		CompletedTasks: 3,
		TeamMembers:    6,
	}
	recs := recommend(p)
	if len(recs) != 1 {
		t.Fatalf("expected exactly one recommendation, got %v", recs)
	}
	if !strings.Contains(recs[0], "team") {
		t.Errorf("expected the team-size warning, got %q", recs[0])
	}
}

func TestRecommendationsHighBurn(t *testing.T) {
	p := model.Project{
		Status:         model.ProjectInProgress,
		Budget:         100000,
		Spent:          95000, // 95% utilization
		Tasks:          20,
		CompletedTasks: 10, // 50% completion
		TeamMembers:    4,
	}
	recs := recommend(p)
	if len(recs) != 1 || !strings.Contains(recs[0], "Budget") {
		t.Errorf("expected only the budget-exhaustion warning, got %v", recs)
	}
}

func TestRecommendationsNearCompletionAndUnderSpend(t *testing.T) {
	p := model.Project{
		Status:         model.ProjectInProgress,
		Budget:         100000,
		Spent:          30000, // 30% utilization
		Tasks:          20,
		CompletedTasks: 17, // 85% completion
		TeamMembers:    4,
	}
	recs := recommend(p)
	if len(recs) != 2 {
		t.Fatalf("expected two recommendations, got %v", recs)
	}
	// Fixed rule order: nearing-completion before under-spend.
	if !strings.Contains(recs[0], "nearing completion") {
		t.Errorf("recs[0] = %q, want nearing-completion message", recs[0])
	}
	if !strings.Contains(recs[1], "over-allocated") {
		t.Errorf("recs[1] = %q, want under-spend message", recs[1])
	}
}

// The budget-exhaustion and under-spend rules can never both fire for one
// utilization/completion pair.
func TestBudgetRulesMutuallyExclusive(t *testing.T) {
	utils := []float64{0, 30, 49.9, 50, 75, 90, 90.1, 95, 120}
	rates := []float64{0, 50, 69.9, 70, 70.1, 80, 89.9, 90, 100}

	for _, u := range utils {
		for _, r := range rates {
			rule1 := u > 90 && r < 90
			rule3 := u < 50 && r > 70
			if rule1 && rule3 {
				t.Errorf("both budget rules fire at utilization=%v completion=%v", u, r)
			}
		}
	}
}
