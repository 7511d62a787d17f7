package memory

import (
	"context"
	"sync"
	"time"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/report/repository"
)

// implRepository serves the seeded project set. Projects are read-only in
// the current dashboard, so a RWMutex is enough.
type implRepository struct {
	mu       sync.RWMutex
	projects []model.Project
}

// New creates an in-memory project repository seeded with the sample set.
func New() repository.ProjectRepository {
	return &implRepository{projects: sampleProjects()}
}

// NewWithProjects creates a repository over the given projects. Used by
// tests and by a future import path.
func NewWithProjects(projects []model.Project) repository.ProjectRepository {
	return &implRepository{projects: projects}
}

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

// GetOneProject returns a zero-value Project (ID == "") when not found — no
// error for not-found.
func (r *implRepository) GetOneProject(ctx context.Context, id string) (model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Project{}, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleProjects is the fixed demo set the dashboard ships with.
func sampleProjects() []model.Project {
	return []model.Project{
		{
			ID:             "proj-1",
			Name:           "Website Redesign",
			Status:         model.ProjectInProgress,
			StartDate:      date(2024, time.January, 15),
			EndDate:        date(2024, time.April, 30),
			Budget:         150000,
			Spent:          140000,
			Tasks:          24,
			CompletedTasks: 20,
			TeamMembers:    4,
			Progress:       85,
		},
		{
			ID:             "proj-2",
			Name:           "Mobile App Launch",
			Status:         model.ProjectPlanning,
			StartDate:      date(2024, time.March, 1),
			EndDate:        date(2024, time.September, 30),
			Budget:         500000,
			Spent:          45000,
			Tasks:          40,
			CompletedTasks: 5,
			TeamMembers:    7,
			Progress:       12,
		},
		{
			ID:             "proj-3",
			Name:           "Inventory System Migration",
			Status:         model.ProjectCompleted,
			StartDate:      date(2023, time.October, 1),
			EndDate:        date(2024, time.February, 15),
			Budget:         300000,
			Spent:          120000,
			Tasks:          30,
			CompletedTasks: 28,
			TeamMembers:    3,
			Progress:       100,
		},
		{
			ID:             "proj-4",
			Name:           "Vendor Portal",
			Status:         model.ProjectOnHold,
			StartDate:      date(2024, time.February, 10),
			EndDate:        date(2024, time.July, 10),
			Budget:         200000,
			Spent:          60000,
			Tasks:          18,
			CompletedTasks: 6,
			TeamMembers:    5,
			Progress:       30,
		},
	}
}
