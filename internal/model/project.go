package model

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on-hold"
)

// Project is a reported project. All fields are independently supplied:
// Progress is NOT derived from CompletedTasks/Tasks — the two may disagree
// and both are surfaced.
type Project struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Status         ProjectStatus `json:"status"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        time.Time     `json:"endDate"`
	Budget         float64       `json:"budget"`
	Spent          float64       `json:"spent"`
	Tasks          int           `json:"tasks"`
	CompletedTasks int           `json:"completedTasks"`
	TeamMembers    int           `json:"teamMembers"`
	Progress       float64       `json:"progress"`
}
