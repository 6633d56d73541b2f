package domain

import "time"

// ProjectStatus tracks delivery progress of an engagement.
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project is an administrator-managed engagement record.
type Project struct {
	ID        string
	Name      string
	Client    string
	Type      string
	Status    ProjectStatus
	Progress  int
	StartDate string
	EndDate   string
	Value     string
	CreatedAt time.Time
}
