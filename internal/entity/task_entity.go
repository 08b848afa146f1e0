package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "open"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusOverdue   TaskStatus = "overdue"
)

type TaskSeverity string

const (
	TaskSeverityLow      TaskSeverity = "low"
	TaskSeverityMedium   TaskSeverity = "medium"
	TaskSeverityHigh     TaskSeverity = "high"
	TaskSeverityCritical TaskSeverity = "critical"
)

type Task struct {
	Id         uuid.UUID
	Name       string
	ProjectId  *uuid.UUID
	AssigneeId *uuid.UUID
	Status     TaskStatus
	Severity   TaskSeverity
	DueDate    *time.Time
	HoursSpent float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
