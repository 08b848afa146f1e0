package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	Id             uuid.UUID
	Name           string
	Status         ProjectStatus
	OrganizationId *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
