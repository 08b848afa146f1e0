package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByConversationID filters history rows of one conversation
type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// DateBetween filters an inclusive calendar window
type DateBetween struct {
	From time.Time
	To   time.Time
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date BETWEEN ? AND ?", s.From, s.To)
}

// DueBetween filters tasks due inside an inclusive window
type DueBetween struct {
	From time.Time
	To   time.Time
}

func (s DueBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("due_date BETWEEN ? AND ?", s.From, s.To)
}

// LateOnly keeps only late attendance rows
type LateOnly struct{}

func (s LateOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("late = ?", true)
}

// ByStatus filters by a status column value
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByProjectID filters tasks of one project
type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

// ByAssigneeID filters tasks assigned to one user
type ByAssigneeID struct {
	AssigneeID uuid.UUID
}

func (s ByAssigneeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assignee_id = ?", s.AssigneeID)
}

// ByOrganizationID filters projects of one organization
type ByOrganizationID struct {
	OrganizationID uuid.UUID
}

func (s ByOrganizationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.OrganizationID)
}
