package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string     `gorm:"type:varchar(255);not null;index"`
	ProjectId  *uuid.UUID `gorm:"type:uuid;index"`
	AssigneeId *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"type:varchar(32);not null;default:'open';index"`
	Severity   string     `gorm:"type:varchar(32);not null;default:'medium'"`
	DueDate    *time.Time `gorm:"type:date;index"`
	HoursSpent float64    `gorm:"default:0"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Task) TableName() string {
	return "tasks"
}
