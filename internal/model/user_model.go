package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	FullName    string    `gorm:"type:varchar(255);not null;index"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Designation string    `gorm:"type:varchar(128)"`
	Department  string    `gorm:"type:varchar(128)"`
	Status      string    `gorm:"type:varchar(32);not null;default:'active'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
