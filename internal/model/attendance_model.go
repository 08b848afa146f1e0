package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRecord struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_user_date"`
	Date        time.Time `gorm:"type:date;not null;index:idx_attendance_user_date"`
	InTime      *time.Time
	OutTime     *time.Time
	Present     bool    `gorm:"default:false"`
	OnLeave     bool    `gorm:"default:false"`
	Late        bool    `gorm:"default:false;index"`
	MinutesLate int     `gorm:"default:0"`
	WorkedHours float64 `gorm:"default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
