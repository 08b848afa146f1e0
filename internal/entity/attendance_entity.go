package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is one employee-day. InTime/OutTime are nil on absent
// and leave days.
type AttendanceRecord struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Date        time.Time
	InTime      *time.Time
	OutTime     *time.Time
	Present     bool
	OnLeave     bool
	Late        bool
	MinutesLate int
	WorkedHours float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
