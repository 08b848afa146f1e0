package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is an employee record. Code is the numeric badge code queries refer
// to ("was 1024 late yesterday").
type User struct {
	Id          uuid.UUID
	Code        string
	FullName    string
	Email       string
	Designation string
	Department  string
	Status      UserStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
