package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QueryHistory rows are append-only; there is no UpdatedAt and no soft
// delete, deletion here means gone.
type QueryHistory struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Query          string         `gorm:"type:text;not null"`
	ParsedQuery    datatypes.JSON `gorm:"type:jsonb"`
	Response       string         `gorm:"type:text"`
	Success        bool           `gorm:"default:false"`
	ConversationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type           string         `gorm:"type:varchar(32);not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
}

func (QueryHistory) TableName() string {
	return "query_histories"
}
