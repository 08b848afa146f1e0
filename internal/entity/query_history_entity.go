package entity

import (
	"time"

	"github.com/google/uuid"

	"hr-assistant-be/pkg/nlp"
)

// QueryHistory is one processed assistant turn. Records are immutable
// once appended; they are only ever read or deleted.
type QueryHistory struct {
	Id             uuid.UUID
	Query          string
	ParsedQuery    *nlp.ParsedQuery
	Response       string
	Success        bool
	ConversationId uuid.UUID
	Type           string
	CreatedAt      time.Time
}
