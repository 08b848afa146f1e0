package dto

import (
	"time"

	"github.com/google/uuid"

	"hr-assistant-be/pkg/nlp"
)

type ProcessQueryRequest struct {
	Query          string     `json:"query" validate:"required"`
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
}

type ProcessQueryResponse struct {
	Id             uuid.UUID        `json:"id"`
	Answer         string           `json:"answer"`
	Success        bool             `json:"success"`
	Type           string           `json:"type"`
	ConversationId uuid.UUID        `json:"conversation_id"`
	ParsedQuery    *nlp.ParsedQuery `json:"parsed_query,omitempty"`
	Data           interface{}      `json:"data,omitempty"`
}

type GetHistoryRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type HistoryItemResponse struct {
	Id             uuid.UUID        `json:"id"`
	Query          string           `json:"query"`
	Response       string           `json:"response"`
	Success        bool             `json:"success"`
	Type           string           `json:"type"`
	ConversationId uuid.UUID        `json:"conversation_id"`
	ParsedQuery    *nlp.ParsedQuery `json:"parsed_query,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

type DeleteHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}

// QueryProcessedMessage is the internal bus payload emitted after a turn
// is appended to history.
type QueryProcessedMessage struct {
	HistoryId uuid.UUID `json:"history_id"`
}
