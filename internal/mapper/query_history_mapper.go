package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"
	"hr-assistant-be/pkg/nlp"
)

type QueryHistoryMapper struct{}

func NewQueryHistoryMapper() *QueryHistoryMapper {
	return &QueryHistoryMapper{}
}

func (m *QueryHistoryMapper) ToEntity(h *model.QueryHistory) *entity.QueryHistory {
	if h == nil {
		return nil
	}

	var parsed *nlp.ParsedQuery
	if len(h.ParsedQuery) > 0 {
		var q nlp.ParsedQuery
		if err := json.Unmarshal(h.ParsedQuery, &q); err == nil {
			parsed = &q
		}
		// an unreadable snapshot degrades to nil rather than failing the read
	}

	return &entity.QueryHistory{
		Id:             h.Id,
		Query:          h.Query,
		ParsedQuery:    parsed,
		Response:       h.Response,
		Success:        h.Success,
		ConversationId: h.ConversationId,
		Type:           h.Type,
		CreatedAt:      h.CreatedAt,
	}
}

func (m *QueryHistoryMapper) ToModel(h *entity.QueryHistory) *model.QueryHistory {
	if h == nil {
		return nil
	}

	var snapshot datatypes.JSON
	if h.ParsedQuery != nil {
		if raw, err := json.Marshal(h.ParsedQuery); err == nil {
			snapshot = raw
		}
	}

	return &model.QueryHistory{
		Id:             h.Id,
		Query:          h.Query,
		ParsedQuery:    snapshot,
		Response:       h.Response,
		Success:        h.Success,
		ConversationId: h.ConversationId,
		Type:           h.Type,
		CreatedAt:      h.CreatedAt,
	}
}

func (m *QueryHistoryMapper) ToEntities(models []*model.QueryHistory) []*entity.QueryHistory {
	entities := make([]*entity.QueryHistory, len(models))
	for i, h := range models {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
