package contract

import (
	"context"

	"github.com/google/uuid"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
)

type QueryHistoryRepository interface {
	Create(ctx context.Context, record *entity.QueryHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QueryHistory, error)
	DeleteAll(ctx context.Context) error
	DeleteByConversation(ctx context.Context, conversationId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
