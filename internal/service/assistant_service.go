package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/assist/dispatch"
	"hr-assistant-be/pkg/nlp"
)

// DefaultHistoryLimit is what the HTTP layer asks for when the caller
// sends no limit at all. An explicit limit outside [1,100], including 0,
// is a validation error, never a silent default.
const DefaultHistoryLimit = 20

var (
	ErrEmptyQuery   = errors.New("query must not be empty")
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")
)

type IAssistantService interface {
	ProcessQuery(ctx context.Context, req *dto.ProcessQueryRequest) (*dto.ProcessQueryResponse, error)
	GetQueryHistory(ctx context.Context, limit int) ([]*dto.HistoryItemResponse, error)
	ClearQueryHistory(ctx context.Context) (*dto.DeleteHistoryResponse, error)
	DeleteConversation(ctx context.Context, conversationId uuid.UUID) (*dto.DeleteHistoryResponse, error)
}

type assistantService struct {
	uowFactory       unitofwork.RepositoryFactory
	pipeline         *nlp.Pipeline
	dispatcher       *dispatch.Dispatcher
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	pipeline *nlp.Pipeline,
	dispatcher *dispatch.Dispatcher,
	publisherService IPublisherService,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory:       uowFactory,
		pipeline:         pipeline,
		dispatcher:       dispatcher,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *assistantService) ProcessQuery(ctx context.Context, req *dto.ProcessQueryRequest) (*dto.ProcessQueryResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	parsed, err := s.pipeline.Parse(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}

	outcome, err := s.dispatcher.Dispatch(ctx, query, parsed)
	if err != nil {
		return nil, fmt.Errorf("dispatch query: %w", err)
	}

	conversationId := uuid.New()
	if req.ConversationId != nil {
		conversationId = *req.ConversationId
	}

	record := &entity.QueryHistory{
		Id:             uuid.New(),
		Query:          query,
		ParsedQuery:    parsed,
		Response:       outcome.Result.Message,
		Success:        outcome.Result.Success,
		ConversationId: conversationId,
		Type:           string(outcome.Type),
		CreatedAt:      time.Now(),
	}

	// The answer is already computed; a failed append must not lose it.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.QueryHistoryRepository().Create(ctx, record); err != nil {
		s.logger.Error("assistant", "failed to append query history", map[string]interface{}{
			"error":           err.Error(),
			"conversation_id": conversationId,
		})
	} else {
		s.publishProcessed(ctx, record.Id)
	}

	return &dto.ProcessQueryResponse{
		Id:             record.Id,
		Answer:         outcome.Result.Message,
		Success:        outcome.Result.Success,
		Type:           string(outcome.Type),
		ConversationId: conversationId,
		ParsedQuery:    parsed,
		Data:           outcome.Result.Data,
	}, nil
}

func (s *assistantService) publishProcessed(ctx context.Context, historyId uuid.UUID) {
	payload, err := json.Marshal(dto.QueryProcessedMessage{HistoryId: historyId})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("assistant", "failed to publish query processed message", map[string]interface{}{
			"error":      err.Error(),
			"history_id": historyId,
		})
	}
}

func (s *assistantService) GetQueryHistory(ctx context.Context, limit int) ([]*dto.HistoryItemResponse, error) {
	if limit < 1 || limit > 100 {
		return nil, ErrInvalidLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.QueryHistoryRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.HistoryItemResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, &dto.HistoryItemResponse{
			Id:             rec.Id,
			Query:          rec.Query,
			Response:       rec.Response,
			Success:        rec.Success,
			Type:           rec.Type,
			ConversationId: rec.ConversationId,
			ParsedQuery:    rec.ParsedQuery,
			CreatedAt:      rec.CreatedAt,
		})
	}
	return items, nil
}

func (s *assistantService) ClearQueryHistory(ctx context.Context) (*dto.DeleteHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.QueryHistoryRepository()

	count, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if err := repo.DeleteAll(ctx); err != nil {
		return nil, err
	}
	return &dto.DeleteHistoryResponse{Deleted: count}, nil
}

func (s *assistantService) DeleteConversation(ctx context.Context, conversationId uuid.UUID) (*dto.DeleteHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.QueryHistoryRepository()

	count, err := repo.Count(ctx, specification.ByConversationID{ConversationID: conversationId})
	if err != nil {
		return nil, err
	}
	if err := repo.DeleteByConversation(ctx, conversationId); err != nil {
		return nil, err
	}
	return &dto.DeleteHistoryResponse{Deleted: count}, nil
}
