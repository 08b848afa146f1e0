package implementation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/mapper"
	"hr-assistant-be/internal/model"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"
)

type QueryHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QueryHistoryMapper
}

func NewQueryHistoryRepository(db *gorm.DB) contract.QueryHistoryRepository {
	return &QueryHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewQueryHistoryMapper(),
	}
}

func (r *QueryHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Errors from this repository are wrapped as store errors so the service
// can tell "storage down" apart from "no rows", which Find never reports
// as an error.
func storeErr(err error) error {
	return fmt.Errorf("query history store: %w", err)
}

func (r *QueryHistoryRepositoryImpl) Create(ctx context.Context, record *entity.QueryHistory) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeErr(err)
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueryHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QueryHistory, error) {
	var models []*model.QueryHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, storeErr(err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QueryHistoryRepositoryImpl) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.QueryHistory{}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *QueryHistoryRepositoryImpl) DeleteByConversation(ctx context.Context, conversationId uuid.UUID) error {
	// deleting a conversation nobody wrote to is a no-op, not an error
	if err := r.db.WithContext(ctx).Where("conversation_id = ?", conversationId).Delete(&model.QueryHistory{}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *QueryHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.QueryHistory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
