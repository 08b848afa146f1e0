package implementation

import (
	"context"

	"gorm.io/gorm"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/mapper"
	"hr-assistant-be/internal/model"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"
)

type AttendanceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AttendanceMapper
}

func NewAttendanceRepository(db *gorm.DB) contract.AttendanceRepository {
	return &AttendanceRepositoryImpl{
		db:     db,
		mapper: mapper.NewAttendanceMapper(),
	}
}

func (r *AttendanceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, record *entity.AttendanceRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *AttendanceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AttendanceRecord, error) {
	var models []*model.AttendanceRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AttendanceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AttendanceRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
