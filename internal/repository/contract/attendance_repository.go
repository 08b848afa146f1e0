package contract

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record *entity.AttendanceRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AttendanceRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
