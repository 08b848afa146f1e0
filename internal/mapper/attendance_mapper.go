package mapper

import (
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"
)

type AttendanceMapper struct{}

func NewAttendanceMapper() *AttendanceMapper {
	return &AttendanceMapper{}
}

func (m *AttendanceMapper) ToEntity(r *model.AttendanceRecord) *entity.AttendanceRecord {
	if r == nil {
		return nil
	}
	return &entity.AttendanceRecord{
		Id:          r.Id,
		UserId:      r.UserId,
		Date:        r.Date,
		InTime:      r.InTime,
		OutTime:     r.OutTime,
		Present:     r.Present,
		OnLeave:     r.OnLeave,
		Late:        r.Late,
		MinutesLate: r.MinutesLate,
		WorkedHours: r.WorkedHours,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *AttendanceMapper) ToModel(r *entity.AttendanceRecord) *model.AttendanceRecord {
	if r == nil {
		return nil
	}
	return &model.AttendanceRecord{
		Id:          r.Id,
		UserId:      r.UserId,
		Date:        r.Date,
		InTime:      r.InTime,
		OutTime:     r.OutTime,
		Present:     r.Present,
		OnLeave:     r.OnLeave,
		Late:        r.Late,
		MinutesLate: r.MinutesLate,
		WorkedHours: r.WorkedHours,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *AttendanceMapper) ToEntities(models []*model.AttendanceRecord) []*entity.AttendanceRecord {
	entities := make([]*entity.AttendanceRecord, len(models))
	for i, r := range models {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
