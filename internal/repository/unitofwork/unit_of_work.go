package unitofwork

import (
	"context"

	"hr-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AttendanceRepository() contract.AttendanceRepository
	OrganizationRepository() contract.OrganizationRepository
	ProjectRepository() contract.ProjectRepository
	TaskRepository() contract.TaskRepository
	QueryHistoryRepository() contract.QueryHistoryRepository
}
