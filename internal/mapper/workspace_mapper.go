package mapper

import (
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"
)

// WorkspaceMapper covers the task/project/organization aggregates.
type WorkspaceMapper struct{}

func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{}
}

func (m *WorkspaceMapper) OrganizationToEntity(o *model.Organization) *entity.Organization {
	if o == nil {
		return nil
	}
	return &entity.Organization{
		Id:        o.Id,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (m *WorkspaceMapper) OrganizationToModel(o *entity.Organization) *model.Organization {
	if o == nil {
		return nil
	}
	return &model.Organization{
		Id:        o.Id,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (m *WorkspaceMapper) ProjectToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:             p.Id,
		Name:           p.Name,
		Status:         entity.ProjectStatus(p.Status),
		OrganizationId: p.OrganizationId,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *WorkspaceMapper) ProjectToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:             p.Id,
		Name:           p.Name,
		Status:         string(p.Status),
		OrganizationId: p.OrganizationId,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *WorkspaceMapper) ProjectsToEntities(models []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(models))
	for i, p := range models {
		entities[i] = m.ProjectToEntity(p)
	}
	return entities
}

func (m *WorkspaceMapper) TaskToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}
	return &entity.Task{
		Id:         t.Id,
		Name:       t.Name,
		ProjectId:  t.ProjectId,
		AssigneeId: t.AssigneeId,
		Status:     entity.TaskStatus(t.Status),
		Severity:   entity.TaskSeverity(t.Severity),
		DueDate:    t.DueDate,
		HoursSpent: t.HoursSpent,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (m *WorkspaceMapper) TaskToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}
	return &model.Task{
		Id:         t.Id,
		Name:       t.Name,
		ProjectId:  t.ProjectId,
		AssigneeId: t.AssigneeId,
		Status:     string(t.Status),
		Severity:   string(t.Severity),
		DueDate:    t.DueDate,
		HoursSpent: t.HoursSpent,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (m *WorkspaceMapper) TasksToEntities(models []*model.Task) []*entity.Task {
	entities := make([]*entity.Task, len(models))
	for i, t := range models {
		entities[i] = m.TaskToEntity(t)
	}
	return entities
}
