package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"
)

// taskProjectResolver answers task, project and organization questions.
// Queries naming a concrete entity are answered against that entity;
// flag-only queries ("list overdue tasks") run across the whole store.
type taskProjectResolver struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewTaskProjectResolver(uowFactory unitofwork.RepositoryFactory, now func() time.Time) TaskProjectResolver {
	if now == nil {
		now = time.Now
	}
	return &taskProjectResolver{uowFactory: uowFactory, now: now}
}

func (r *taskProjectResolver) Resolve(ctx context.Context, raw string, q *nlp.ParsedQuery) (Result, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)

	switch {
	case q.OrganizationName != "":
		return r.resolveOrganization(ctx, uow, q)
	case q.ProjectName != "":
		return r.resolveProject(ctx, uow, q)
	case q.TaskName != "":
		return r.resolveTask(ctx, uow, q)
	}
	return r.resolveTaskList(ctx, uow, q, nil)
}

func (r *taskProjectResolver) resolveOrganization(ctx context.Context, uow unitofwork.UnitOfWork, q *nlp.ParsedQuery) (Result, error) {
	org, err := uow.OrganizationRepository().FindOne(ctx,
		specification.NameEqualFold{Field: "name", Name: q.OrganizationName})
	if err != nil {
		return Result{}, fmt.Errorf("organization lookup: %w", err)
	}
	if org == nil {
		return Failure(fmt.Sprintf("Could not find an organization named %q.", q.OrganizationName)), nil
	}

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: org.Id},
		specification.OrderBy{Field: "name"})
	if err != nil {
		return Result{}, fmt.Errorf("project lookup: %w", err)
	}
	if len(projects) == 0 {
		return Result{Success: true, Message: fmt.Sprintf("%s has no projects yet.", org.Name)}, nil
	}
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("%s has %d projects: %s.", org.Name, len(projects), strings.Join(names, ", ")),
		Data:    projects,
	}, nil
}

func (r *taskProjectResolver) resolveProject(ctx context.Context, uow unitofwork.UnitOfWork, q *nlp.ParsedQuery) (Result, error) {
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.NameEqualFold{Field: "name", Name: q.ProjectName})
	if err != nil {
		return Result{}, fmt.Errorf("project lookup: %w", err)
	}
	if project == nil {
		return Failure(fmt.Sprintf("Could not find a project named %q.", q.ProjectName)), nil
	}

	if q.Flags.ProjectStatus {
		return Result{
			Success: true,
			Message: fmt.Sprintf("Project %s is %s.", project.Name, statusLabel(string(project.Status))),
			Data:    project,
		}, nil
	}
	if q.Flags.AssignedEmployees {
		return r.projectAssignees(ctx, uow, project)
	}
	if q.Flags.OpenTasks || q.Flags.CompletedTasks || q.Flags.OverdueTasks || q.Flags.DueDate || q.Flags.TaskQuery {
		return r.resolveTaskList(ctx, uow, q, project)
	}

	tasks, err := uow.TaskRepository().FindAll(ctx, specification.ByProjectID{ProjectID: project.Id})
	if err != nil {
		return Result{}, fmt.Errorf("task lookup: %w", err)
	}
	open, completed, overdue := countByStatus(tasks)
	msg := fmt.Sprintf("Project %s is %s with %d tasks: %d open, %d completed, %d overdue.",
		project.Name, statusLabel(string(project.Status)), len(tasks), open, completed, overdue)
	return Result{Success: true, Message: msg, Data: project}, nil
}

func (r *taskProjectResolver) resolveTask(ctx context.Context, uow unitofwork.UnitOfWork, q *nlp.ParsedQuery) (Result, error) {
	task, err := uow.TaskRepository().FindOne(ctx,
		specification.NameEqualFold{Field: "name", Name: q.TaskName})
	if err != nil {
		return Result{}, fmt.Errorf("task lookup: %w", err)
	}
	if task == nil {
		return Failure(fmt.Sprintf("Could not find a task named %q.", q.TaskName)), nil
	}

	switch {
	case q.Flags.DueDate:
		if task.DueDate == nil {
			return Result{Success: true, Message: fmt.Sprintf("Task %s has no due date.", task.Name), Data: task}, nil
		}
		return Result{
			Success: true,
			Message: fmt.Sprintf("Task %s is due on %s.", task.Name, fmtDate(*task.DueDate)),
			Data:    task,
		}, nil
	case q.Flags.TaskSeverity:
		return Result{
			Success: true,
			Message: fmt.Sprintf("Task %s has %s severity.", task.Name, task.Severity),
			Data:    task,
		}, nil
	case q.Flags.HoursSpent:
		return Result{
			Success: true,
			Message: fmt.Sprintf("%.1f hours have been spent on task %s.", task.HoursSpent, task.Name),
			Data:    task,
		}, nil
	case q.Flags.AssignedEmployees:
		return r.taskAssignee(ctx, uow, task)
	}

	msg := fmt.Sprintf("Task %s is %s with %s severity", task.Name, task.Status, task.Severity)
	if task.DueDate != nil {
		msg += fmt.Sprintf(", due on %s", fmtDate(*task.DueDate))
	}
	return Result{Success: true, Message: msg + ".", Data: task}, nil
}

// resolveTaskList answers flag-driven task listings, optionally scoped to
// a project or to the employee the query resolved.
func (r *taskProjectResolver) resolveTaskList(ctx context.Context, uow unitofwork.UnitOfWork, q *nlp.ParsedQuery, project *entity.Project) (Result, error) {
	var specs []specification.Specification
	var scope []string

	if project != nil {
		specs = append(specs, specification.ByProjectID{ProjectID: project.Id})
		scope = append(scope, "in project "+project.Name)
	}
	if status := flaggedStatus(q); status != "" {
		specs = append(specs, specification.ByStatus{Status: string(status)})
		scope = append(scope, string(status))
	}
	if user, err := findQueriedUser(ctx, uow, q); err != nil {
		return Result{}, err
	} else if user != nil {
		specs = append(specs, specification.ByAssigneeID{AssigneeID: user.Id})
		scope = append(scope, "assigned to "+user.FullName)
	}
	if from, to, ok := q.DateWindow(r.now()); ok && q.Flags.DueDate {
		specs = append(specs, specification.DueBetween{From: from, To: to})
		scope = append(scope, fmt.Sprintf("due between %s and %s", fmtDate(from), fmtDate(to)))
	}

	tasks, err := uow.TaskRepository().FindAll(ctx, append(specs, specification.OrderBy{Field: "due_date"})...)
	if err != nil {
		return Result{}, fmt.Errorf("task lookup: %w", err)
	}

	label := "tasks"
	if len(scope) > 0 {
		label = "tasks " + strings.Join(scope, " ")
	}
	if len(tasks) == 0 {
		return Result{Success: true, Message: fmt.Sprintf("There are no %s.", label)}, nil
	}
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Found %d %s: %s.", len(tasks), label, strings.Join(names, ", ")),
		Data:    tasks,
	}, nil
}

func (r *taskProjectResolver) projectAssignees(ctx context.Context, uow unitofwork.UnitOfWork, project *entity.Project) (Result, error) {
	tasks, err := uow.TaskRepository().FindAll(ctx, specification.ByProjectID{ProjectID: project.Id})
	if err != nil {
		return Result{}, fmt.Errorf("task lookup: %w", err)
	}
	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("user lookup: %w", err)
	}
	byID := make(map[string]string, len(users))
	for _, u := range users {
		byID[u.Id.String()] = u.FullName
	}

	seen := make(map[string]struct{})
	var assignees []string
	for _, t := range tasks {
		if t.AssigneeId == nil {
			continue
		}
		key := t.AssigneeId.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if name, ok := byID[key]; ok {
			assignees = append(assignees, name)
		}
	}
	if len(assignees) == 0 {
		return Result{Success: true, Message: fmt.Sprintf("No employees are assigned to project %s.", project.Name)}, nil
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Employees assigned to project %s: %s.", project.Name, strings.Join(assignees, ", ")),
		Data:    assignees,
	}, nil
}

func (r *taskProjectResolver) taskAssignee(ctx context.Context, uow unitofwork.UnitOfWork, task *entity.Task) (Result, error) {
	if task.AssigneeId == nil {
		return Result{Success: true, Message: fmt.Sprintf("Task %s is unassigned.", task.Name), Data: task}, nil
	}
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *task.AssigneeId})
	if err != nil {
		return Result{}, fmt.Errorf("user lookup: %w", err)
	}
	if user == nil {
		return Result{Success: true, Message: fmt.Sprintf("Task %s is unassigned.", task.Name), Data: task}, nil
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Task %s is assigned to %s.", task.Name, user.FullName),
		Data:    user,
	}, nil
}

func flaggedStatus(q *nlp.ParsedQuery) entity.TaskStatus {
	switch {
	case q.Flags.OverdueTasks:
		return entity.TaskStatusOverdue
	case q.Flags.CompletedTasks:
		return entity.TaskStatusCompleted
	case q.Flags.OpenTasks:
		return entity.TaskStatusOpen
	}
	return ""
}

func countByStatus(tasks []*entity.Task) (open, completed, overdue int) {
	for _, t := range tasks {
		switch t.Status {
		case entity.TaskStatusOpen:
			open++
		case entity.TaskStatusCompleted:
			completed++
		case entity.TaskStatusOverdue:
			overdue++
		}
	}
	return open, completed, overdue
}

func statusLabel(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
