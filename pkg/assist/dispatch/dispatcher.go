package dispatch

import (
	"context"
	"strings"

	"hr-assistant-be/pkg/assist/resolver"
	"hr-assistant-be/pkg/nlp"
	"hr-assistant-be/pkg/nlp/keyword"
)

// QueryType classifies a processed turn for the history store.
type QueryType string

const (
	TypeAttendance   QueryType = "attendance"
	TypeEmployee     QueryType = "employee"
	TypeTask         QueryType = "task"
	TypeProject      QueryType = "project"
	TypeOrganization QueryType = "organization"
	TypeCombined     QueryType = "combined"
)

// MsgUnroutable is returned when no rule claims the query. The dispatcher
// never silently picks a default domain.
const MsgUnroutable = "Sorry, I could not understand that question. Try asking about attendance, tasks, projects or an employee."

// Resolvers bundles the three domain collaborators.
type Resolvers struct {
	Attendance  resolver.AttendanceResolver
	TaskProject resolver.TaskProjectResolver
	Employee    resolver.EmployeeResolver
}

// Outcome is the dispatch result: the resolver's verbatim response plus
// the classification recorded into history.
type Outcome struct {
	Result resolver.Result
	Type   QueryType
	Rule   string // name of the rule that fired, for logging
}

// rule is one row of the precedence table: evaluated top to bottom, the
// first match resolves the query. Precedence is data, not control flow.
type rule struct {
	name    string
	matches func(q *nlp.ParsedQuery, raw string) bool
	resolve func(ctx context.Context, d *Dispatcher, raw string, q *nlp.ParsedQuery) (resolver.Result, error)
	classify func(q *nlp.ParsedQuery) QueryType
}

// Dispatcher routes a parsed query to exactly one domain resolver.
type Dispatcher struct {
	resolvers Resolvers
	rules     []rule
}

func NewDispatcher(resolvers Resolvers) *Dispatcher {
	return &Dispatcher{
		resolvers: resolvers,
		rules:     precedenceTable(),
	}
}

// Dispatch walks the precedence table and invokes the first matching
// resolver, surfacing its result verbatim. When no rule matches it fails
// with an ambiguous-query result; that is an answer, not an error.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string, q *nlp.ParsedQuery) (Outcome, error) {
	for _, r := range d.rules {
		if !r.matches(q, raw) {
			continue
		}
		res, err := r.resolve(ctx, d, raw, q)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Result: res, Type: r.classify(q), Rule: r.name}, nil
	}
	return Outcome{
		Result: resolver.Failure(MsgUnroutable),
		Type:   TypeCombined,
		Rule:   "unroutable",
	}, nil
}

// taskDomainKeywords in the raw text route to the task/project resolver
// even when no flag or entity fired.
var taskDomainKeywords = []string{
	"task", "project", "organization", "organisation",
	"deadline", "due", "milestone", "sprint",
}

func precedenceTable() []rule {
	return []rule{
		{
			name: "task-project",
			matches: func(q *nlp.ParsedQuery, raw string) bool {
				if q.HasDomainReference() || q.Flags.TaskDomain() {
					return true
				}
				lower := strings.ToLower(raw)
				for _, kw := range taskDomainKeywords {
					if strings.Contains(lower, kw) {
						return true
					}
				}
				return false
			},
			resolve: func(ctx context.Context, d *Dispatcher, raw string, q *nlp.ParsedQuery) (resolver.Result, error) {
				return d.resolvers.TaskProject.Resolve(ctx, raw, q)
			},
			classify: classifyTaskProject,
		},
		{
			name: "employee-detail",
			matches: func(q *nlp.ParsedQuery, raw string) bool {
				if q.Flags.EmployeeDetails {
					return true
				}
				return q.EmpName != "" &&
					strings.Contains(strings.ToLower(raw), "info") &&
					!q.Flags.AttendanceDomain() && !q.Flags.TaskDomain()
			},
			resolve: func(ctx context.Context, d *Dispatcher, raw string, q *nlp.ParsedQuery) (resolver.Result, error) {
				return d.resolvers.Employee.Resolve(ctx, raw, q)
			},
			classify: func(*nlp.ParsedQuery) QueryType { return TypeEmployee },
		},
		{
			name: "attendance",
			matches: func(q *nlp.ParsedQuery, raw string) bool {
				return q.Flags.AttendanceDomain() || q.EmpCode != "" ||
					q.HasKeyword(keyword.KwAverage) || q.HasKeyword(keyword.KwAttendance)
			},
			resolve: func(ctx context.Context, d *Dispatcher, raw string, q *nlp.ParsedQuery) (resolver.Result, error) {
				if perEmployee(q) {
					return d.resolvers.Attendance.ResolveForEmployee(ctx, raw, q)
				}
				return d.resolvers.Attendance.Resolve(ctx, raw, q)
			},
			classify: func(*nlp.ParsedQuery) QueryType { return TypeAttendance },
		},
	}
}

// perEmployee selects the single-employee attendance variant: the query
// names one person, scopes a date window and carries an attendance cue.
func perEmployee(q *nlp.ParsedQuery) bool {
	return q.HasIdentity() && q.HasTemporalScope() && q.Flags.AttendanceDomain()
}

func classifyTaskProject(q *nlp.ParsedQuery) QueryType {
	signals := 0
	var t QueryType
	if q.TaskName != "" || q.Flags.TaskQuery || q.Flags.OpenTasks || q.Flags.CompletedTasks ||
		q.Flags.OverdueTasks || q.Flags.DueDate || q.Flags.TaskSeverity || q.Flags.HoursSpent {
		signals++
		t = TypeTask
	}
	if q.ProjectName != "" || q.ProjectID != nil || q.Flags.ProjectStatus || q.Flags.ProjectQuery {
		signals++
		t = TypeProject
	}
	if q.OrganizationName != "" || q.Flags.OrganizationProjects {
		signals++
		t = TypeOrganization
	}
	if signals > 1 {
		return TypeCombined
	}
	if signals == 0 {
		return TypeTask
	}
	return t
}
