package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"hr-assistant-be/pkg/assist/resolver"
	"hr-assistant-be/pkg/nlp"
	"hr-assistant-be/pkg/nlp/keyword"
)

type fakeAttendance struct {
	generic, perEmployee int
}

func (f *fakeAttendance) Resolve(context.Context, string, *nlp.ParsedQuery) (resolver.Result, error) {
	f.generic++
	return resolver.Result{Success: true, Message: "generic attendance"}, nil
}

func (f *fakeAttendance) ResolveForEmployee(context.Context, string, *nlp.ParsedQuery) (resolver.Result, error) {
	f.perEmployee++
	return resolver.Result{Success: true, Message: "per-employee attendance"}, nil
}

type fakeTaskProject struct{ calls int }

func (f *fakeTaskProject) Resolve(context.Context, string, *nlp.ParsedQuery) (resolver.Result, error) {
	f.calls++
	return resolver.Result{Success: true, Message: "task-project"}, nil
}

type fakeEmployee struct{ calls int }

func (f *fakeEmployee) Resolve(context.Context, string, *nlp.ParsedQuery) (resolver.Result, error) {
	f.calls++
	return resolver.Result{Success: true, Message: "employee"}, nil
}

func newFakes() (*Dispatcher, *fakeAttendance, *fakeTaskProject, *fakeEmployee) {
	att := &fakeAttendance{}
	tp := &fakeTaskProject{}
	emp := &fakeEmployee{}
	d := NewDispatcher(Resolvers{Attendance: att, TaskProject: tp, Employee: emp})
	return d, att, tp, emp
}

func TestDispatchTaskProjectPrecedence(t *testing.T) {
	d, att, tp, _ := newFakes()

	// a project reference wins even when an attendance keyword is present
	q := &nlp.ParsedQuery{
		ProjectName: "Atlas",
		Keywords:    []string{keyword.KwInTime},
		Flags:       keyword.Flags{InTime: true, IsAttendanceQuery: true},
	}

	out, err := d.Dispatch(context.Background(), "intime of project Atlas", q)
	if err != nil {
		t.Fatal(err)
	}
	if tp.calls != 1 || att.generic != 0 {
		t.Errorf("task-project calls = %d, attendance calls = %d", tp.calls, att.generic)
	}
	if out.Type != TypeProject {
		t.Errorf("Type = %q, want %q", out.Type, TypeProject)
	}
	if out.Rule != "task-project" {
		t.Errorf("Rule = %q", out.Rule)
	}
}

func TestDispatchEmployeeDetail(t *testing.T) {
	d, _, _, emp := newFakes()

	q := &nlp.ParsedQuery{
		EmpName:  "Ravi Kumar",
		Keywords: []string{},
		Flags:    keyword.Flags{EmployeeDetails: true},
	}

	out, err := d.Dispatch(context.Background(), "info of Ravi Kumar", q)
	if err != nil {
		t.Fatal(err)
	}
	if emp.calls != 1 {
		t.Errorf("employee calls = %d, want 1", emp.calls)
	}
	if out.Type != TypeEmployee {
		t.Errorf("Type = %q, want %q", out.Type, TypeEmployee)
	}
}

func TestDispatchAttendanceVariants(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		q               *nlp.ParsedQuery
		wantPerEmployee bool
	}{
		{
			name: "identity plus window selects per-employee",
			q: &nlp.ParsedQuery{
				EmpCode: "1024",
				UserID:  &userID,
				Dates:   []time.Time{day},
				Flags:   keyword.Flags{Late: true, IsAttendanceQuery: true},
			},
			wantPerEmployee: true,
		},
		{
			name: "no identity stays generic",
			q: &nlp.ParsedQuery{
				Dates: []time.Time{day},
				Flags: keyword.Flags{Absent: true, IsAttendanceQuery: true},
			},
		},
		{
			name: "identity without window stays generic",
			q: &nlp.ParsedQuery{
				EmpCode: "1024",
				UserID:  &userID,
				Flags:   keyword.Flags{Late: true, IsAttendanceQuery: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, att, _, _ := newFakes()
			out, err := d.Dispatch(context.Background(), "q", tt.q)
			if err != nil {
				t.Fatal(err)
			}
			if out.Type != TypeAttendance {
				t.Errorf("Type = %q, want %q", out.Type, TypeAttendance)
			}
			if tt.wantPerEmployee && (att.perEmployee != 1 || att.generic != 0) {
				t.Errorf("perEmployee = %d, generic = %d, want per-employee variant", att.perEmployee, att.generic)
			}
			if !tt.wantPerEmployee && (att.generic != 1 || att.perEmployee != 0) {
				t.Errorf("perEmployee = %d, generic = %d, want generic variant", att.perEmployee, att.generic)
			}
		})
	}
}

func TestDispatchUnroutable(t *testing.T) {
	d, att, tp, emp := newFakes()

	q := &nlp.ParsedQuery{Keywords: []string{}}
	out, err := d.Dispatch(context.Background(), "hello there", q)
	if err != nil {
		t.Fatal(err)
	}

	if att.generic+att.perEmployee+tp.calls+emp.calls != 0 {
		t.Error("no resolver should run for an unroutable query")
	}
	if out.Result.Success {
		t.Error("unroutable outcome must not be successful")
	}
	if out.Result.Message != MsgUnroutable {
		t.Errorf("Message = %q", out.Result.Message)
	}
	if out.Type != TypeCombined {
		t.Errorf("Type = %q, want %q", out.Type, TypeCombined)
	}
}

func TestDispatchRawKeywordFallback(t *testing.T) {
	d, _, tp, _ := newFakes()

	// no flags or entities, but the raw text names the task domain
	q := &nlp.ParsedQuery{Keywords: []string{}}
	out, err := d.Dispatch(context.Background(), "anything about the sprint backlog", q)
	if err != nil {
		t.Fatal(err)
	}
	if tp.calls != 1 {
		t.Errorf("task-project calls = %d, want 1", tp.calls)
	}
	if out.Type != TypeTask {
		t.Errorf("Type = %q, want %q", out.Type, TypeTask)
	}
}

func TestClassifyTaskProjectCombined(t *testing.T) {
	q := &nlp.ParsedQuery{
		ProjectName: "Atlas",
		TaskName:    "Payment Gateway",
	}
	if got := classifyTaskProject(q); got != TypeCombined {
		t.Errorf("classifyTaskProject = %q, want %q", got, TypeCombined)
	}

	org := &nlp.ParsedQuery{OrganizationName: "Initech"}
	if got := classifyTaskProject(org); got != TypeOrganization {
		t.Errorf("classifyTaskProject = %q, want %q", got, TypeOrganization)
	}
}
