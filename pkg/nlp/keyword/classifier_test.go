package keyword

import (
	"strings"
	"testing"

	"hr-assistant-be/pkg/nlp/token"
)

func classify(t *testing.T, text string) Result {
	t.Helper()
	c := NewClassifier()
	return c.Classify(text, token.Tokenize(text))
}

func TestClassifyTokenTable(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKws  []string
		wantFlag func(Flags) bool
	}{
		{
			name:     "clock-in synonyms map to intime",
			text:     "when did ravi clockin today",
			wantKws:  []string{KwInTime},
			wantFlag: func(f Flags) bool { return f.InTime && f.IsAttendanceQuery },
		},
		{
			name:     "login maps to intime",
			text:     "login time of 1024",
			wantKws:  []string{KwInTime},
			wantFlag: func(f Flags) bool { return f.InTime },
		},
		{
			name:     "absent",
			text:     "who was absent yesterday",
			wantKws:  []string{KwAbsent},
			wantFlag: func(f Flags) bool { return f.Absent && f.IsAttendanceQuery },
		},
		{
			name:     "open tasks",
			text:     "list open tasks",
			wantKws:  []string{KwOpen, KwTask},
			wantFlag: func(f Flags) bool { return f.OpenTasks && f.TaskQuery },
		},
		{
			name:     "deadline maps to due",
			text:     "what is the deadline of task Atlas",
			wantKws:  []string{KwDue, KwTask},
			wantFlag: func(f Flags) bool { return f.DueDate && f.TaskQuery },
		},
		{
			name:     "priority maps to severity",
			text:     "priority of task data migration",
			wantKws:  []string{KwSeverity, KwTask},
			wantFlag: func(f Flags) bool { return f.TaskSeverity },
		},
		{
			name:     "leave",
			text:     "is priya on holiday",
			wantKws:  []string{KwLeave},
			wantFlag: func(f Flags) bool { return f.LeaveQuery && f.IsAttendanceQuery },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := classify(t, tt.text)
			for _, kw := range tt.wantKws {
				if !res.Has(kw) {
					t.Errorf("Keywords = %v, missing %q", res.Keywords, kw)
				}
			}
			if !tt.wantFlag(res.Flags) {
				t.Errorf("flags not raised for %q: %+v", tt.text, res.Flags)
			}
		})
	}
}

func TestClassifyPhraseRules(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantFlag func(Flags) bool
	}{
		{
			name:     "after 10",
			text:     "who logged in after 10 am",
			wantFlag: func(f Flags) bool { return f.AfterTenAM },
		},
		{
			name:     "minutes late",
			text:     "how many minutes late was ravi",
			wantFlag: func(f Flags) bool { return f.MinutesLate && f.Late },
		},
		{
			name:     "on leave",
			text:     "who is on leave this week",
			wantFlag: func(f Flags) bool { return f.LeaveQuery },
		},
		{
			name:     "due date",
			text:     "due date of task payment gateway",
			wantFlag: func(f Flags) bool { return f.DueDate },
		},
		{
			name:     "hours spent",
			text:     "hours spent on task data migration",
			wantFlag: func(f Flags) bool { return f.HoursSpent },
		},
		{
			name:     "assigned to",
			wantFlag: func(f Flags) bool { return f.AssignedEmployees },
			text:     "tasks assigned to priya",
		},
		{
			name:     "info of raises employee details",
			text:     "info of ravi kumar",
			wantFlag: func(f Flags) bool { return f.EmployeeDetails },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := classify(t, tt.text)
			if !tt.wantFlag(res.Flags) {
				t.Errorf("flags not raised for %q: %+v", tt.text, res.Flags)
			}
		})
	}
}

func TestClassifyCombinationRules(t *testing.T) {
	t.Run("average plus intime", func(t *testing.T) {
		res := classify(t, "average login time last month")
		if !res.Flags.AverageInTime {
			t.Errorf("AverageInTime not raised: %+v", res.Flags)
		}
	})

	t.Run("organization plus project", func(t *testing.T) {
		res := classify(t, "projects under organization Initech")
		if !res.Flags.OrganizationProjects {
			t.Errorf("OrganizationProjects not raised: %+v", res.Flags)
		}
	})

	t.Run("status plus project without task", func(t *testing.T) {
		res := classify(t, "status of project Atlas")
		if !res.Flags.ProjectStatus {
			t.Errorf("ProjectStatus not raised: %+v", res.Flags)
		}
	})

	t.Run("status with task stays task status", func(t *testing.T) {
		res := classify(t, "status of task login page redesign in project Atlas")
		if res.Flags.ProjectStatus {
			t.Errorf("ProjectStatus raised, want task-level status only")
		}
		if !res.Flags.TaskStatus {
			t.Errorf("TaskStatus not raised: %+v", res.Flags)
		}
	})
}

func TestClassifyKeywordOrderAndDedup(t *testing.T) {
	res := classify(t, "late late open tasks open")
	joined := strings.Join(res.Keywords, ",")
	if joined != "late,open,task" {
		t.Errorf("Keywords = %q, want first-occurrence order without duplicates", joined)
	}
}

func TestClassifyDomainBuckets(t *testing.T) {
	attendance := classify(t, "who was late yesterday")
	if !attendance.Flags.AttendanceDomain() || attendance.Flags.TaskDomain() {
		t.Errorf("attendance query misbucketed: %+v", attendance.Flags)
	}

	task := classify(t, "list overdue tasks")
	if !task.Flags.TaskDomain() || task.Flags.AttendanceDomain() {
		t.Errorf("task query misbucketed: %+v", task.Flags)
	}
}

func TestIsVocabulary(t *testing.T) {
	c := NewClassifier()
	for _, w := range []string{"late", "clockin", "task", "intime"} {
		if !c.IsVocabulary(w) {
			t.Errorf("IsVocabulary(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"ravi", "atlas", "monday"} {
		if c.IsVocabulary(w) {
			t.Errorf("IsVocabulary(%q) = true, want false", w)
		}
	}
}
