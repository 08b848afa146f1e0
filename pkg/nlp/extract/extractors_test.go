package extract

import (
	"testing"

	"hr-assistant-be/pkg/nlp/token"
)

// thin keyword check for the extractor tests, mirroring the classifier
// vocabulary closely enough to exercise the stop conditions
func testIsKeyword(w string) bool {
	switch w {
	case "late", "intime", "outtime", "attendance", "absent", "present",
		"task", "tasks", "project", "projects", "status", "info", "details",
		"open", "completed", "overdue", "due", "hours", "leave":
		return true
	}
	return false
}

func TestExtractEmployeeCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare code", "was 1024 late today", "1024"},
		{"no code", "was ravi late today", ""},
		{"short number ignored", "top 5 late employees", ""},
		{"first qualifying code wins", "compare 1024 and 2048", "1024"},
		{"prefixed token is not a code", "was EMP1024 late today", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEmployeeCode(token.Tokenize(tt.text), NewClaimSet())
			if got != tt.want {
				t.Errorf("ExtractEmployeeCode(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractEmployeeCodeSkipsDateDigits(t *testing.T) {
	claims := NewClaimSet()
	text := "attendance on 2024-03-05 for 1024"
	ExtractDates(text, testNow, claims)

	got := ExtractEmployeeCode(token.Tokenize(text), claims)
	if got != "1024" {
		t.Errorf("code = %q, want %q", got, "1024")
	}
}

func TestExtractDomainNames(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantProj string
		wantTask string
		wantOrg  string
	}{
		{
			name:     "project by anchor",
			text:     "what is the status of project Atlas",
			wantProj: "Atlas",
		},
		{
			name:     "task with multiword name",
			text:     "due date of task Payment Gateway Integration",
			wantTask: "Payment Gateway Integration",
		},
		{
			name:    "organization anchor",
			text:    "projects under organization Initech",
			wantOrg: "Initech",
		},
		{
			name:     "named variant",
			text:     "show the project named Phoenix",
			wantProj: "Phoenix",
		},
		{
			name:     "capture cut at boundary word",
			text:     "is project Atlas overdue",
			wantProj: "Atlas",
		},
		{
			name: "bare keyword captures nothing",
			text: "list open tasks for today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDomainNames(tt.text, NewClaimSet())
			if got.Project != tt.wantProj {
				t.Errorf("Project = %q, want %q", got.Project, tt.wantProj)
			}
			if got.Task != tt.wantTask {
				t.Errorf("Task = %q, want %q", got.Task, tt.wantTask)
			}
			if got.Organization != tt.wantOrg {
				t.Errorf("Organization = %q, want %q", got.Organization, tt.wantOrg)
			}
		})
	}
}

func TestExtractNameAnchored(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"info of", "show info of Ravi Kumar", "Ravi Kumar"},
		{"assigned to", "tasks assigned to Priya", "Priya"},
		{"stops at claimed date words", "hours worked by Ravi last week", "Ravi"},
	}

	tagger := token.NewTagger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// mirror the pipeline: dates claim their spans before names run
			claims := NewClaimSet()
			ExtractDates(tt.text, testNow, claims)

			tokens := token.Tokenize(tt.text)
			tagged := tagger.Tag(tokens)
			got := ExtractName(tagged, tt.text, claims, testIsKeyword)
			if got != tt.want {
				t.Errorf("ExtractName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractNameWalked(t *testing.T) {
	text := "was Ravi Kumar late yesterday"
	tagger := token.NewTagger()
	tokens := token.Tokenize(text)
	tagged := tagger.Tag(tokens)

	got := ExtractName(tagged, text, NewClaimSet(), testIsKeyword)
	if got != "Ravi Kumar" {
		t.Errorf("ExtractName = %q, want %q", got, "Ravi Kumar")
	}
}

func TestExtractNameSkipsDomainSpans(t *testing.T) {
	text := "list open tasks for project Atlas"
	claims := NewClaimSet()
	ExtractDomainNames(text, claims)

	tagger := token.NewTagger()
	tagged := tagger.Tag(token.Tokenize(text))

	if got := ExtractName(tagged, text, claims, testIsKeyword); got != "" {
		t.Errorf("ExtractName = %q, want empty: Atlas belongs to the project span", got)
	}
}

func TestExtractNameSkipsClaimedDateTokens(t *testing.T) {
	text := "was Ravi late this monday"
	claims := NewClaimSet()
	ExtractDates(text, testNow, claims)

	tagger := token.NewTagger()
	tagged := tagger.Tag(token.Tokenize(text))

	if got := ExtractName(tagged, text, claims, testIsKeyword); got != "Ravi" {
		t.Errorf("ExtractName = %q, want %q", got, "Ravi")
	}
}
