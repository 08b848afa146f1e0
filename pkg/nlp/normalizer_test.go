package nlp

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"hr-assistant-be/pkg/nlp/keyword"
)

var testNow = func() time.Time {
	// Saturday, pinned for deterministic weekday math
	return time.Date(2026, time.August, 29, 10, 30, 0, 0, time.UTC)
}

type fakeIdentityLookup struct {
	byName map[string]*Identity
	byCode map[string]*Identity
	err    error
}

func (f *fakeIdentityLookup) FindByName(_ context.Context, name string) (*Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byName[strings.ToLower(name)], nil
}

func (f *fakeIdentityLookup) FindByCode(_ context.Context, code string) (*Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCode[code], nil
}

func testLookup() (*fakeIdentityLookup, *Identity) {
	ravi := &Identity{ID: uuid.New(), Code: "1024", Name: "Ravi Kumar"}
	return &fakeIdentityLookup{
		byName: map[string]*Identity{"ravi": ravi, "ravi kumar": ravi},
		byCode: map[string]*Identity{"1024": ravi},
	}, ravi
}

func TestParsePerEmployeeAttendance(t *testing.T) {
	lookup, ravi := testLookup()
	p := NewPipeline(lookup, testNow)

	q, err := p.Parse(context.Background(), "Was 1024 late on 5th March 2024")
	if err != nil {
		t.Fatal(err)
	}

	if q.EmpCode != "1024" {
		t.Errorf("EmpCode = %q, want 1024", q.EmpCode)
	}
	if q.UserID == nil || *q.UserID != ravi.ID {
		t.Errorf("UserID = %v, want %v", q.UserID, ravi.ID)
	}
	if q.EmpName != "Ravi Kumar" {
		t.Errorf("EmpName = %q, want resolved canonical name", q.EmpName)
	}
	if len(q.Dates) != 1 || !q.Dates[0].Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Dates = %v", q.Dates)
	}
	if !q.Flags.Late {
		t.Errorf("Late flag not raised: %+v", q.Flags)
	}
	if !q.HasIdentity() || !q.HasTemporalScope() {
		t.Error("expected identity and temporal scope")
	}
}

func TestParseNameResolution(t *testing.T) {
	lookup, ravi := testLookup()
	p := NewPipeline(lookup, testNow)

	q, err := p.Parse(context.Background(), "hours worked by Ravi last week")
	if err != nil {
		t.Fatal(err)
	}

	if q.EmpName != "Ravi Kumar" {
		t.Errorf("EmpName = %q, want canonical %q", q.EmpName, "Ravi Kumar")
	}
	if q.EmpCode != "1024" {
		t.Errorf("EmpCode = %q, want backfilled code", q.EmpCode)
	}
	if q.UserID == nil || *q.UserID != ravi.ID {
		t.Errorf("UserID = %v", q.UserID)
	}
	if q.TimeRange != "last week" {
		t.Errorf("TimeRange = %q", q.TimeRange)
	}
	if !q.Flags.WorkedHours {
		t.Errorf("WorkedHours not raised: %+v", q.Flags)
	}
}

func TestParseUnknownNameKeptAsFreeText(t *testing.T) {
	lookup, _ := testLookup()
	p := NewPipeline(lookup, testNow)

	q, err := p.Parse(context.Background(), "info of Unknown Person")
	if err != nil {
		t.Fatal(err)
	}
	if q.EmpName != "Unknown Person" {
		t.Errorf("EmpName = %q, want free text preserved", q.EmpName)
	}
	if q.UserID != nil {
		t.Errorf("UserID = %v, want nil on lookup miss", q.UserID)
	}
}

func TestParseLookupErrorPropagates(t *testing.T) {
	p := NewPipeline(&fakeIdentityLookup{err: errors.New("connection refused")}, testNow)

	_, err := p.Parse(context.Background(), "info of Ravi")
	if err == nil {
		t.Fatal("expected a lookup error")
	}
}

func TestParseProjectQueryHasNoEmployee(t *testing.T) {
	lookup, _ := testLookup()
	p := NewPipeline(lookup, testNow)

	q, err := p.Parse(context.Background(), "list open tasks for project Atlas")
	if err != nil {
		t.Fatal(err)
	}
	if q.ProjectName != "Atlas" {
		t.Errorf("ProjectName = %q, want Atlas", q.ProjectName)
	}
	if q.EmpName != "" {
		t.Errorf("EmpName = %q, want empty: Atlas is the project name", q.EmpName)
	}
	if !q.Flags.OpenTasks {
		t.Errorf("OpenTasks not raised: %+v", q.Flags)
	}
	if !q.HasDomainReference() {
		t.Error("expected a domain reference")
	}
	for _, kw := range []string{keyword.KwProject, keyword.KwOpen} {
		if !q.HasKeyword(kw) {
			t.Errorf("keyword %q missing from %v", kw, q.Keywords)
		}
	}
}

func TestParseIsDeterministic(t *testing.T) {
	lookup, _ := testLookup()
	p := NewPipeline(lookup, testNow)

	queries := []string{
		"Was 1024 late on 5th March 2024",
		"list open tasks for project Atlas",
		"average intime of Ravi Kumar last week",
	}
	for _, text := range queries {
		first, err := p.Parse(context.Background(), text)
		if err != nil {
			t.Fatal(err)
		}
		second, err := p.Parse(context.Background(), text)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("parsing %q twice diverged:\n%+v\n%+v", text, first, second)
		}
	}
}

func TestParseKeywordsNeverNil(t *testing.T) {
	lookup, _ := testLookup()
	p := NewPipeline(lookup, testNow)

	q, err := p.Parse(context.Background(), "hello there")
	if err != nil {
		t.Fatal(err)
	}
	if q.Keywords == nil {
		t.Error("Keywords must be an empty slice, not nil")
	}
}
