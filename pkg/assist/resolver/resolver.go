package resolver

import (
	"context"

	"hr-assistant-be/pkg/nlp"
)

// Result is what every domain resolver returns. Message is always a plain
// natural-language sentence; Data optionally carries structured rows for
// callers that want more than prose.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Failure builds an unsuccessful result with a user-facing sentence.
func Failure(message string) Result {
	return Result{Success: false, Message: message}
}

// AttendanceResolver answers attendance questions. Resolve handles the
// generic day/range variant, ResolveForEmployee the single-employee one.
type AttendanceResolver interface {
	Resolve(ctx context.Context, raw string, q *nlp.ParsedQuery) (Result, error)
	ResolveForEmployee(ctx context.Context, raw string, q *nlp.ParsedQuery) (Result, error)
}

// TaskProjectResolver answers task, project and organization questions.
type TaskProjectResolver interface {
	Resolve(ctx context.Context, raw string, q *nlp.ParsedQuery) (Result, error)
}

// EmployeeResolver answers employee-profile questions.
type EmployeeResolver interface {
	Resolve(ctx context.Context, raw string, q *nlp.ParsedQuery) (Result, error)
}
