package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/assist/dispatch"
	"hr-assistant-be/pkg/assist/resolver"
	"hr-assistant-be/pkg/nlp"
)

// ---- fakes ----

type fakeHistoryRepo struct {
	records   []*entity.QueryHistory
	createErr error
	findErr   error
}

func (f *fakeHistoryRepo) Create(_ context.Context, record *entity.QueryHistory) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeHistoryRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.QueryHistory, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]*entity.QueryHistory, len(f.records))
	copy(out, f.records)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeHistoryRepo) DeleteAll(context.Context) error {
	f.records = nil
	return nil
}

func (f *fakeHistoryRepo) DeleteByConversation(_ context.Context, conversationId uuid.UUID) error {
	kept := f.records[:0]
	for _, r := range f.records {
		if r.ConversationId != conversationId {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func (f *fakeHistoryRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.records)), nil
}

type fakeUnitOfWork struct {
	history *fakeHistoryRepo
}

func (f *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error               { return nil }
func (f *fakeUnitOfWork) Rollback() error             { return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository                 { return nil }
func (f *fakeUnitOfWork) AttendanceRepository() contract.AttendanceRepository     { return nil }
func (f *fakeUnitOfWork) OrganizationRepository() contract.OrganizationRepository { return nil }
func (f *fakeUnitOfWork) ProjectRepository() contract.ProjectRepository           { return nil }
func (f *fakeUnitOfWork) TaskRepository() contract.TaskRepository                 { return nil }
func (f *fakeUnitOfWork) QueryHistoryRepository() contract.QueryHistoryRepository {
	return f.history
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeAttendanceResolver struct{}

func (fakeAttendanceResolver) Resolve(context.Context, string, *nlp.ParsedQuery) (resolver.Result, error) {
	return resolver.Result{Success: true, Message: "attendance answer"}, nil
}

func (fakeAttendanceResolver) ResolveForEmployee(context.Context, string, *nlp.ParsedQuery) (resolver.Result, error) {
	return resolver.Result{Success: true, Message: "per-employee answer"}, nil
}

type fakeTaskProjectResolver struct{}

func (fakeTaskProjectResolver) Resolve(context.Context, string, *nlp.ParsedQuery) (resolver.Result, error) {
	return resolver.Result{Success: true, Message: "task answer"}, nil
}

type fakeEmployeeResolver struct{}

func (fakeEmployeeResolver) Resolve(context.Context, string, *nlp.ParsedQuery) (resolver.Result, error) {
	return resolver.Result{Success: true, Message: "employee answer"}, nil
}

type emptyIdentityLookup struct{}

func (emptyIdentityLookup) FindByName(context.Context, string) (*nlp.Identity, error) {
	return nil, nil
}

func (emptyIdentityLookup) FindByCode(context.Context, string) (*nlp.Identity, error) {
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakePublisher struct {
	published int
	err       error
}

func (f *fakePublisher) Publish(context.Context, []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published++
	return nil
}

func newTestService(history *fakeHistoryRepo, pub IPublisherService) IAssistantService {
	factory := &fakeFactory{uow: &fakeUnitOfWork{history: history}}
	pipeline := nlp.NewPipeline(emptyIdentityLookup{}, func() time.Time {
		return time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	})
	dispatcher := dispatch.NewDispatcher(dispatch.Resolvers{
		Attendance:  fakeAttendanceResolver{},
		TaskProject: fakeTaskProjectResolver{},
		Employee:    fakeEmployeeResolver{},
	})
	return NewAssistantService(factory, pipeline, dispatcher, pub, nopLogger{})
}

// ---- tests ----

func TestProcessQueryRoundTrip(t *testing.T) {
	history := &fakeHistoryRepo{}
	pub := &fakePublisher{}
	svc := newTestService(history, pub)

	res, err := svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query: "who was late yesterday",
	})

	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "attendance answer", res.Answer)
	assert.Equal(t, string(dispatch.TypeAttendance), res.Type)
	assert.NotEqual(t, uuid.Nil, res.ConversationId)
	assert.NotNil(t, res.ParsedQuery)

	// the turn is appended synchronously
	assert.Len(t, history.records, 1)
	assert.Equal(t, "who was late yesterday", history.records[0].Query)
	assert.Equal(t, res.ConversationId, history.records[0].ConversationId)
	assert.Equal(t, 1, pub.published)

	// the turn must read back verbatim
	items, err := svc.GetQueryHistory(context.Background(), 10)
	assert.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.Equal(t, res.Answer, items[0].Response)
		assert.Equal(t, res.ConversationId, items[0].ConversationId)
	}
}

func TestProcessQueryKeepsRequestedConversation(t *testing.T) {
	history := &fakeHistoryRepo{}
	svc := newTestService(history, &fakePublisher{})

	conv := uuid.New()
	res, err := svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query:          "list open tasks",
		ConversationId: &conv,
	})

	assert.NoError(t, err)
	assert.Equal(t, conv, res.ConversationId)
}

func TestProcessQueryEmptyQuery(t *testing.T) {
	history := &fakeHistoryRepo{}
	svc := newTestService(history, &fakePublisher{})

	_, err := svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{Query: "   "})

	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Empty(t, history.records, "an empty query must not be recorded")
}

func TestProcessQueryAnswerSurvivesAppendFailure(t *testing.T) {
	history := &fakeHistoryRepo{createErr: errors.New("connection refused")}
	pub := &fakePublisher{}
	svc := newTestService(history, pub)

	res, err := svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query: "who was absent today",
	})

	assert.NoError(t, err, "a history store outage must not lose the answer")
	assert.Equal(t, "attendance answer", res.Answer)
	assert.Equal(t, 0, pub.published, "no event for a turn that was not recorded")
}

func TestProcessQueryUnroutableStillRecorded(t *testing.T) {
	history := &fakeHistoryRepo{}
	svc := newTestService(history, &fakePublisher{})

	res, err := svc.ProcessQuery(context.Background(), &dto.ProcessQueryRequest{
		Query: "what is the meaning of life",
	})

	assert.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, string(dispatch.TypeCombined), res.Type)
	assert.Len(t, history.records, 1)
	assert.False(t, history.records[0].Success)
}

func TestGetQueryHistoryLimits(t *testing.T) {
	history := &fakeHistoryRepo{}
	svc := newTestService(history, &fakePublisher{})

	for _, limit := range []int{0, -1, 101, 500} {
		_, err := svc.GetQueryHistory(context.Background(), limit)
		assert.ErrorIs(t, err, ErrInvalidLimit, "limit %d", limit)
	}

	for _, limit := range []int{1, DefaultHistoryLimit, 100} {
		_, err := svc.GetQueryHistory(context.Background(), limit)
		assert.NoError(t, err, "limit %d", limit)
	}
}

func TestGetQueryHistoryNewestFirst(t *testing.T) {
	history := &fakeHistoryRepo{}
	base := time.Now()
	for i := 0; i < 3; i++ {
		history.records = append(history.records, &entity.QueryHistory{
			Id:        uuid.New(),
			Query:     "q",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	svc := newTestService(history, &fakePublisher{})

	items, err := svc.GetQueryHistory(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.True(t, items[0].CreatedAt.After(items[1].CreatedAt))
}

func TestGetQueryHistoryStoreErrorPropagates(t *testing.T) {
	history := &fakeHistoryRepo{findErr: errors.New("connection refused")}
	svc := newTestService(history, &fakePublisher{})

	_, err := svc.GetQueryHistory(context.Background(), 10)
	assert.Error(t, err, "a store outage is not an empty history")
}

func TestClearQueryHistory(t *testing.T) {
	history := &fakeHistoryRepo{records: []*entity.QueryHistory{
		{Id: uuid.New()}, {Id: uuid.New()},
	}}
	svc := newTestService(history, &fakePublisher{})

	res, err := svc.ClearQueryHistory(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), res.Deleted)
	assert.Empty(t, history.records)
}

func TestDeleteConversation(t *testing.T) {
	conv := uuid.New()
	history := &fakeHistoryRepo{records: []*entity.QueryHistory{
		{Id: uuid.New(), ConversationId: conv},
		{Id: uuid.New(), ConversationId: uuid.New()},
	}}
	svc := newTestService(history, &fakePublisher{})

	_, err := svc.DeleteConversation(context.Background(), conv)
	assert.NoError(t, err)
	assert.Len(t, history.records, 1)
}
