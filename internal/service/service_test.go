package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/erp/internal/assistant"
	"github.com/samandr77/microservices/erp/internal/calendar"
	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/mocks"
	"github.com/samandr77/microservices/erp/internal/service"
)

var testNow = time.Date(2025, 3, 14, 10, 15, 0, 0, time.UTC)

type TestService struct {
	repo      *mocks.MockRepository
	llm       *mocks.MockLLM
	nilvera   *mocks.MockNilvera
	veriban   *mocks.MockVeriban
	storage   *mocks.MockStorage
	mailer    *mocks.MockMailer
	publisher *mocks.MockPublisher
	user      entity.User
	s         *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &TestService{
		repo:      mocks.NewMockRepository(ctrl),
		llm:       mocks.NewMockLLM(ctrl),
		nilvera:   mocks.NewMockNilvera(ctrl),
		veriban:   mocks.NewMockVeriban(ctrl),
		storage:   mocks.NewMockStorage(ctrl),
		mailer:    mocks.NewMockMailer(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		user: entity.User{
			ID:        uuid.Must(uuid.NewV4()),
			FirstName: "Ayşe",
			LastName:  "Yılmaz",
			Role:      entity.RoleManager,
			CompanyID: uuid.Must(uuid.NewV4()),
		},
	}

	ts.s = service.New(ts.repo, ts.llm, ts.nilvera, ts.veriban, ts.storage, ts.mailer, ts.publisher).
		WithClock(func() time.Time { return testNow })

	return ts
}

func (ts *TestService) ctx() context.Context {
	return entity.SetUserToContext(context.Background(), ts.user)
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
	return &t
}

func TestService_CalendarEvents(t *testing.T) {
	t.Parallel()

	from := date(2025, 3, 1)
	to := date(2025, 3, 31)

	task := entity.Task{ID: uuid.Must(uuid.NewV4()), Title: "Müşteri ziyareti", Status: entity.TaskTodo, DueDate: date(2025, 3, 10)}
	undated := entity.Task{ID: uuid.Must(uuid.NewV4()), Title: "Tarihsiz"}
	order := entity.Order{
		ID:           uuid.Must(uuid.NewV4()),
		OrderNumber:  "SIP-001",
		OrderDate:    date(2025, 3, 5),
		DeliveryDate: date(2025, 4, 20),
	}

	src := entity.CalendarSources{
		Activities: []entity.Task{task, undated},
		Orders:     []entity.Order{order},
	}

	t.Run("all types", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		ts.repo.EXPECT().CalendarSources(gomock.Any(), entity.CalendarFilter{
			CompanyID: ts.user.CompanyID,
			From:      from,
			To:        to,
		}).Return(src, nil)

		events, err := ts.s.CalendarEvents(ts.ctx(), from, to, nil)
		r.NoError(err)
		r.Len(events, 2)

		r.Equal("order-date-"+order.ID.String(), events[0].ID)
		r.Equal("Sipariş: SIP-001", events[0].Title)
		r.Equal(entity.EventOrder, events[0].Type)

		r.Equal("activity-"+task.ID.String(), events[1].ID)
		r.Equal("Müşteri ziyareti", events[1].Title)
		r.Equal(calendar.TaskColor(entity.TaskTodo), events[1].Color)
		r.Equal(task.ID, events[1].SourceID)
	})

	t.Run("only activities", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		types := []entity.EventType{entity.EventActivity}

		ts.repo.EXPECT().CalendarSources(gomock.Any(), entity.CalendarFilter{
			CompanyID: ts.user.CompanyID,
			From:      from,
			To:        to,
			Types:     types,
		}).Return(src, nil)

		events, err := ts.s.CalendarEvents(ts.ctx(), from, to, types)
		r.NoError(err)
		r.Len(events, 1)
		r.Equal(entity.EventActivity, events[0].Type)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		_, err := ts.s.CalendarEvents(ts.ctx(), from, to, []entity.EventType{"birthday"})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("reversed range", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		_, err := ts.s.CalendarEvents(ts.ctx(), to, from, nil)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("no user", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		_, err := ts.s.CalendarEvents(context.Background(), from, to, nil)
		require.Error(t, err)
	})
}

func TestService_Tasks(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	tasks := []entity.Task{{ID: uuid.Must(uuid.NewV4()), Title: "Rapor", Status: entity.TaskTodo}}
	stats := entity.TaskStats{Total: 1, Pending: 1}

	ts.repo.EXPECT().Tasks(gomock.Any(), entity.TaskFilter{
		CompanyID: ts.user.CompanyID,
		Statuses:  []entity.TaskStatus{entity.TaskTodo},
		Limit:     50,
	}).Return(tasks, nil)
	ts.repo.EXPECT().TaskStats(gomock.Any(), ts.user.CompanyID, testNow).Return(stats, nil)

	got, gotStats, err := ts.s.Tasks(ts.ctx(), entity.TaskFilter{Statuses: []entity.TaskStatus{entity.TaskTodo}})
	r.NoError(err)
	r.Equal(tasks, got)
	r.Equal(stats, gotStats)
}

func TestService_CreateTask(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		var stored entity.Task

		ts.repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task entity.Task) error {
				stored = task
				return nil
			})

		task, err := ts.s.CreateTask(ts.ctx(), entity.Task{Title: "   "})
		r.NoError(err)
		r.Equal(stored, task)

		r.False(task.ID.IsNil())
		r.Equal(assistant.DefaultTaskTitle, task.Title)
		r.Equal(entity.PriorityMedium, task.Priority)
		r.Equal(entity.TaskTodo, task.Status)
		r.Equal(ts.user.CompanyID, task.CompanyID)
		r.Equal(testNow, task.CreatedAt)
		r.NotNil(task.AssigneeID)
		r.Equal(ts.user.ID, *task.AssigneeID)
	})

	t.Run("explicit fields", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		assignee := uuid.Must(uuid.NewV4())

		ts.repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(nil)

		task, err := ts.s.CreateTask(ts.ctx(), entity.Task{
			Title:      " Teklif hazırla ",
			Priority:   entity.PriorityUrgent,
			AssigneeID: &assignee,
			DueDate:    date(2025, 3, 15),
		})
		r.NoError(err)
		r.Equal("Teklif hazırla", task.Title)
		r.Equal(entity.PriorityUrgent, task.Priority)
		r.Equal(assignee, *task.AssigneeID)
	})

	t.Run("invalid priority", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		_, err := ts.s.CreateTask(ts.ctx(), entity.Task{Title: "x", Priority: "asap"})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestService_UpdateTaskStatus(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		id := uuid.Must(uuid.NewV4())
		want := entity.Task{ID: id, Status: entity.TaskCompleted}

		ts.repo.EXPECT().UpdateTaskStatus(gomock.Any(), ts.user.CompanyID, id, entity.TaskCompleted, testNow).Return(nil)
		ts.repo.EXPECT().Task(gomock.Any(), ts.user.CompanyID, id).Return(want, nil)

		got, err := ts.s.UpdateTaskStatus(ts.ctx(), id, entity.TaskCompleted)
		r.NoError(err)
		r.Equal(want, got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		id := uuid.Must(uuid.NewV4())

		ts.repo.EXPECT().UpdateTaskStatus(gomock.Any(), ts.user.CompanyID, id, entity.TaskInProgress, testNow).
			Return(entity.ErrNotFound)

		_, err := ts.s.UpdateTaskStatus(ts.ctx(), id, entity.TaskInProgress)
		require.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		_, err := ts.s.UpdateTaskStatus(ts.ctx(), uuid.Must(uuid.NewV4()), "done")
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestService_DownloadReport(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	rep := entity.GeneratedReport{
		ID:        uuid.Must(uuid.NewV4()),
		CompanyID: ts.user.CompanyID,
		FileName:  "musteriler.xlsx",
		ObjectKey: "reports/a/b/musteriler.xlsx",
	}

	ts.repo.EXPECT().GeneratedReport(gomock.Any(), ts.user.CompanyID, rep.ID).Return(rep, nil)
	ts.storage.EXPECT().Download(gomock.Any(), rep.ObjectKey).Return([]byte("PK"), nil)

	got, err := ts.s.DownloadReport(ts.ctx(), rep.ID)
	r.NoError(err)
	r.Equal(rep, got.Report)
	r.Equal([]byte("PK"), got.Data)
}
