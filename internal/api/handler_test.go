package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/mocks"
	"github.com/samandr77/microservices/erp/internal/service"
)

const testToken = "token"

var testNow = time.Date(2025, 3, 14, 10, 15, 0, 0, time.UTC)

type testAPI struct {
	s      *mocks.MockService
	auth   *mocks.MockAuthClient
	user   entity.User
	router http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	ta := &testAPI{
		s:    mocks.NewMockService(ctrl),
		auth: mocks.NewMockAuthClient(ctrl),
		user: entity.User{
			ID:        uuid.Must(uuid.NewV4()),
			FirstName: "Ayşe",
			Role:      entity.RoleManager,
			CompanyID: uuid.Must(uuid.NewV4()),
		},
	}

	h := NewHandler(ta.s)
	h.now = func() time.Time { return testNow }

	ta.router = NewRouter(h, NewMiddleware(ta.auth))

	return ta
}

// authorized expects one successful token lookup.
func (ta *testAPI) authorized() {
	ta.auth.EXPECT().User(gomock.Any(), testToken).Return(ta.user, nil)
}

func (ta *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Authorization", "Bearer "+testToken)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ta := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "req-1")

	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "req-1", rec.Header().Get(requestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	ta := newTestAPI(t)

	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAuth(t *testing.T) {
	t.Parallel()

	t.Run("no token", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)

		rec := httptest.NewRecorder()
		ta.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)

		ta.auth.EXPECT().User(gomock.Any(), testToken).Return(entity.User{}, entity.ErrForbidden)

		rec := ta.do(http.MethodGet, "/api/tasks", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("auth service down", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)

		ta.auth.EXPECT().User(gomock.Any(), testToken).Return(entity.User{}, errors.New("dial tcp: refused"))

		rec := ta.do(http.MethodGet, "/api/tasks", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("blocked user", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)

		blocked := ta.user
		blocked.IsBlocked = true

		ta.auth.EXPECT().User(gomock.Any(), testToken).Return(blocked, nil)

		rec := ta.do(http.MethodGet, "/api/tasks", "")
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandler_CalendarEvents(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ta := newTestAPI(t)
		ta.authorized()

		event := entity.CalendarEvent{ID: "activity-1", Title: "Toplantı", Type: entity.EventActivity}

		ta.s.EXPECT().CalendarEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, from, to *time.Time, types []entity.EventType) ([]entity.CalendarEvent, error) {
				user, err := entity.UserFromContext(ctx)
				r.NoError(err)
				r.Equal(ta.user.ID, user.ID)

				r.True(from.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
				r.True(to.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)))
				r.Equal([]entity.EventType{entity.EventActivity, entity.EventOrder}, types)

				return []entity.CalendarEvent{event}, nil
			})

		rec := ta.do(http.MethodGet, "/api/calendar/events?from=2025-03-01&to=2025-03-31&types=activity,order", "")
		r.Equal(http.StatusOK, rec.Code)

		resp := decodeBody[CalendarEventsResponse](t, rec)
		r.Len(resp.Events, 1)
		r.Equal("Toplantı", resp.Events[0].Title)
	})

	t.Run("bad date", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		rec := ta.do(http.MethodGet, "/api/calendar/events?from=01.03.2025", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		ta.s.EXPECT().CalendarEvents(gomock.Any(), nil, nil, nil).Return(nil, nil)

		rec := ta.do(http.MethodGet, "/api/calendar/events", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"events":[]}`, rec.Body.String())
	})
}

func TestHandler_Tasks(t *testing.T) {
	t.Parallel()
	ta := newTestAPI(t)
	ta.authorized()

	ta.s.EXPECT().Tasks(gomock.Any(), entity.TaskFilter{
		Statuses:   []entity.TaskStatus{entity.TaskTodo, entity.TaskInProgress},
		Priorities: []entity.TaskPriority{entity.PriorityHigh},
		Limit:      defaultTaskLimit,
	}).Return(nil, entity.TaskStats{Total: 0}, nil)

	rec := ta.do(http.MethodGet, "/api/tasks?status=todo,in_progress&priority=high&limit=5000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[TasksResponse](t, rec)
	require.NotNil(t, resp.Tasks)
	require.Empty(t, resp.Tasks)
}

func TestHandler_CreateTask(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ta := newTestAPI(t)
		ta.authorized()

		ta.s.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task entity.Task) (entity.Task, error) {
				r.Equal("Teklif hazırla", task.Title)
				r.Equal(entity.PriorityUrgent, task.Priority)
				r.NotNil(task.DueDate)

				task.ID = uuid.Must(uuid.NewV4())

				return task, nil
			})

		rec := ta.do(http.MethodPost, "/api/tasks",
			`{"title":"Teklif hazırla","priority":"urgent","dueDate":"2025-03-20T09:00:00Z"}`)
		r.Equal(http.StatusCreated, rec.Code)

		task := decodeBody[entity.Task](t, rec)
		r.False(task.ID.IsNil())
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "missing title", body: `{"priority":"low"}`},
		{name: "unknown priority", body: `{"title":"x","priority":"asap"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ta := newTestAPI(t)
			ta.authorized()

			rec := ta.do(http.MethodPost, "/api/tasks", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeBody[ResponseError](t, rec)
			require.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandler_UpdateTaskStatus(t *testing.T) {
	t.Parallel()

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		rec := ta.do(http.MethodPut, "/api/tasks/42/status", `{"status":"completed"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		id := uuid.Must(uuid.NewV4())

		ta.s.EXPECT().UpdateTaskStatus(gomock.Any(), id, entity.TaskCompleted).
			Return(entity.Task{}, entity.ErrNotFound)

		rec := ta.do(http.MethodPut, "/api/tasks/"+id.String()+"/status", `{"status":"completed"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_ChatStream(t *testing.T) {
	t.Parallel()

	body := `{"messages":[{"role":"user","content":"Merhaba"}]}`

	t.Run("streams", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ta := newTestAPI(t)
		ta.authorized()

		ta.s.EXPECT().ChatStream(gomock.Any(), []entity.ChatMessage{{Role: entity.RoleUserMsg, Content: "Merhaba"}}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []entity.ChatMessage, w io.Writer) error {
				_, err := io.WriteString(w, "data: {\"choices\":[]}\n\n")
				r.NoError(err)

				_, err = io.WriteString(w, "data: [DONE]\n\n")

				return err
			})

		rec := ta.do(http.MethodPost, "/api/assistant/chat/stream", body)
		r.Equal(http.StatusOK, rec.Code)
		r.Equal("text/event-stream", rec.Header().Get("Content-Type"))
		r.True(rec.Flushed)
		r.Equal("data: {\"choices\":[]}\n\ndata: [DONE]\n\n", rec.Body.String())
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		ta.s.EXPECT().ChatStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.ErrNotConfigured)

		rec := ta.do(http.MethodPost, "/api/assistant/chat/stream", body)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		rec := ta.do(http.MethodPost, "/api/assistant/chat/stream", `{"messages":[{"role":"tool","content":"x"}]}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_RunQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "plain user", err: entity.ErrForbidden, code: http.StatusForbidden},
		{name: "not a select", err: entity.ErrForbiddenSQL, code: http.StatusBadRequest},
		{name: "provider down", err: entity.ErrProvider, code: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ta := newTestAPI(t)
			ta.authorized()

			ta.s.EXPECT().RunQuery(gomock.Any(), "Kaç müşterim var?").Return(service.QueryResult{}, tt.err)

			rec := ta.do(http.MethodPost, "/api/assistant/query", `{"question":"Kaç müşterim var?"}`)
			require.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_SaveSalaryRecord(t *testing.T) {
	t.Parallel()

	employeeID := uuid.Must(uuid.NewV4())

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ta := newTestAPI(t)
		ta.authorized()

		ta.s.EXPECT().SaveSalaryRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in service.SalaryRecordInput) (entity.SalaryRecord, error) {
				r.Equal(employeeID, in.EmployeeID)
				r.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), in.Period)
				r.Equal(entity.SalaryInputGross, in.Input.InputType)
				r.True(decimal.NewFromInt(40000).Equal(in.Input.Amount))

				return entity.SalaryRecord{EmployeeID: in.EmployeeID, Period: in.Period}, nil
			})

		rec := ta.do(http.MethodPost, "/api/payroll/records",
			`{"employeeId":"`+employeeID.String()+`","period":"2025-03","input":{"inputType":"gross","amount":"40000"}}`)
		r.Equal(http.StatusCreated, rec.Code)
	})

	t.Run("missing employee", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		rec := ta.do(http.MethodPost, "/api/payroll/records", `{"period":"2025-03","input":{"inputType":"gross","amount":"1"}}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad period", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		rec := ta.do(http.MethodPost, "/api/payroll/records",
			`{"employeeId":"`+employeeID.String()+`","period":"Mart","input":{"inputType":"gross","amount":"1"}}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GrossFromNet(t *testing.T) {
	t.Parallel()
	ta := newTestAPI(t)
	ta.authorized()

	ta.s.EXPECT().GrossFromNet(gomock.Any(), gomock.Any(), gomock.Any(), entity.SalaryRateOverrides{}).
		Return(decimal.RequireFromString("34118.00"), nil)

	rec := ta.do(http.MethodPost, "/api/payroll/gross-from-net", `{"net":25000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"gross":"34118"}`, rec.Body.String())
}

func TestHandler_GrossFromNet_PartialRates(t *testing.T) {
	t.Parallel()
	ta := newTestAPI(t)
	ta.authorized()

	ta.s.EXPECT().GrossFromNet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ decimal.Decimal, rates entity.SalaryRateOverrides) (decimal.Decimal, error) {
			require.NotNil(t, rates.StampTax)
			require.True(t, rates.StampTax.IsZero())
			require.Nil(t, rates.SGKEmployee)
			require.Nil(t, rates.AccidentInsurance)

			return decimal.RequireFromString("33900.00"), nil
		})

	rec := ta.do(http.MethodPost, "/api/payroll/gross-from-net", `{"net":25000,"rates":{"stampTax":0}}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_InvoicePDF(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ta := newTestAPI(t)
	ta.authorized()

	id := uuid.Must(uuid.NewV4())

	ta.s.EXPECT().InvoicePDF(gomock.Any(), id, entity.KindEArsiv).Return([]byte("%PDF-1.4"), "ABC2025000000001.pdf", nil)

	rec := ta.do(http.MethodGet, "/api/einvoices/"+id.String()+"/pdf?kind=e-arsiv", "")
	r.Equal(http.StatusOK, rec.Code)
	r.Equal("application/pdf", rec.Header().Get("Content-Type"))
	r.Contains(rec.Header().Get("Content-Disposition"), "ABC2025000000001.pdf")
	r.Equal("%PDF-1.4", rec.Body.String())
}

func TestHandler_IncomingInvoices(t *testing.T) {
	t.Parallel()
	ta := newTestAPI(t)
	ta.authorized()

	ta.s.EXPECT().IncomingInvoices(gomock.Any(), entity.IncomingInvoiceFilter{Page: 3, Limit: defaultInvoiceLimit}).
		Return([]entity.IncomingInvoice{{InvoiceNumber: "ABC2025000000001"}}, 41, nil)

	rec := ta.do(http.MethodGet, "/api/einvoices/incoming?page=3&limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[IncomingInvoicesResponse](t, rec)
	require.Equal(t, 41, resp.Total)
	require.Len(t, resp.Invoices, 1)
}

func TestHandler_SyncIncoming(t *testing.T) {
	t.Parallel()

	t.Run("default window", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		summary := service.SyncSummary{Found: 2, Imported: 2, New: 1}

		ta.s.EXPECT().SyncIncoming(gomock.Any(), testNow.Add(-defaultSyncWindow), testNow).Return(summary, nil)

		rec := ta.do(http.MethodPost, "/api/einvoices/incoming/sync", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, summary, decodeBody[service.SyncSummary](t, rec))
	})

	t.Run("veriban not configured", func(t *testing.T) {
		t.Parallel()
		ta := newTestAPI(t)
		ta.authorized()

		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		ta.s.EXPECT().SyncIncoming(gomock.Any(), from, testNow).Return(service.SyncSummary{}, entity.ErrNotConfigured)

		rec := ta.do(http.MethodPost, "/api/einvoices/incoming/sync", `{"from":"2025-03-01T00:00:00Z"}`)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandler_CreateSalesInvoice(t *testing.T) {
	t.Parallel()

	valid := `{
		"series": "ABC",
		"customerName": "Müşteri A.Ş.",
		"customerTaxNumber": "1234567890",
		"lines": [{"description": "Danışmanlık", "quantity": "2", "unitPrice": "125.25", "vatRate": "18"}]
	}`

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ta := newTestAPI(t)
		ta.authorized()

		ta.s.EXPECT().CreateSalesInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in service.SalesInvoiceInput) (entity.SalesInvoice, error) {
				r.Equal("ABC", in.Series)
				r.Len(in.Lines, 1)
				r.True(decimal.RequireFromString("125.25").Equal(in.Lines[0].UnitPrice))

				return entity.SalesInvoice{InvoiceNumber: "ABC2025000000001"}, nil
			})

		rec := ta.do(http.MethodPost, "/api/sales-invoices", valid)
		r.Equal(http.StatusCreated, rec.Code)
		r.Equal("ABC2025000000001", decodeBody[entity.SalesInvoice](t, rec).InvoiceNumber)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "no lines", body: `{"customerName":"A","customerTaxNumber":"1234567890","lines":[]}`},
		{name: "short tax number", body: `{"customerName":"A","customerTaxNumber":"123","lines":[{"description":"x"}]}`},
		{name: "long series", body: `{"series":"FATURA","customerName":"A","customerTaxNumber":"1234567890","lines":[{"description":"x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ta := newTestAPI(t)
			ta.authorized()

			rec := ta.do(http.MethodPost, "/api/sales-invoices", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_SendSalesInvoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "queued", code: http.StatusOK},
		{name: "already sent", err: entity.ErrAlreadyExists, code: http.StatusConflict},
		{name: "rejected", err: entity.ErrProvider, code: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ta := newTestAPI(t)
			ta.authorized()

			id := uuid.Must(uuid.NewV4())

			ta.s.EXPECT().SendSalesInvoice(gomock.Any(), id).Return(entity.SalesInvoice{ID: id}, tt.err)

			rec := ta.do(http.MethodPost, "/api/sales-invoices/"+id.String()+"/send", "")
			require.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_NextInvoiceNumber(t *testing.T) {
	t.Parallel()
	ta := newTestAPI(t)
	ta.authorized()

	ta.s.EXPECT().NextInvoiceNumber(gomock.Any(), "ABC").Return("ABC2025000000007", nil)

	rec := ta.do(http.MethodGet, "/api/sales-invoices/next-number?series=ABC", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"number":"ABC2025000000007"}`, rec.Body.String())
}

func TestHandler_DownloadReport(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ta := newTestAPI(t)
	ta.authorized()

	id := uuid.Must(uuid.NewV4())

	ta.s.EXPECT().DownloadReport(gomock.Any(), id).Return(service.DownloadedReport{
		Report: entity.GeneratedReport{ID: id, Format: entity.FormatCSV, FileName: "satislar.csv", CreatedAt: testNow},
		Data:   []byte("a;b\n1;2\n"),
	}, nil)

	rec := ta.do(http.MethodGet, "/api/reports/"+id.String()+"/download", "")
	r.Equal(http.StatusOK, rec.Code)
	r.Equal(entity.FormatCSV.ContentType(), rec.Header().Get("Content-Type"))
	r.Equal("a;b\n1;2\n", rec.Body.String())
}
