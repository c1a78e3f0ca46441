package assistant_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/erp/internal/assistant"
	"github.com/samandr77/microservices/erp/internal/entity"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func TestDetectFunctionCall_Tasks(t *testing.T) {
	t.Parallel()

	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	tests := []struct {
		name    string
		message string
		want    assistant.TaskCall
	}{
		{
			name:    "create with date and priority",
			message: "Yarın için acil görev oluştur müşteriyi ara",
			want: assistant.TaskCall{
				Action:   assistant.TaskCreate,
				Title:    "Yarın acil müşteriyi ara",
				Priority: entity.PriorityUrgent,
				DueDate:  &tomorrow,
			},
		},
		{
			name:    "create upper case turkish",
			message: "GELECEK HAFTA YÜKSEK öncelikli görev ekle",
			want: assistant.TaskCall{
				Action:   assistant.TaskCreate,
				Title:    "GELECEK HAFTA YÜKSEK öncelikli",
				Priority: entity.PriorityHigh,
				DueDate:  &nextWeek,
			},
		},
		{
			name:    "create without title",
			message: "görev oluştur",
			want: assistant.TaskCall{
				Action:   assistant.TaskCreate,
				Title:    assistant.DefaultTaskTitle,
				Priority: entity.PriorityMedium,
			},
		},
		{
			name:    "list pending",
			message: "bekleyen görevleri göster",
			want: assistant.TaskCall{
				Action:   assistant.TaskList,
				Statuses: []entity.TaskStatus{entity.TaskTodo},
			},
		},
		{
			name:    "list high priority in progress",
			message: "devam eden yüksek öncelikli görev listesi",
			want: assistant.TaskCall{
				Action:     assistant.TaskList,
				Statuses:   []entity.TaskStatus{entity.TaskInProgress},
				Priorities: []entity.TaskPriority{entity.PriorityHigh, entity.PriorityUrgent},
			},
		},
		{
			name:    "complete",
			message: "teklif hazırlama görevini tamamla",
			want: assistant.TaskCall{
				Action: assistant.TaskUpdate,
				Title:  "teklif hazırlama",
			},
		},
		{
			name:    "complete without a title",
			message: "Görevi tamamla",
			want:    assistant.TaskCall{Action: assistant.TaskUpdate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			call, ok := assistant.DetectFunctionCall(tt.message, now)
			require.True(t, ok)
			require.Equal(t, assistant.FuncManageTasks, call.Name)
			require.Nil(t, call.Export)
			require.Equal(t, tt.want, *call.Task)
		})
	}
}

func TestDetectFunctionCall_TaskWinsOverExport(t *testing.T) {
	t.Parallel()

	call, ok := assistant.DetectFunctionCall("excel raporu hazırla görevi ekle", now)
	require.True(t, ok)
	require.Equal(t, assistant.FuncManageTasks, call.Name)
}

func TestDetectFunctionCall_Export(t *testing.T) {
	t.Parallel()

	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	prevEnd := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		message string
		want    assistant.ExportCall
	}{
		{
			name:    "default customers xlsx",
			message: "excel oluştur",
			want:    assistant.ExportCall{ReportType: entity.ReportCustomers, Format: entity.FormatXLSX},
		},
		{
			name:    "sales this month as csv",
			message: "Bu ay satış raporu CSV olarak hazırla",
			want: assistant.ExportCall{
				ReportType: entity.ReportSales,
				Format:     entity.FormatCSV,
				From:       &monthStart,
				To:         &monthEnd,
			},
		},
		{
			name:    "invoices last month",
			message: "geçen ay fatura listesi indir",
			want: assistant.ExportCall{
				ReportType: entity.ReportInvoices,
				Format:     entity.FormatXLSX,
				From:       &prevStart,
				To:         &prevEnd,
			},
		},
		{
			name:    "inventory",
			message: "STOK RAPORU ÇIKAR",
			want:    assistant.ExportCall{ReportType: entity.ReportInventory, Format: entity.FormatXLSX},
		},
		{
			name:    "active suppliers",
			message: "aktif tedarikçi excel aktar",
			want: assistant.ExportCall{
				ReportType: entity.ReportSuppliers,
				Format:     entity.FormatXLSX,
				Statuses:   []string{"aktif", "active"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			call, ok := assistant.DetectFunctionCall(tt.message, now)
			require.True(t, ok)
			require.Equal(t, assistant.FuncGenerateExcel, call.Name)
			require.Equal(t, tt.want, *call.Export)
		})
	}
}

func TestDetectFunctionCall_None(t *testing.T) {
	t.Parallel()

	_, ok := assistant.DetectFunctionCall("Merhaba, bugün hava nasıl?", now)
	require.False(t, ok)
}

func TestCleanSQL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "SELECT 1", assistant.CleanSQL("```sql\nSELECT 1\n```\n"))
	require.Equal(t, "SELECT 1", assistant.CleanSQL("  SELECT 1  "))
}

func TestGuardSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sql     string
		want    string
		wantErr bool
	}{
		{name: "select", sql: "SELECT name, created_at FROM customers;", want: "SELECT name, created_at FROM customers"},
		{name: "cte", sql: "with t as (select 1) select * from t", want: "with t as (select 1) select * from t"},
		{name: "delete", sql: "DELETE FROM customers", wantErr: true},
		{name: "hidden drop", sql: "SELECT 1; drop table customers", wantErr: true},
		{name: "two selects", sql: "SELECT 1; SELECT 2", wantErr: true},
		{name: "not a select", sql: "EXPLAIN SELECT 1", wantErr: true},
		{name: "empty", sql: " ; ", wantErr: true},
		{
			name: "join with aliases",
			sql:  "SELECT c.name, SUM(o.total_amount) AS toplam FROM customers c JOIN orders o ON o.customer_id = c.id GROUP BY c.name",
			want: "SELECT c.name, SUM(o.total_amount) AS toplam FROM customers c JOIN orders o ON o.customer_id = c.id GROUP BY c.name",
		},
		{
			name: "comma list",
			sql:  "SELECT * FROM sales_invoices s, sales_invoice_items i WHERE i.invoice_id = s.id",
			want: "SELECT * FROM sales_invoices s, sales_invoice_items i WHERE i.invoice_id = s.id",
		},
		{
			name: "extract",
			sql:  "SELECT EXTRACT(MONTH FROM invoice_date) AS ay, COUNT(*) FROM sales_invoices GROUP BY ay",
			want: "SELECT EXTRACT(MONTH FROM invoice_date) AS ay, COUNT(*) FROM sales_invoices GROUP BY ay",
		},
		{
			name: "is distinct from",
			sql:  "SELECT id FROM activities WHERE status IS DISTINCT FROM 'completed'",
			want: "SELECT id FROM activities WHERE status IS DISTINCT FROM 'completed'",
		},
		{
			name: "subquery",
			sql:  "SELECT * FROM (SELECT id, title FROM activities) a",
			want: "SELECT * FROM (SELECT id, title FROM activities) a",
		},
		{
			name: "cte over business table",
			sql:  "WITH t AS (SELECT * FROM orders) SELECT * FROM t",
			want: "WITH t AS (SELECT * FROM orders) SELECT * FROM t",
		},
		{name: "veriban credentials", sql: "SELECT company_id, username, password FROM veriban_auth", wantErr: true},
		{name: "nilvera credentials", sql: "SELECT api_key FROM Nilvera_Auth", wantErr: true},
		{name: "credentials in literal", sql: "SELECT 'assistant_messages' AS x FROM customers", wantErr: true},
		{name: "chat history", sql: "SELECT content FROM customers c JOIN assistant_messages m ON true", wantErr: true},
		{name: "unlisted table", sql: "SELECT * FROM companies", wantErr: true},
		{name: "unlisted table after join", sql: "SELECT * FROM orders JOIN companies ON true", wantErr: true},
		{name: "unlisted table in list", sql: "SELECT * FROM orders o, companies c", wantErr: true},
		{name: "unlisted table in cte", sql: "WITH t AS (SELECT * FROM companies) SELECT * FROM t", wantErr: true},
		{name: "schema qualified", sql: "SELECT * FROM public.customers", wantErr: true},
		{name: "catalog", sql: "SELECT usename FROM pg_user", wantErr: true},
		{name: "scope override", sql: "SELECT set_config('app.company_id', 'x', true) FROM customers", wantErr: true},
		{name: "nested query text", sql: "SELECT query_to_xml('select 1', true, true, '')", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := assistant.GuardSQL(tt.sql)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrForbiddenSQL)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestModeSampling(t *testing.T) {
	t.Parallel()

	temp, tokens, asJSON := assistant.ModeSQL.Sampling()
	require.InDelta(t, 0.1, temp, 1e-9)
	require.Equal(t, 500, tokens)
	require.False(t, asJSON)

	_, tokens, asJSON = assistant.ModeReport.Sampling()
	require.Equal(t, 2000, tokens)
	require.True(t, asJSON)
}

func TestPrompts(t *testing.T) {
	t.Parallel()

	msgs := assistant.ReportMessages("aylık satışlar", &assistant.ReportContext{StartDate: "2025-01-01"})
	require.Len(t, msgs, 2)
	require.Equal(t, entity.RoleSystemMsg, msgs[0].Role)
	require.Contains(t, msgs[0].Content, "sales_invoices")
	require.Equal(t, "aylık satışlar\nFİLTRELER:\n- Başlangıç: 2025-01-01\n- Bitiş: Belirtilmedi\n- Para Birimi: TRY", msgs[1].Content)

	rows := make([]map[string]any, 15)
	for i := range rows {
		rows[i] = map[string]any{"n": i}
	}

	msgs, err := assistant.AnalyzeMessages("customers", rows, map[string]any{"total": 15})
	require.NoError(t, err)
	require.Contains(t, msgs[1].Content, "KAYIT SAYISI: 15")
	require.Contains(t, msgs[1].Content, `"n": 9`)
	require.NotContains(t, msgs[1].Content, `"n": 10`)

	msgs, err = assistant.MapColumnsMessages([]string{"Ad"}, []assistant.TargetField{{Name: "name", Description: "Müşteri adı"}})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(msgs[1].Content, `Kaynak kolonlar: ["Ad"]`))
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	plan, failure := assistant.ParseJSON[assistant.ReportPlan](`{"sql":"SELECT 1","chartType":"bar","chartConfig":{"xKey":"a","yKey":"b","title":"t"}}`)
	require.Nil(t, failure)
	require.Equal(t, "SELECT 1", plan.SQL)
	require.Equal(t, "b", plan.ChartConfig.YKey)

	_, failure = assistant.ParseJSON[assistant.Analysis]("not json")
	require.NotNil(t, failure)
	require.True(t, failure.ParseError)
	require.Equal(t, "not json", failure.Content)
}

func TestFormatFunctionResponse(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	got := assistant.FormatFunctionResponse(assistant.FunctionResult{
		Name: assistant.FuncGenerateExcel,
		Report: &entity.GeneratedReport{
			FileName: "musteriler_2025-03-14.xlsx",
			Size:     2560,
		},
	})
	require.Equal(t, "✅ Excel dosyanız hazır! \n\nDosya: musteriler_2025-03-14.xlsx\nBoyut: 2.5 KB\n\nİndirmek için aşağıdaki butona tıklayın.", got)

	got = assistant.FormatFunctionResponse(assistant.FunctionResult{
		Name: assistant.FuncManageTasks,
		Tasks: &assistant.TaskResult{
			Action: assistant.TaskCreate,
			Task:   &entity.Task{Title: "Ara", Priority: entity.PriorityUrgent, DueDate: &due},
		},
	})
	require.Equal(t, "✅ Görev oluşturuldu!\n\n📝 Ara\n🔴 Öncelik: urgent\n📅 Tarihi: 15.03.2025", got)

	tasks := make([]entity.Task, 6)
	for i := range tasks {
		tasks[i] = entity.Task{Title: "T", Status: entity.TaskTodo}
	}
	tasks[0].Status = entity.TaskCompleted
	tasks[1].Status = entity.TaskInProgress

	got = assistant.FormatFunctionResponse(assistant.FunctionResult{
		Name: assistant.FuncManageTasks,
		Tasks: &assistant.TaskResult{
			Action: assistant.TaskList,
			Tasks:  tasks,
			Stats:  &entity.TaskStats{Total: 6, Pending: 4, InProgress: 1, Completed: 1, Overdue: 2},
		},
	})
	require.Contains(t, got, "• ⚠️ Vadesi Geçen: 2\n")
	require.Contains(t, got, "1. ✅ T\n2. 🔄 T\n3. ⏳ T\n")
	require.NotContains(t, got, "6. ")

	got = assistant.FormatFunctionResponse(assistant.FunctionResult{Name: assistant.FuncManageTasks, Err: errors.New("boom")})
	require.Equal(t, "❌ İşlem başarısız: boom", got)
}
