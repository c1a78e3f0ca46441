package assistant

import (
	"fmt"
	"strings"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const listedTasks = 5

// TaskResult is what a manage_tasks call produced.
type TaskResult struct {
	Action  TaskAction        `json:"action"`
	Task    *entity.Task      `json:"task,omitempty"`
	Tasks   []entity.Task     `json:"tasks,omitempty"`
	Stats   *entity.TaskStats `json:"stats,omitempty"`
	Updated int               `json:"updated,omitempty"`
}

// FunctionResult carries the outcome of a dispatched function. Err is set on failure.
type FunctionResult struct {
	Name   FunctionName            `json:"name"`
	Report *entity.GeneratedReport `json:"report,omitempty"`
	Tasks  *TaskResult             `json:"tasks,omitempty"`
	Err    error                   `json:"-"`
}

// FormatFunctionResponse renders the chat reply for a dispatched function.
func FormatFunctionResponse(r FunctionResult) string {
	switch r.Name {
	case FuncGenerateExcel:
		if r.Err != nil || r.Report == nil {
			return "❌ Dosya oluşturulurken bir hata oluştu: " + errText(r.Err)
		}

		return fmt.Sprintf("✅ Excel dosyanız hazır! \n\nDosya: %s\nBoyut: %.1f KB\n\nİndirmek için aşağıdaki butona tıklayın.",
			r.Report.FileName, float64(r.Report.Size)/1024)

	case FuncManageTasks:
		if r.Err != nil || r.Tasks == nil {
			return "❌ İşlem başarısız: " + errText(r.Err)
		}

		return formatTasks(*r.Tasks)
	}

	if r.Err != nil {
		return "❌ Hata: " + errText(r.Err)
	}

	return "✅ İşlem başarılı"
}

func formatTasks(r TaskResult) string {
	switch r.Action {
	case TaskCreate:
		if r.Task == nil {
			break
		}

		var b strings.Builder

		fmt.Fprintf(&b, "✅ Görev oluşturuldu!\n\n📝 %s\n%s Öncelik: %s\n", r.Task.Title, priorityIcon(r.Task.Priority), r.Task.Priority)

		if r.Task.DueDate != nil {
			fmt.Fprintf(&b, "📅 Tarihi: %s", r.Task.DueDate.Format("02.01.2006"))
		}

		return b.String()

	case TaskList:
		var b strings.Builder

		stats := entity.TaskStats{}
		if r.Stats != nil {
			stats = *r.Stats
		}

		b.WriteString("📋 Görev Özeti:\n\n")
		fmt.Fprintf(&b, "• Toplam: %d\n", stats.Total)
		fmt.Fprintf(&b, "• Bekleyen: %d\n", stats.Pending)
		fmt.Fprintf(&b, "• Devam Eden: %d\n", stats.InProgress)
		fmt.Fprintf(&b, "• Tamamlanan: %d\n", stats.Completed)

		if stats.Overdue > 0 {
			fmt.Fprintf(&b, "• ⚠️ Vadesi Geçen: %d\n", stats.Overdue)
		}

		if len(r.Tasks) > 0 {
			b.WriteString("\n📌 Son Görevler:\n")

			for i, t := range r.Tasks[:min(len(r.Tasks), listedTasks)] {
				fmt.Fprintf(&b, "%d. %s %s\n", i+1, statusIcon(t.Status), t.Title)
			}
		}

		return b.String()

	case TaskUpdate:
		if r.Task == nil {
			return "🤔 Hangi görevi tamamlamak istiyorsunuz? Görevin adını da yazın, örneğin: \"teklif hazırlama görevini tamamla\""
		}

		return fmt.Sprintf("✅ Görev tamamlandı: %s", r.Task.Title)
	}

	return "✅ İşlem başarılı"
}

func priorityIcon(p entity.TaskPriority) string {
	switch p {
	case entity.PriorityUrgent:
		return "🔴"
	case entity.PriorityHigh:
		return "🟠"
	default:
		return "🟢"
	}
}

func statusIcon(s entity.TaskStatus) string {
	switch s {
	case entity.TaskCompleted:
		return "✅"
	case entity.TaskInProgress:
		return "🔄"
	default:
		return "⏳"
	}
}

func errText(err error) string {
	if err == nil {
		return "bilinmeyen hata"
	}

	return err.Error()
}
