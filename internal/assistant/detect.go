// Package assistant holds the keyword dispatch, prompts and reply formatting of the AI assistant.
package assistant

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samandr77/microservices/erp/internal/entity"
)

type FunctionName string

const (
	FuncGenerateExcel FunctionName = "generate_excel"
	FuncManageTasks   FunctionName = "manage_tasks"
)

type TaskAction string

const (
	TaskCreate TaskAction = "create"
	TaskList   TaskAction = "list"
	TaskUpdate TaskAction = "update"
)

const DefaultTaskTitle = "Yeni Görev"

// FunctionCall is what a chat message asks the assistant to do. Exactly one of Task and Export is set.
type FunctionCall struct {
	Name   FunctionName `json:"name"`
	Task   *TaskCall    `json:"task,omitempty"`
	Export *ExportCall  `json:"export,omitempty"`
}

type TaskCall struct {
	Action     TaskAction            `json:"action"`
	Title      string                `json:"title,omitempty"`
	Priority   entity.TaskPriority   `json:"priority,omitempty"`
	DueDate    *time.Time            `json:"dueDate,omitempty"`
	Statuses   []entity.TaskStatus   `json:"statuses,omitempty"`
	Priorities []entity.TaskPriority `json:"priorities,omitempty"`
}

type ExportCall struct {
	ReportType entity.ReportType   `json:"reportType"`
	Format     entity.ReportFormat `json:"format"`
	From       *time.Time          `json:"from,omitempty"`
	To         *time.Time          `json:"to,omitempty"`
	Statuses   []string            `json:"statuses,omitempty"`
}

var (
	excelPatterns = compile(
		`excel.*(?:oluştur|hazırla|aktar|indir|çıkar)`,
		`(?:oluştur|hazırla|aktar|indir|çıkar).*excel`,
		`rapor.*(?:oluştur|hazırla|indir|çıkar)`,
		`(?:müşteri|satış|fatura|stok|ürün).*(?:listesi|raporu).*(?:oluştur|hazırla|indir)`,
		`(?:oluştur|hazırla|indir|çıkar).*(?:müşteri|satış|fatura|stok|ürün).*(?:listesi|raporu)`,
		`csv.*(?:oluştur|hazırla|aktar|indir)`,
	)

	taskCreatePatterns = compile(
		kw("görev|task") + ".*" + kw("oluştur|ekle|yarat|yap"),
		kw("oluştur|ekle|yarat|yap") + ".*" + kw("görev|task"),
		kw("hatırlat|reminder") + ".*" + kw("ekle|oluştur"),
	)

	taskListPatterns = compile(
		kw("görev|task") + ".*" + kw("listesi|liste|göster|neler|var"),
		kw("bekleyen|pending|tamamlanmamış") + ".*" + kw("görev|task"),
		kw("görevlerimi|tasklerimi") + ".*" + kw("göster|listele"),
		kw("ne") + ".*" + kw("görev|task") + ".*" + kw("var"),
	)

	taskUpdatePatterns = compile(
		kw("görev|task") + ".*" + kw("tamamla|bitir|complete"),
		kw("tamamla|bitir|complete") + ".*" + kw("görev|task"),
		kw("görev|task") + ".*" + kw("güncelle|update"),
	)

	createNoise = []string{"görev", "task", "oluştur", "ekle", "yarat", "yap", "hatırlat", "reminder", "için", "lütfen"}
	updateNoise = []string{"görev", "task", "tamamla", "bitir", "complete", "güncelle", "update", "lütfen"}

	turkishLower = cases.Lower(language.Turkish)
)

// kw matches one of the alternatives at the start of a word. Turkish inflects with suffixes,
// so "görevleri" still matches "görev" while "bekleyen" does not match "ekle".
func kw(alternatives string) string {
	return `(?:^|\P{L})(?:` + alternatives + `)`
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}

	return out
}

// fold lowers the message both with Turkish and with default casing rules, one per line,
// so that "İ" and "I" match whichever spelling a pattern expects.
func fold(message string) string {
	return turkishLower.String(message) + "\n" + strings.ToLower(message)
}

func matchAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}

	return false
}

func has(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}

	return false
}

// DetectFunctionCall decides whether a chat message asks for a task operation or a spreadsheet
// export. Task requests take precedence.
func DetectFunctionCall(message string, now time.Time) (FunctionCall, bool) {
	text := fold(message)

	isCreate := matchAny(text, taskCreatePatterns)
	isList := matchAny(text, taskListPatterns)
	isUpdate := matchAny(text, taskUpdatePatterns)

	switch {
	case isCreate:
		return FunctionCall{Name: FuncManageTasks, Task: detectTaskCreate(message, text, now)}, true
	case isUpdate:
		return FunctionCall{Name: FuncManageTasks, Task: &TaskCall{
			Action: TaskUpdate,
			Title:  cleanTitle(message, updateNoise),
		}}, true
	case isList:
		return FunctionCall{Name: FuncManageTasks, Task: detectTaskList(text)}, true
	}

	if matchAny(text, excelPatterns) {
		return FunctionCall{Name: FuncGenerateExcel, Export: detectExport(text, now)}, true
	}

	return FunctionCall{}, false
}

func detectTaskCreate(message, text string, now time.Time) *TaskCall {
	call := &TaskCall{
		Action:   TaskCreate,
		Title:    cleanTitle(message, createNoise),
		Priority: entity.PriorityMedium,
	}

	if call.Title == "" {
		call.Title = DefaultTaskTitle
	}

	var due time.Time

	switch {
	case has(text, "yarın"):
		due = now.AddDate(0, 0, 1)
	case has(text, "bugün"):
		due = now
	case has(text, "gelecek hafta"):
		due = now.AddDate(0, 0, 7)
	}

	if !due.IsZero() {
		call.DueDate = &due
	}

	switch {
	case has(text, "acil", "urgent", "önemli", "kritik"):
		call.Priority = entity.PriorityUrgent
	case has(text, "yüksek", "high"):
		call.Priority = entity.PriorityHigh
	case has(text, "düşük", "low"):
		call.Priority = entity.PriorityLow
	}

	return call
}

func detectTaskList(text string) *TaskCall {
	call := &TaskCall{Action: TaskList}

	switch {
	case has(text, "bekleyen", "pending"):
		call.Statuses = []entity.TaskStatus{entity.TaskTodo}
	case has(text, "devam eden", "in progress"):
		call.Statuses = []entity.TaskStatus{entity.TaskInProgress}
	case has(text, "tamamlanmış", "completed"):
		call.Statuses = []entity.TaskStatus{entity.TaskCompleted}
	}

	switch {
	case has(text, "acil", "urgent"):
		call.Priorities = []entity.TaskPriority{entity.PriorityUrgent}
	case has(text, "yüksek", "high"):
		call.Priorities = []entity.TaskPriority{entity.PriorityHigh, entity.PriorityUrgent}
	}

	return call
}

func detectExport(text string, now time.Time) *ExportCall {
	call := &ExportCall{ReportType: entity.ReportCustomers, Format: entity.FormatXLSX}

	switch {
	case has(text, "müşteri"):
		call.ReportType = entity.ReportCustomers
	case has(text, "satış", "ciro"):
		call.ReportType = entity.ReportSales
	case has(text, "fatura"):
		call.ReportType = entity.ReportInvoices
	case has(text, "stok", "ürün", "envanter"):
		call.ReportType = entity.ReportInventory
	case has(text, "tedarikçi", "supplier"):
		call.ReportType = entity.ReportSuppliers
	}

	if has(text, "csv") {
		call.Format = entity.FormatCSV
	}

	y, m, _ := now.Date()
	loc := now.Location()

	var from, to time.Time

	switch {
	case has(text, "bu ay"):
		from = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		to = from.AddDate(0, 1, -1)
	case has(text, "geçen ay"):
		from = time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
		to = time.Date(y, m, 0, 0, 0, 0, 0, loc)
	case has(text, "bu yıl"):
		from = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		to = time.Date(y, time.December, 31, 0, 0, 0, 0, loc)
	}

	if !from.IsZero() {
		call.From, call.To = &from, &to
	}

	switch {
	case has(text, "aktif"):
		call.Statuses = []string{"aktif", "active"}
	case has(text, "pasif"):
		call.Statuses = []string{"pasif", "passive"}
	}

	return call
}

// cleanTitle drops every word that starts with one of the noise keywords.
func cleanTitle(message string, noise []string) string {
	words := strings.Fields(message)
	out := words[:0]

	for _, w := range words {
		lw := turkishLower.String(w)
		if !slices.ContainsFunc(noise, func(n string) bool { return strings.HasPrefix(lw, n) }) {
			out = append(out, w)
		}
	}

	return strings.Join(out, " ")
}
