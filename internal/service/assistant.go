package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/samandr77/microservices/erp/internal/assistant"
	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/httpclients/groq"
	"github.com/samandr77/microservices/erp/internal/report"
)

const (
	queryRowLimit  = 500
	exportRowLimit = 10000
	listedTaskRows = 10
)

// Answer is a json_object completion. When the model did not return JSON, Failure carries the
// raw text instead.
type Answer[T any] struct {
	Result  T
	Failure *assistant.ParseFailure
}

// Value is what the API returns: the parsed result or the failure.
func (a Answer[T]) Value() any {
	if a.Failure != nil {
		return a.Failure
	}

	return a.Result
}

type SQLResult struct {
	SQL string `json:"sql"`
	Raw string `json:"raw"`
}

type QueryResult struct {
	SQL  string           `json:"sql"`
	Rows []map[string]any `json:"rows"`
}

// DispatchResult is the reply to a chat message that may have triggered a function.
type DispatchResult struct {
	Detected    bool                    `json:"detected"`
	Call        *assistant.FunctionCall `json:"call,omitempty"`
	Reply       string                  `json:"reply,omitempty"`
	Report      *entity.GeneratedReport `json:"report,omitempty"`
	DownloadURL string                  `json:"downloadUrl,omitempty"`
	Tasks       *assistant.TaskResult   `json:"tasks,omitempty"`
}

func (s *Service) AssistantStatus(_ context.Context) bool {
	return s.llm.Configured()
}

func (s *Service) Chat(ctx context.Context, msgs []entity.ChatMessage) (string, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return "", err
	}

	err = validateChat(msgs)
	if err != nil {
		return "", err
	}

	reply, err := s.complete(ctx, assistant.ModeChat, msgs)
	if err != nil {
		return "", err
	}

	s.saveTurn(ctx, user, lastUserMessage(msgs), reply)

	return reply, nil
}

// ChatStream copies the model's event stream to w as it arrives. Once the stream ends, the
// collected text is stored as the assistant's answer, also when the client went away midway.
func (s *Service) ChatStream(ctx context.Context, msgs []entity.ChatMessage, w io.Writer) error {
	user, err := userFromContext(ctx)
	if err != nil {
		return err
	}

	err = validateChat(msgs)
	if err != nil {
		return err
	}

	temperature, maxTokens, _ := assistant.ModeChat.Sampling()

	stream, err := s.llm.Stream(ctx, groq.Request{
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return fmt.Errorf("start stream: %w", err)
	}

	defer stream.Close()

	_, copyErr := io.Copy(w, stream)

	if text := stream.Text(); text != "" {
		s.saveTurn(context.WithoutCancel(ctx), user, lastUserMessage(msgs), text)
	}

	if copyErr != nil && !errors.Is(copyErr, context.Canceled) {
		return fmt.Errorf("copy stream: %w", copyErr)
	}

	return nil
}

// GenerateSQL turns a question into a single SELECT statement.
func (s *Service) GenerateSQL(ctx context.Context, question string) (SQLResult, error) {
	if strings.TrimSpace(question) == "" {
		return SQLResult{}, fmt.Errorf("%w: empty question", entity.ErrInvalidArgument)
	}

	raw, err := s.complete(ctx, assistant.ModeSQL, assistant.SQLMessages(question))
	if err != nil {
		return SQLResult{}, err
	}

	sql, err := assistant.GuardSQL(assistant.CleanSQL(raw))
	if err != nil {
		slog.WarnContext(ctx, "generated sql rejected", "error", err)
		return SQLResult{}, err
	}

	return SQLResult{SQL: sql, Raw: raw}, nil
}

// RunQuery generates SQL for the question and runs it read-only against the caller's company.
// Only admins and managers may run it.
func (s *Service) RunQuery(ctx context.Context, question string) (QueryResult, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return QueryResult{}, err
	}

	if user.Role != entity.RoleAdmin && user.Role != entity.RoleManager {
		return QueryResult{}, fmt.Errorf("%w: user %s may not run queries", entity.ErrForbidden, user.ID)
	}

	gen, err := s.GenerateSQL(ctx, question)
	if err != nil {
		return QueryResult{}, err
	}

	rows, err := s.repo.ReadOnlyQuery(ctx, user.CompanyID, gen.SQL, queryRowLimit)
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: run query: %w", entity.ErrInvalidArgument, err)
	}

	slog.InfoContext(ctx, "assistant query executed", "rows", len(rows))

	return QueryResult{SQL: gen.SQL, Rows: rows}, nil
}

func (s *Service) Analyze(ctx context.Context, table string, rows []map[string]any, summary map[string]any) (Answer[assistant.Analysis], error) {
	msgs, err := assistant.AnalyzeMessages(table, rows, summary)
	if err != nil {
		return Answer[assistant.Analysis]{}, fmt.Errorf("%w: %w", entity.ErrInvalidArgument, err)
	}

	return completeJSON[assistant.Analysis](ctx, s, assistant.ModeAnalyze, msgs)
}

func (s *Service) MapColumns(ctx context.Context, columns []string, targets []assistant.TargetField) (Answer[assistant.ColumnMappings], error) {
	if len(columns) == 0 || len(targets) == 0 {
		return Answer[assistant.ColumnMappings]{}, fmt.Errorf("%w: columns and targets are required", entity.ErrInvalidArgument)
	}

	msgs, err := assistant.MapColumnsMessages(columns, targets)
	if err != nil {
		return Answer[assistant.ColumnMappings]{}, fmt.Errorf("%w: %w", entity.ErrInvalidArgument, err)
	}

	return completeJSON[assistant.ColumnMappings](ctx, s, assistant.ModeMapColumns, msgs)
}

func (s *Service) Report(ctx context.Context, question string, rc *assistant.ReportContext) (Answer[assistant.ReportPlan], error) {
	if strings.TrimSpace(question) == "" {
		return Answer[assistant.ReportPlan]{}, fmt.Errorf("%w: empty question", entity.ErrInvalidArgument)
	}

	return completeJSON[assistant.ReportPlan](ctx, s, assistant.ModeReport, assistant.ReportMessages(question, rc))
}

// Dispatch runs the function a chat message asks for. Messages that match no function are
// reported as not detected and left to the chat model. A failing function is explained in the
// reply rather than returned as an error.
func (s *Service) Dispatch(ctx context.Context, message string) (DispatchResult, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return DispatchResult{}, err
	}

	call, ok := assistant.DetectFunctionCall(message, s.now())
	if !ok {
		return DispatchResult{}, nil
	}

	res := DispatchResult{Detected: true, Call: &call}
	fr := assistant.FunctionResult{Name: call.Name}

	switch {
	case call.Export != nil:
		fr.Report, res.DownloadURL, fr.Err = s.exportReport(ctx, user, *call.Export)
	case call.Task != nil:
		fr.Tasks, fr.Err = s.manageTasks(ctx, *call.Task)
	}

	if fr.Err != nil {
		slog.ErrorContext(ctx, "assistant function failed", "function", call.Name, "error", fr.Err)
	}

	res.Report = fr.Report
	res.Tasks = fr.Tasks
	res.Reply = assistant.FormatFunctionResponse(fr)

	s.saveTurn(ctx, user, message, res.Reply)

	return res, nil
}

func (s *Service) exportReport(ctx context.Context, user entity.User, call assistant.ExportCall) (*entity.GeneratedReport, string, error) {
	data, err := s.repo.ReportData(ctx, call.ReportType, entity.ReportFilter{
		CompanyID: user.CompanyID,
		From:      call.From,
		To:        call.To,
		Statuses:  call.Statuses,
		Limit:     exportRowLimit,
	})
	if err != nil {
		return nil, "", fmt.Errorf("report data: %w", err)
	}

	data.Title = report.Title(call.ReportType)

	file, err := report.Render(data, call.Format)
	if err != nil {
		return nil, "", fmt.Errorf("render report: %w", err)
	}

	now := s.now()
	rep := entity.GeneratedReport{
		ID:         newID(),
		CompanyID:  user.CompanyID,
		UserID:     user.ID,
		ReportType: call.ReportType,
		Format:     call.Format,
		FileName:   report.FileName(call.ReportType, call.Format, now),
		Size:       int64(len(file)),
		RowCount:   len(data.Rows),
		CreatedAt:  now,
	}
	rep.ObjectKey = fmt.Sprintf("reports/%s/%s/%s", user.CompanyID, rep.ID, rep.FileName)

	err = s.storage.Upload(ctx, rep.ObjectKey, file, call.Format.ContentType())
	if err != nil {
		return nil, "", fmt.Errorf("upload report: %w", err)
	}

	err = s.repo.CreateGeneratedReport(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("save report: %w", err)
	}

	url, err := s.storage.DownloadURL(ctx, rep.ObjectKey)
	if err != nil {
		slog.WarnContext(ctx, "presign report url", "error", err)
	}

	slog.InfoContext(ctx, "report generated", "report_id", rep.ID, "type", rep.ReportType, "rows", rep.RowCount)

	return &rep, url, nil
}

func (s *Service) manageTasks(ctx context.Context, call assistant.TaskCall) (*assistant.TaskResult, error) {
	res := &assistant.TaskResult{Action: call.Action}

	switch call.Action {
	case assistant.TaskCreate:
		t, err := s.CreateTask(ctx, entity.Task{
			Title:    call.Title,
			Priority: call.Priority,
			DueDate:  call.DueDate,
		})
		if err != nil {
			return nil, err
		}

		res.Task = &t

	case assistant.TaskList:
		tasks, stats, err := s.Tasks(ctx, entity.TaskFilter{
			Statuses:   call.Statuses,
			Priorities: call.Priorities,
			Limit:      listedTaskRows,
		})
		if err != nil {
			return nil, err
		}

		res.Tasks = tasks
		res.Stats = &stats

	case assistant.TaskUpdate:
		// Without a title any open task would match.
		if strings.TrimSpace(call.Title) == "" {
			return res, nil
		}

		user, err := userFromContext(ctx)
		if err != nil {
			return nil, err
		}

		t, err := s.repo.TaskByTitle(ctx, user.CompanyID, call.Title)
		if err != nil {
			return nil, fmt.Errorf("find task %q: %w", call.Title, err)
		}

		t, err = s.UpdateTaskStatus(ctx, t.ID, entity.TaskCompleted)
		if err != nil {
			return nil, err
		}

		res.Task = &t
		res.Updated = 1

	default:
		return nil, fmt.Errorf("%w: unknown task action %q", entity.ErrInvalidArgument, call.Action)
	}

	return res, nil
}

func (s *Service) complete(ctx context.Context, mode assistant.Mode, msgs []entity.ChatMessage) (string, error) {
	temperature, maxTokens, jsonObject := mode.Sampling()

	content, err := s.llm.Complete(ctx, groq.Request{
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSONObject:  jsonObject,
	})
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", mode, err)
	}

	return content, nil
}

func completeJSON[T any](ctx context.Context, s *Service, mode assistant.Mode, msgs []entity.ChatMessage) (Answer[T], error) {
	content, err := s.complete(ctx, mode, msgs)
	if err != nil {
		return Answer[T]{}, err
	}

	v, failure := assistant.ParseJSON[T](content)
	if failure != nil {
		slog.WarnContext(ctx, "model answer is not json", "mode", mode)
	}

	return Answer[T]{Result: v, Failure: failure}, nil
}

// saveTurn stores the exchange. The reply was already produced, so a failure is only logged.
func (s *Service) saveTurn(ctx context.Context, user entity.User, question, reply string) {
	now := s.now()
	msgs := make([]entity.AssistantMessage, 0, 2)

	if question != "" {
		msgs = append(msgs, entity.AssistantMessage{
			ID:        newID(),
			CompanyID: user.CompanyID,
			UserID:    user.ID,
			Role:      entity.RoleUserMsg,
			Content:   question,
			CreatedAt: now,
		})
	}

	msgs = append(msgs, entity.AssistantMessage{
		ID:        newID(),
		CompanyID: user.CompanyID,
		UserID:    user.ID,
		Role:      entity.RoleAssistantMsg,
		Content:   reply,
		CreatedAt: now,
	})

	err := s.repo.SaveAssistantMessages(ctx, msgs...)
	if err != nil {
		slog.ErrorContext(ctx, "save assistant messages", "error", err)
	}
}

func validateChat(msgs []entity.ChatMessage) error {
	if len(msgs) == 0 {
		return fmt.Errorf("%w: no messages", entity.ErrInvalidArgument)
	}

	roles := []entity.ChatRole{entity.RoleSystemMsg, entity.RoleUserMsg, entity.RoleAssistantMsg}

	for _, m := range msgs {
		if !slices.Contains(roles, m.Role) {
			return fmt.Errorf("%w: unknown role %q", entity.ErrInvalidArgument, m.Role)
		}
	}

	return nil
}

func lastUserMessage(msgs []entity.ChatMessage) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == entity.RoleUserMsg {
			return msgs[i].Content
		}
	}

	return ""
}
