package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/erp/internal/assistant"
	"github.com/samandr77/microservices/erp/internal/entity"
)

const defaultTaskLimit = 50

func (s *Service) Tasks(ctx context.Context, f entity.TaskFilter) ([]entity.Task, entity.TaskStats, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return nil, entity.TaskStats{}, err
	}

	f.CompanyID = user.CompanyID
	if f.Limit == 0 {
		f.Limit = defaultTaskLimit
	}

	tasks, err := s.repo.Tasks(ctx, f)
	if err != nil {
		return nil, entity.TaskStats{}, fmt.Errorf("list tasks: %w", err)
	}

	stats, err := s.repo.TaskStats(ctx, user.CompanyID, s.now())
	if err != nil {
		return nil, entity.TaskStats{}, fmt.Errorf("task stats: %w", err)
	}

	return tasks, stats, nil
}

// CreateTask stores a new todo task. Title and priority fall back to the assistant defaults.
func (s *Service) CreateTask(ctx context.Context, t entity.Task) (entity.Task, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return entity.Task{}, err
	}

	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		t.Title = assistant.DefaultTaskTitle
	}

	if t.Priority == "" {
		t.Priority = entity.PriorityMedium
	}

	if !t.Priority.IsValid() {
		return entity.Task{}, fmt.Errorf("%w: unknown priority %q", entity.ErrInvalidArgument, t.Priority)
	}

	now := s.now()
	t.ID = newID()
	t.CompanyID = user.CompanyID
	t.Status = entity.TaskTodo
	t.CreatedAt = now
	t.UpdatedAt = now

	if t.AssigneeID == nil {
		t.AssigneeID = ptr(user.ID)
	}

	err = s.repo.CreateTask(ctx, t)
	if err != nil {
		return entity.Task{}, fmt.Errorf("create task: %w", err)
	}

	slog.InfoContext(ctx, "task created", "task_id", t.ID)

	return t, nil
}

func (s *Service) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status entity.TaskStatus) (entity.Task, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return entity.Task{}, err
	}

	if !status.IsValid() {
		return entity.Task{}, fmt.Errorf("%w: unknown status %q", entity.ErrInvalidArgument, status)
	}

	err = s.repo.UpdateTaskStatus(ctx, user.CompanyID, id, status, s.now())
	if err != nil {
		return entity.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}

	return s.repo.Task(ctx, user.CompanyID, id)
}
