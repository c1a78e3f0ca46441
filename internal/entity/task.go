package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskPostponed  TaskStatus = "postponed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskCompleted, TaskPostponed:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Task is a row of the activities table.
type Task struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	CompanyID   uuid.UUID    `db:"company_id" json:"companyId"`
	Title       string       `db:"title" json:"title"`
	Description string       `db:"description" json:"description"`
	Status      TaskStatus   `db:"status" json:"status"`
	Priority    TaskPriority `db:"priority" json:"priority"`
	DueDate     *time.Time   `db:"due_date" json:"dueDate,omitempty"`
	AssigneeID  *uuid.UUID   `db:"assignee_id" json:"assigneeId,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updatedAt"`
}

func (t Task) IsOverdue(now time.Time) bool {
	return t.Status != TaskCompleted && t.DueDate != nil && t.DueDate.Before(now)
}

type TaskFilter struct {
	CompanyID  uuid.UUID
	Statuses   []TaskStatus
	Priorities []TaskPriority
	Limit      uint64
}

type TaskStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

func NewTaskStats(tasks []Task, now time.Time) TaskStats {
	s := TaskStats{Total: len(tasks)}

	for _, t := range tasks {
		switch t.Status {
		case TaskTodo:
			s.Pending++
		case TaskInProgress:
			s.InProgress++
		case TaskCompleted:
			s.Completed++
		}

		if t.IsOverdue(now) {
			s.Overdue++
		}
	}

	return s
}
