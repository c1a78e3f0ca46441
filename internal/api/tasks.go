package api

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const (
	defaultTaskLimit = 50
	maxTaskLimit     = 200
)

type TasksResponse struct {
	Tasks []entity.Task    `json:"tasks"`
	Stats entity.TaskStats `json:"stats"`
}

// Tasks godoc
// @Summary      Görev listesi
// @Description  Görevleri ve özet istatistikleri döner
// @Tags         tasks
// @Produce      json
// @Param        status query string false "Virgülle ayrılmış durumlar" Enums(todo, in_progress, completed, postponed)
// @Param        priority query string false "Virgülle ayrılmış öncelikler" Enums(low, medium, high, urgent)
// @Param        limit query int false "Kayıt sayısı (varsayılan 50)"
// @Success      200 {object} TasksResponse
// @Failure      400 {object} ResponseError "Geçersiz istek parametreleri"
// @Failure      500 {object} ResponseError "Sunucu hatası"
// @Security     BearerAuth
// @Router       /tasks [get]
func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	f := entity.TaskFilter{
		Limit: parseLimit(q, "limit", defaultTaskLimit, maxTaskLimit),
	}

	for _, s := range splitList(q, "status") {
		f.Statuses = append(f.Statuses, entity.TaskStatus(s))
	}

	for _, p := range splitList(q, "priority") {
		f.Priorities = append(f.Priorities, entity.TaskPriority(p))
	}

	tasks, stats, err := h.s.Tasks(ctx, f)
	if err != nil {
		SendServiceErr(ctx, w, err, "görevler alınamadı")
		return
	}

	if tasks == nil {
		tasks = []entity.Task{}
	}

	SendJSON(ctx, w, http.StatusOK, TasksResponse{Tasks: tasks, Stats: stats})
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"max=4000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"dueDate"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
}

// CreateTask godoc
// @Summary      Görev oluşturma
// @Description  Yeni bir görev (aktivite) oluşturur
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body CreateTaskRequest true "Görev"
// @Success      201 {object} entity.Task
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Failure      500 {object} ResponseError "Sunucu hatası"
// @Security     BearerAuth
// @Router       /tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTaskRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	task, err := h.s.CreateTask(ctx, entity.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    entity.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "görev oluşturulamadı")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, task)
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=todo in_progress completed postponed"`
}

// UpdateTaskStatus godoc
// @Summary      Görev durumu
// @Description  Görevin durumunu değiştirir
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "Görev ID"
// @Param        request body UpdateTaskStatusRequest true "Yeni durum"
// @Success      200 {object} entity.Task
// @Failure      400 {object} ResponseError "Geçersiz istek"
// @Failure      404 {object} ResponseError "Görev bulunamadı"
// @Failure      500 {object} ResponseError "Sunucu hatası"
// @Security     BearerAuth
// @Router       /tasks/{id}/status [put]
func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	var req UpdateTaskStatusRequest

	err = decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	task, err := h.s.UpdateTaskStatus(ctx, id, entity.TaskStatus(req.Status))
	if err != nil {
		SendServiceErr(ctx, w, err, "görev güncellenemedi")
		return
	}

	SendJSON(ctx, w, http.StatusOK, task)
}
