package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mtlprog/workforce/internal/domain"
	"github.com/mtlprog/workforce/internal/handler/dto"
	"github.com/mtlprog/workforce/internal/service"
)

// handleCreateTasks creates a batch of tasks.
// @Summary Create tasks
// @Description Creates a batch of tasks. The whole batch is validated before any task is stored.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTasksRequest true "Task creation batch"
// @Success 201 {object} dto.TasksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks [post]
func (h *Handler) handleCreateTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if len(req.Requests) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "requests must not be empty")
		return
	}

	items := make([]service.CreateTaskParams, len(req.Requests))
	for i, item := range req.Requests {
		params := service.CreateTaskParams{
			ReferenceID:   item.ReferenceID,
			ReferenceType: domain.ReferenceType(item.ReferenceType),
			Type:          domain.TaskType(item.Task),
			AssigneeID:    item.AssigneeID,
			Deadline:      item.TaskDeadlineTime,
			Description:   item.Description,
		}
		if item.Priority != "" {
			priority := domain.TaskPriority(item.Priority)
			params.Priority = &priority
		}
		if item.StartDate != "" {
			start, err := time.Parse(time.DateOnly, item.StartDate)
			if err != nil {
				respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "start_date must be formatted as YYYY-MM-DD")
				return
			}
			params.StartDate = &start
		}
		items[i] = params
	}

	tasks, err := h.taskService.CreateTasks(r.Context(), items)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTasksResponse(tasks))
}

// handleUpdateTasks applies a batch of status and description changes.
// @Summary Update tasks
// @Description Changes status and description of existing tasks. Status changes are recorded as activities.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.UpdateTasksRequest true "Task update batch"
// @Success 200 {object} dto.TasksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks [patch]
func (h *Handler) handleUpdateTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if len(req.Requests) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "requests must not be empty")
		return
	}

	items := make([]service.UpdateTaskParams, len(req.Requests))
	for i, item := range req.Requests {
		params := service.UpdateTaskParams{
			TaskID:      item.TaskID,
			Description: item.Description,
		}
		if item.TaskStatus != "" {
			status := domain.TaskStatus(item.TaskStatus)
			params.Status = &status
		}
		items[i] = params
	}

	tasks, err := h.taskService.UpdateTasks(r.Context(), items)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTasksResponse(tasks))
}

// handleListByPriority lists non-cancelled tasks of one priority.
// @Summary List tasks by priority
// @Description Lists non-cancelled tasks with the given priority, ordered by id
// @Tags tasks
// @Produce json
// @Param priority query string true "Task priority (case-insensitive)" Enums(LOW, MEDIUM, HIGH)
// @Success 200 {object} dto.TasksResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks [get]
func (h *Handler) handleListByPriority(w http.ResponseWriter, r *http.Request) {
	priority := domain.TaskPriority(strings.ToUpper(r.URL.Query().Get("priority")))

	tasks, err := h.taskService.FindTasksByPriority(r.Context(), priority)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTasksResponse(tasks))
}

// handleFetchByDate lists tasks of the given assignees active in a date window.
// @Summary Fetch tasks by date window
// @Description Lists tasks of the given assignees that start inside the inclusive window, plus earlier tasks that are still open
// @Tags tasks
// @Produce json
// @Param assignee_ids query string false "Comma-separated assignee ids"
// @Param start_date query string true "Window start (YYYY-MM-DD)"
// @Param end_date query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.TasksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/by-date [get]
func (h *Handler) handleFetchByDate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	assigneeIDs, err := parseIDList(query.Get("assignee_ids"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "assignee_ids must be a comma-separated list of integers")
		return
	}

	start, ok := parseDateParam(w, query.Get("start_date"), "start_date")
	if !ok {
		return
	}
	end, ok := parseDateParam(w, query.Get("end_date"), "end_date")
	if !ok {
		return
	}

	tasks, err := h.taskService.FetchTasksByDate(r.Context(), assigneeIDs, start, end)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTasksResponse(tasks))
}

// handleGetTask returns task details with activities and comments.
// @Summary Get task details
// @Description Get a task with its activity history and comments, oldest first
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.TaskDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	detail, err := h.taskService.FindTaskByID(r.Context(), taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskDetailResponse(detail))
}

// handleUpdatePriority changes the priority of a single task.
// @Summary Update task priority
// @Description Changes the priority of a task and records a PRIORITY_CHANGED activity
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body dto.UpdatePriorityRequest true "New priority"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/{id}/priority [patch]
func (h *Handler) handleUpdatePriority(w http.ResponseWriter, r *http.Request) {
	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePriorityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTaskPriority(r.Context(), taskID, domain.TaskPriority(strings.ToUpper(req.Priority)))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleAddComment attaches a comment to a task.
// @Summary Add comment
// @Description Attaches a comment to a task and records a COMMENT_ADDED activity
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body dto.AddCommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /tasks/{id}/comments [post]
func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	comment, err := h.taskService.AddComment(r.Context(), taskID, req.UserID, req.Comment)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToCommentResponse(comment))
}

// parseIDList parses "1,2,3". An empty string yields an empty list.
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return []int64{}, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDateParam parses an optional YYYY-MM-DD query value. A missing value
// yields the zero time and is rejected further down by the service.
func parseDateParam(w http.ResponseWriter, raw, name string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}

	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", name+" must be formatted as YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
