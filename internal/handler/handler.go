package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	_ "github.com/mtlprog/workforce/docs" // Import generated docs
	"github.com/mtlprog/workforce/internal/handler/dto"
	"github.com/mtlprog/workforce/internal/service"
	"github.com/mtlprog/workforce/internal/static"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	taskService *service.TaskService
	store       Pinger
}

// New creates a new Handler instance.
func New(taskService *service.TaskService, store Pinger) *Handler {
	return &Handler{
		taskService: taskService,
		store:       store,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.HandleFunc("GET /api.md", h.handleAPIMd)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	mux.HandleFunc("POST /api/v1/tasks", h.handleCreateTasks)
	mux.HandleFunc("PATCH /api/v1/tasks", h.handleUpdateTasks)
	mux.HandleFunc("GET /api/v1/tasks", h.handleListByPriority)
	mux.HandleFunc("GET /api/v1/tasks/by-date", h.handleFetchByDate)
	mux.HandleFunc("GET /api/v1/tasks/{id}", h.handleGetTask)
	mux.HandleFunc("PATCH /api/v1/tasks/{id}/priority", h.handleUpdatePriority)
	mux.HandleFunc("POST /api/v1/tasks/{id}/comments", h.handleAddComment)
	mux.HandleFunc("POST /api/v1/assignments", h.handleAssignByReference)
}

// handleHealthz returns 200 OK if the store is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("store health check failed", "error", err)
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleAPIMd serves the embedded API reference.
func (h *Handler) handleAPIMd(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.APIMd))
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a service error to its HTTP representation.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractTaskID extracts and validates the task ID path parameter.
// Returns (taskID, true) if valid, (0, false) if invalid (error already sent to client).
func extractTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "task id is required")
		return 0, false
	}

	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || taskID <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "task id must be a positive integer")
		return 0, false
	}

	return taskID, true
}
