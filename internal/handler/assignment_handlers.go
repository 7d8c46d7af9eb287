package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mtlprog/workforce/internal/domain"
	"github.com/mtlprog/workforce/internal/handler/dto"
)

// handleAssignByReference hands every task of a reference to one worker.
// @Summary Assign all tasks of a reference
// @Description Reconciles every task type the reference requires: the lowest-id live task of each type is reassigned, its live duplicates are cancelled, and missing types are created.
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.AssignByReferenceRequest true "Assignment request"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /assignments [post]
func (h *Handler) handleAssignByReference(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignByReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	message, err := h.taskService.AssignByReference(r.Context(),
		req.ReferenceID, domain.ReferenceType(req.ReferenceType), req.AssigneeID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.MessageResponse{Message: message})
}
