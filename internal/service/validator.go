package service

import (
	"fmt"
	"time"

	"github.com/mtlprog/workforce/internal/domain"
)

// Validator rejects malformed requests before they reach the store.
type Validator struct {
	catalog *domain.Catalog
}

// NewValidator creates a new Validator backed by the given catalog.
func NewValidator(catalog *domain.Catalog) *Validator {
	return &Validator{
		catalog: catalog,
	}
}

// ValidateReference checks that a reference is addressable in the catalog.
func (v *Validator) ValidateReference(referenceID int64, referenceType domain.ReferenceType) error {
	if referenceID <= 0 {
		return fmt.Errorf("%w: reference_id must be positive, got %d", domain.ErrValidation, referenceID)
	}
	if referenceType == "" {
		return fmt.Errorf("%w: reference_type is required", domain.ErrValidation)
	}
	if !v.catalog.HasReferenceType(referenceType) {
		return fmt.Errorf("%w: unknown reference_type %s", domain.ErrValidation, referenceType)
	}
	return nil
}

// ValidateCreate checks a task creation item.
func (v *Validator) ValidateCreate(item CreateTaskParams) error {
	if err := v.ValidateReference(item.ReferenceID, item.ReferenceType); err != nil {
		return err
	}
	if item.Type == "" {
		return fmt.Errorf("%w: task is required", domain.ErrValidation)
	}
	if !v.catalog.Supports(item.ReferenceType, item.Type) {
		return fmt.Errorf("%w: task %s does not apply to reference_type %s", domain.ErrValidation, item.Type, item.ReferenceType)
	}
	if item.AssigneeID != nil && *item.AssigneeID <= 0 {
		return fmt.Errorf("%w: assignee_id must be positive, got %d", domain.ErrValidation, *item.AssigneeID)
	}
	if item.Priority != nil {
		if err := v.ValidatePriority(*item.Priority); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStatus checks that status is a known task status.
func (v *Validator) ValidateStatus(status domain.TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: invalid task status %q", domain.ErrValidation, status)
	}
	return nil
}

// ValidatePriority checks that priority is a known task priority.
func (v *Validator) ValidatePriority(priority domain.TaskPriority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: invalid task priority %q", domain.ErrValidation, priority)
	}
	return nil
}

// ValidateAssignee checks a worker id used for assignment.
func (v *Validator) ValidateAssignee(assigneeID int64) error {
	if assigneeID <= 0 {
		return fmt.Errorf("%w: assignee_id must be positive, got %d", domain.ErrValidation, assigneeID)
	}
	return nil
}

// ValidateAuthor checks the user id attached to a comment.
func (v *Validator) ValidateAuthor(authorID int64) error {
	if authorID <= 0 {
		return fmt.Errorf("%w: user_id must be positive, got %d", domain.ErrValidation, authorID)
	}
	return nil
}

// ValidateDateRange checks that start is not after end.
func (v *Validator) ValidateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if domain.DateOf(end).Before(domain.DateOf(start)) {
		return fmt.Errorf("%w: end_date %s is before start_date %s", domain.ErrValidation,
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return nil
}
