package domain

import (
	"fmt"
	"sort"
)

// Catalog maps each reference type to the ordered task types it requires.
// A Catalog is immutable once built.
type Catalog struct {
	taskTypes map[ReferenceType][]TaskType
}

// NewCatalog builds a Catalog from the given mapping.
// Every reference type must list at least one task type, without duplicates.
func NewCatalog(mapping map[ReferenceType][]TaskType) (*Catalog, error) {
	taskTypes := make(map[ReferenceType][]TaskType, len(mapping))
	for refType, types := range mapping {
		if refType == "" {
			return nil, fmt.Errorf("%w: empty reference type in catalog", ErrValidation)
		}
		if len(types) == 0 {
			return nil, fmt.Errorf("%w: reference type %s has no task types", ErrValidation, refType)
		}
		seen := make(map[TaskType]bool, len(types))
		for _, t := range types {
			if t == "" {
				return nil, fmt.Errorf("%w: empty task type for reference type %s", ErrValidation, refType)
			}
			if seen[t] {
				return nil, fmt.Errorf("%w: duplicate task type %s for reference type %s", ErrValidation, t, refType)
			}
			seen[t] = true
		}
		taskTypes[refType] = append([]TaskType(nil), types...)
	}
	return &Catalog{taskTypes: taskTypes}, nil
}

// DefaultCatalog returns the built-in reference type catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{taskTypes: map[ReferenceType][]TaskType{
		ReferenceTypeOrder:  {TaskTypeCreateInvoice, TaskTypeArrangePickup},
		ReferenceTypeEntity: {TaskTypeAssignCustomerToSalesPerson},
	}}
}

// ApplicableTaskTypes returns the ordered task types required for refType.
// Returns nil if the reference type is unknown.
func (c *Catalog) ApplicableTaskTypes(refType ReferenceType) []TaskType {
	types, ok := c.taskTypes[refType]
	if !ok {
		return nil
	}
	return append([]TaskType(nil), types...)
}

// HasReferenceType reports whether refType is present in the catalog.
func (c *Catalog) HasReferenceType(refType ReferenceType) bool {
	_, ok := c.taskTypes[refType]
	return ok
}

// Supports reports whether taskType applies to refType.
func (c *Catalog) Supports(refType ReferenceType, taskType TaskType) bool {
	for _, t := range c.taskTypes[refType] {
		if t == taskType {
			return true
		}
	}
	return false
}

// ReferenceTypes returns all reference types in lexical order.
func (c *Catalog) ReferenceTypes() []ReferenceType {
	types := make([]ReferenceType, 0, len(c.taskTypes))
	for t := range c.taskTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
