package reports

import (
	"gestobra/internal/core/apperror"
	"gestobra/internal/domain/filter"
)

// Selector narrows a collection along at most one dimension per report.
type Selector[T any] struct {
	dimensions map[Type]func(T) string
}

// NewSelector registers the dimensions an entity supports, keyed by report type.
// TypeComplete is always supported.
func NewSelector[T any](dimensions map[Type]func(T) string) *Selector[T] {
	return &Selector[T]{dimensions: dimensions}
}

// Supports reports whether t is a report type of this entity.
func (s *Selector[T]) Supports(t Type) bool {
	if t == TypeComplete {
		return true
	}
	_, ok := s.dimensions[t]
	return ok
}

// Select returns the items to export for cfg, in input order.
func (s *Selector[T]) Select(items []T, cfg Configuration) ([]T, error) {
	var criteria filter.Criteria[T]

	if cfg.Type != TypeComplete {
		accessor, ok := s.dimensions[cfg.Type]
		if !ok {
			return nil, unsupportedType(cfg.Type)
		}
		if filter.IsAll(cfg.Value) {
			return nil, apperror.NewMissingReportDimension(string(cfg.Type))
		}
		criteria = filter.Criteria[T]{filter.Enum(cfg.Value, accessor)}
	}

	selected := filter.Apply(items, criteria)
	if len(selected) == 0 {
		return nil, apperror.NewEmptyReportSelection(string(cfg.Type), cfg.Value)
	}
	return selected, nil
}
