package filter

import "strings"

type textPredicate[T any] struct {
	term   string
	fields []func(T) string
}

// Text matches term as a case-insensitive substring of any of fields.
// A blank term is inactive.
func Text[T any](term string, fields ...func(T) string) Predicate[T] {
	return textPredicate[T]{
		term:   strings.ToLower(strings.TrimSpace(term)),
		fields: fields,
	}
}

func (p textPredicate[T]) Active() bool {
	return p.term != ""
}

func (p textPredicate[T]) Accept(item T) bool {
	for _, field := range p.fields {
		if strings.Contains(strings.ToLower(field(item)), p.term) {
			return true
		}
	}
	return false
}
