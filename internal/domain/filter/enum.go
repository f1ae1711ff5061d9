package filter

// All is the sentinel value that disables an enumerated filter.
const All = "all"

type enumPredicate[T any] struct {
	value string
	field func(T) string
}

// Enum keeps items whose field equals value exactly.
// The All sentinel and the empty string make it inactive.
func Enum[T any](value string, field func(T) string) Predicate[T] {
	return enumPredicate[T]{value: value, field: field}
}

func (p enumPredicate[T]) Active() bool {
	return p.value != "" && p.value != All
}

func (p enumPredicate[T]) Accept(item T) bool {
	return p.field(item) == p.value
}

// IsAll reports whether value leaves an enumerated dimension unconstrained.
func IsAll(value string) bool {
	return value == "" || value == All
}
