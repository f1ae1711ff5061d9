// Package filter narrows in-memory collections with composable predicates.
//
// The engine knows nothing about entities: each call site supplies accessor
// functions for the fields it wants to filter on.
package filter

// Predicate is a single filter criterion.
// An inactive predicate places no constraint on the collection.
type Predicate[T any] interface {
	Active() bool
	Accept(item T) bool
}

// Criteria is an ordered list of predicates combined with AND.
type Criteria[T any] []Predicate[T]

// Active returns only the predicates that constrain the result.
func (c Criteria[T]) Active() Criteria[T] {
	active := make(Criteria[T], 0, len(c))
	for _, p := range c {
		if p != nil && p.Active() {
			active = append(active, p)
		}
	}
	return active
}

// Accept reports whether item passes every active predicate.
func (c Criteria[T]) Accept(item T) bool {
	for _, p := range c {
		if p == nil || !p.Active() {
			continue
		}
		if !p.Accept(item) {
			return false
		}
	}
	return true
}

// Apply returns the items accepted by all active predicates, in input order.
// The input slice is never modified.
func Apply[T any](items []T, criteria Criteria[T]) []T {
	active := criteria.Active()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if active.Accept(item) {
			out = append(out, item)
		}
	}
	return out
}

// Func adapts a plain function into an always-active predicate.
type Func[T any] func(item T) bool

func (f Func[T]) Active() bool       { return f != nil }
func (f Func[T]) Accept(item T) bool { return f(item) }
