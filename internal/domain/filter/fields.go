package filter

import (
	"strings"
	"time"

	"gestobra/internal/core/apperror"
)

// Query is the raw filter state of a list request.
type Query struct {
	// Search is the free-text term matched against Fields.Search.
	Search string
	From   *time.Time
	To     *time.Time
	// DateField selects the date the range applies to; empty means Fields.DefaultDate.
	DateField string
	// Enums maps enumerated field names to the selected value (or All).
	Enums map[string]string
	Items []Item
	// Location places bare days of Items; nil means UTC. From and To arrive already placed.
	Location *time.Location
}

// Fields describes the filterable fields of an entity type.
type Fields[T any] struct {
	Text        map[string]func(T) string
	Search      []string
	Dates       map[string]func(T) *time.Time
	DefaultDate string
	Enums       map[string]func(T) string
}

// Build compiles q into criteria. Unknown field names are validation errors.
func (f Fields[T]) Build(q Query) (Criteria[T], error) {
	var criteria Criteria[T]

	if strings.TrimSpace(q.Search) != "" {
		accessors := make([]func(T) string, 0, len(f.Search))
		for _, name := range f.Search {
			accessor, ok := f.Text[name]
			if !ok {
				return nil, unknownField(name)
			}
			accessors = append(accessors, accessor)
		}
		criteria = append(criteria, Text(q.Search, accessors...))
	}

	if q.From != nil || q.To != nil {
		name := q.DateField
		if name == "" {
			name = f.DefaultDate
		}
		accessor, ok := f.Dates[name]
		if !ok {
			return nil, unknownField(name)
		}
		criteria = append(criteria, DateRange(q.From, q.To, accessor))
	}

	for name, value := range q.Enums {
		accessor, ok := f.Enums[name]
		if !ok {
			return nil, unknownField(name)
		}
		criteria = append(criteria, Enum(value, accessor))
	}

	for _, item := range q.Items {
		p, err := f.compile(item, q.Location)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, p)
	}

	return criteria, nil
}

// Enum returns the predicate for a single enumerated field.
func (f Fields[T]) Enum(name, value string) (Predicate[T], error) {
	accessor, ok := f.Enums[name]
	if !ok {
		return nil, unknownField(name)
	}
	return Enum(value, accessor), nil
}

func (f Fields[T]) compile(item Item, loc *time.Location) (Predicate[T], error) {
	if accessor, ok := f.Text[item.Field]; ok {
		switch item.Operator {
		case Contains:
			return Text(item.Value, accessor), nil
		case Equal:
			return Func[T](func(v T) bool { return strings.EqualFold(accessor(v), item.Value) }), nil
		case NotEqual:
			return Func[T](func(v T) bool { return !strings.EqualFold(accessor(v), item.Value) }), nil
		}
		return nil, unsupportedOperator(item)
	}

	if accessor, ok := f.Enums[item.Field]; ok {
		switch item.Operator {
		case Equal:
			return Enum(item.Value, accessor), nil
		case NotEqual:
			if IsAll(item.Value) {
				return Enum(All, accessor), nil
			}
			return Func[T](func(v T) bool { return accessor(v) != item.Value }), nil
		}
		return nil, unsupportedOperator(item)
	}

	if accessor, ok := f.Dates[item.Field]; ok {
		day, err := ParseDay(item.Value, loc)
		if err != nil || day == nil {
			return nil, apperror.NewValidation("invalid date in filter").
				WithDetail("field", item.Field).
				WithDetail("value", item.Value)
		}
		switch item.Operator {
		case GreaterOrEqual:
			return DateRange(day, nil, accessor), nil
		case LessOrEqual:
			return DateRange(nil, day, accessor), nil
		case Equal:
			return DateRange(day, day, accessor), nil
		}
		return nil, unsupportedOperator(item)
	}

	return nil, unknownField(item.Field)
}

func unknownField(name string) error {
	return apperror.NewValidation("unknown filter field").
		WithDetail("field", name)
}

func unsupportedOperator(item Item) error {
	return apperror.NewValidation("unsupported filter operator").
		WithDetail("field", item.Field).
		WithDetail("operator", string(item.Operator))
}
