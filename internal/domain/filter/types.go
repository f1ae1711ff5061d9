package filter

// ComparisonType is the operator of an advanced filter item.
type ComparisonType string

const (
	Equal          ComparisonType = "eq"
	NotEqual       ComparisonType = "neq"
	LessOrEqual    ComparisonType = "lte"
	GreaterOrEqual ComparisonType = "gte"
	Contains       ComparisonType = "contains" // case-insensitive substring
)

// Item is one row of the advanced filter panel, sent as JSON in the query string.
type Item struct {
	Field    string         `json:"field"` // field name (camelCase, as in the API)
	Operator ComparisonType `json:"operator"`
	Value    string         `json:"value"`
}
