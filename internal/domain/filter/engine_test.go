package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestobra/internal/core/apperror"
)

type row struct {
	Name     string
	Code     string
	Level    string
	Received *time.Time
}

func name(r row) string         { return r.Name }
func code(r row) string         { return r.Code }
func level(r row) string        { return r.Level }
func received(r row) *time.Time { return r.Received }
func day(s string) *time.Time   { t, _ := time.Parse(DayLayout, s); return &t }
func at(s string) *time.Time    { t, _ := time.Parse(time.RFC3339, s); return &t }
func names(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func sampleRows() []row {
	return []row{
		{Name: "Cemento Portland", Code: "MAT-1", Level: "critical", Received: at("2024-01-01T08:30:00Z")},
		{Name: "Arena", Code: "MAT-2", Level: "normal", Received: at("2024-01-15T23:59:59Z")},
		{Name: "Cemento blanco", Code: "MAT-3", Level: "low", Received: nil},
		{Name: "Grava", Code: "MAT-4", Level: "normal", Received: at("2024-01-16T00:00:00Z")},
	}
}

func TestApply_InactiveCriteriaIsIdentity(t *testing.T) {
	rows := sampleRows()
	criteria := Criteria[row]{
		Text("   ", name),
		DateRange[row](nil, nil, received),
		Enum(All, level),
		Enum("", level),
	}

	got := Apply(rows, criteria)

	assert.Equal(t, rows, got)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	before := append([]row(nil), rows...)

	_ = Apply(rows, Criteria[row]{Enum("normal", level)})

	assert.Equal(t, before, rows)
}

func TestText_CaseInsensitiveAnyField(t *testing.T) {
	rows := []row{{Name: "Cemento Portland"}, {Name: "Arena"}}

	got := Apply(rows, Criteria[row]{Text("cemento", name)})
	assert.Equal(t, []string{"Cemento Portland"}, names(got))

	byCode := Apply(sampleRows(), Criteria[row]{Text("mat-4", name, code)})
	assert.Equal(t, []string{"Grava"}, names(byCode))

	noneMatch := Apply(sampleRows(), Criteria[row]{Text("ladrillo", name, code)})
	assert.Empty(t, noneMatch)
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want []string
	}{
		{name: "from only", from: day("2024-01-15"), want: []string{"Arena", "Grava"}},
		{name: "to is inclusive through end of day", to: day("2024-01-15"), want: []string{"Cemento Portland", "Arena"}},
		{name: "single day", from: day("2024-01-01"), to: day("2024-01-01"), want: []string{"Cemento Portland"}},
		{name: "from ignores time of day", from: at("2024-01-16T18:00:00Z"), want: []string{"Grava"}},
		{name: "empty window", from: day("2024-02-01"), to: day("2024-02-28"), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleRows(), Criteria[row]{DateRange(tt.from, tt.to, received)})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestDateRange_MissingValueExcluded(t *testing.T) {
	rows := []row{{Name: "no date"}, {Name: "zero date", Received: &time.Time{}}}

	got := Apply(rows, Criteria[row]{DateRange(day("2024-01-01"), nil, received)})

	assert.Empty(t, got)
}

func TestEnum(t *testing.T) {
	got := Apply(sampleRows(), Criteria[row]{Enum("normal", level)})
	assert.Equal(t, []string{"Arena", "Grava"}, names(got))

	caseSensitive := Apply(sampleRows(), Criteria[row]{Enum("Normal", level)})
	assert.Empty(t, caseSensitive)
}

func TestApply_AndComposition(t *testing.T) {
	a := Text[row]("cemento", name)
	b := Enum("low", level)
	rows := sampleRows()

	combined := Apply(rows, Criteria[row]{a, b})
	chained := Apply(Apply(rows, Criteria[row]{a}), Criteria[row]{b})

	assert.Equal(t, chained, combined)
	assert.Equal(t, []string{"Cemento blanco"}, names(combined))
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2024-03-05", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseDay("2024-03-05T10:00:00-03:00", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	got, err = ParseDay("", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDay("05/03/2024", nil)
	assert.Error(t, err)
}

func rowFields() Fields[row] {
	return Fields[row]{
		Text:        map[string]func(row) string{"name": name, "code": code},
		Search:      []string{"name", "code"},
		Dates:       map[string]func(row) *time.Time{"receivedAt": received},
		DefaultDate: "receivedAt",
		Enums:       map[string]func(row) string{"level": level},
	}
}

func TestFields_Build(t *testing.T) {
	criteria, err := rowFields().Build(Query{
		Search: "CEMENTO",
		From:   day("2023-12-31"),
		Enums:  map[string]string{"level": "critical"},
	})
	require.NoError(t, err)

	got := Apply(sampleRows(), criteria)
	assert.Equal(t, []string{"Cemento Portland"}, names(got))
}

func TestFields_BuildAdvancedItems(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want []string
	}{
		{name: "text contains", item: Item{Field: "name", Operator: Contains, Value: "ena"}, want: []string{"Arena"}},
		{name: "text equal ignores case", item: Item{Field: "code", Operator: Equal, Value: "mat-2"}, want: []string{"Arena"}},
		{name: "enum not equal", item: Item{Field: "level", Operator: NotEqual, Value: "normal"}, want: []string{"Cemento Portland", "Cemento blanco"}},
		{name: "date gte", item: Item{Field: "receivedAt", Operator: GreaterOrEqual, Value: "2024-01-16"}, want: []string{"Grava"}},
		{name: "date lte", item: Item{Field: "receivedAt", Operator: LessOrEqual, Value: "2024-01-01"}, want: []string{"Cemento Portland"}},
		{name: "date eq", item: Item{Field: "receivedAt", Operator: Equal, Value: "2024-01-15"}, want: []string{"Arena"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := rowFields().Build(Query{Items: []Item{tt.item}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(Apply(sampleRows(), criteria)))
		})
	}
}

func TestFields_BuildItemsUseQueryLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	bareDay, err := ParseDay("2024-01-15", loc)
	require.NoError(t, err)

	byRange, err := rowFields().Build(Query{From: bareDay, To: bareDay, Location: loc})
	require.NoError(t, err)
	byItem, err := rowFields().Build(Query{
		Items:    []Item{{Field: "receivedAt", Operator: Equal, Value: "2024-01-15"}},
		Location: loc,
	})
	require.NoError(t, err)

	// 2024-01-16T00:00Z is still the 15th three hours west of UTC
	want := []string{"Arena", "Grava"}
	assert.Equal(t, want, names(Apply(sampleRows(), byRange)))
	assert.Equal(t, want, names(Apply(sampleRows(), byItem)))
}

func TestFields_BuildErrors(t *testing.T) {
	queries := []Query{
		{Enums: map[string]string{"condition": "good"}},
		{From: day("2024-01-01"), DateField: "shippedAt"},
		{Items: []Item{{Field: "price", Operator: Equal, Value: "1"}}},
		{Items: []Item{{Field: "name", Operator: GreaterOrEqual, Value: "a"}}},
		{Items: []Item{{Field: "receivedAt", Operator: GreaterOrEqual, Value: "yesterday"}}},
	}

	for _, q := range queries {
		_, err := rowFields().Build(q)
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	}
}
