package postgres

import (
	"reflect"
	"sync"
)

// ExtractDBColumns lists the "db" tags of T, descending into embedded structs
// such as entity.Catalog and stock.Balance. Call it once per repository.
func ExtractDBColumns[T any]() []string {
	var zero T
	return columnsOf(reflect.TypeOf(zero))
}

func columnsOf(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			cols = append(cols, columnsOf(field.Type)...)
			continue
		}
		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			cols = append(cols, tag)
		}
	}
	return cols
}

// typeLayout is the cached field layout of a struct type.
type typeLayout struct {
	columns  map[string]int // db tag -> field index
	embedded []int
}

var layouts sync.Map // map[reflect.Type]*typeLayout

func layoutOf(t reflect.Type) *typeLayout {
	if cached, ok := layouts.Load(t); ok {
		return cached.(*typeLayout)
	}

	l := &typeLayout{columns: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			l.embedded = append(l.embedded, i)
			continue
		}
		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			l.columns[tag] = i
		}
	}

	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*typeLayout)
}

// StructToMap converts a struct (or pointer to one) to column -> value using "db" tags.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	res := make(map[string]any)
	collect(rv, res)
	return res
}

func collect(rv reflect.Value, into map[string]any) {
	l := layoutOf(rv.Type())
	for col, idx := range l.columns {
		into[col] = rv.Field(idx).Interface()
	}
	for _, idx := range l.embedded {
		field := rv.Field(idx)
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}
		if field.Kind() == reflect.Struct {
			collect(field, into)
		}
	}
}
