// Package listview holds the admin list state: a full in-memory collection per
// entity and the search/filter/sort query that is recomputed over it on every read.
package listview

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllValues is the filter value that disables a categorical filter.
const AllValues = "all"

type Kind int

const (
	KindString Kind = iota
	KindDate
	// KindOther columns are accepted as sort keys but every pair compares equal.
	KindOther
)

type Column[T any] struct {
	Kind  Kind
	Value func(T) string
}

type Schema[T any] struct {
	Entity  string
	ID      func(T) uuid.UUID
	Search  []func(T) string
	Filters map[string]func(T) string
	Columns map[string]Column[T]
	Default Sort
}

type Sort struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

func (s Sort) Direction() string {
	if s.Desc {
		return "desc"
	}
	return "asc"
}

type Query struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters"`
	Sort    Sort              `json:"sort"`
}

func (q Query) clone() Query {
	out := q
	out.Filters = make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		out.Filters[k] = v
	}
	return out
}

// Apply recomputes the visible rows from the full collection. items is not modified.
func Apply[T any](items []T, schema Schema[T], q Query) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matches(it, schema, q) {
			out = append(out, it)
		}
	}

	col, ok := schema.Columns[q.Sort.Field]
	if !ok || col.Value == nil {
		return out
	}

	cmp := comparator(col.Kind)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(col.Value(out[i]), col.Value(out[j])) < 0
	})
	if q.Sort.Desc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func matches[T any](it T, schema Schema[T], q Query) bool {
	for name, want := range q.Filters {
		if inactive(want) {
			continue
		}
		get, ok := schema.Filters[name]
		if !ok {
			continue
		}
		if get(it) != want {
			return false
		}
	}

	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	for _, f := range schema.Search {
		if strings.Contains(strings.ToLower(f(it)), term) {
			return true
		}
	}
	return false
}

func inactive(v string) bool {
	return v == "" || v == AllValues
}

func comparator(k Kind) func(a, b string) int {
	switch k {
	case KindString:
		c := collate.New(language.English)
		return c.CompareString
	case KindDate:
		return func(a, b string) int {
			x, y := epochMillis(a), epochMillis(b)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	default:
		return func(string, string) int { return 0 }
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// epochMillis returns 0 for missing or unparseable dates, so they sort as the oldest rows.
func epochMillis(v string) int64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

func timeValue(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
