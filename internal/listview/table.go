package listview

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"elextrio-site/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrUnknownColumn = errors.New("unknown sort column")
	ErrUnknownFilter = errors.New("unknown filter")
	ErrNotArmed      = errors.New("delete was not requested for this row")
)

// Table is one admin list: the whole collection plus its current query and
// the row, if any, armed for deletion.
type Table[T any] struct {
	mu     sync.Mutex
	schema Schema[T]
	items  []T
	loaded bool
	query  Query
	armed  uuid.UUID
}

func NewTable[T any](schema Schema[T]) *Table[T] {
	return &Table[T]{
		schema: schema,
		query:  Query{Filters: map[string]string{}, Sort: schema.Default},
	}
}

func (t *Table[T]) Schema() Schema[T] {
	return t.schema
}

// SetItems replaces the collection. An armed delete survives only if its row still exists.
func (t *Table[T]) SetItems(items []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append([]T(nil), items...)
	t.loaded = true
	if t.armed != uuid.Nil && t.indexOf(t.armed) < 0 {
		t.armed = uuid.Nil
	}
}

func (t *Table[T]) Loaded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded
}

func (t *Table[T]) Items() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]T(nil), t.items...)
}

func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

func (t *Table[T]) Query() Query {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.query.clone()
}

func (t *Table[T]) SetSearch(term string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.query.Search = term
}

func (t *Table[T]) SetFilter(name, value string) error {
	if _, ok := t.schema.Filters[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.query.Filters[name] = value
	return nil
}

// ToggleSort flips the direction when field is already the sort key, otherwise
// sorts ascending by field.
func (t *Table[T]) ToggleSort(field string) error {
	if _, ok := t.schema.Columns[field]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, field)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.query.Sort.Field == field {
		t.query.Sort.Desc = !t.query.Sort.Desc
		return nil
	}
	t.query.Sort = Sort{Field: field}
	return nil
}

func (t *Table[T]) View() []T {
	t.mu.Lock()
	items := append([]T(nil), t.items...)
	q := t.query.clone()
	t.mu.Unlock()
	return Apply(items, t.schema, q)
}

func (t *Table[T]) Find(id uuid.UUID) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := t.indexOf(id); i >= 0 {
		return t.items[i], true
	}
	var zero T
	return zero, false
}

// Merge replaces the row with fn's result. It reports whether the row was present.
func (t *Table[T]) Merge(id uuid.UUID, fn func(T) T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.items[i] = fn(t.items[i])
	return true
}

func (t *Table[T]) RequestDelete(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.indexOf(id) < 0 {
		return domain.NewNotFoundError(t.schema.Entity, id.String())
	}
	t.armed = id
	return nil
}

func (t *Table[T]) CancelDelete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.armed = uuid.Nil
}

func (t *Table[T]) PendingDelete() (uuid.UUID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.armed, t.armed != uuid.Nil
}

// ConfirmDelete runs del for an armed row and drops the row locally on success.
// On failure the row stays armed so the admin can retry or cancel.
func (t *Table[T]) ConfirmDelete(ctx context.Context, id uuid.UUID, del func(context.Context, uuid.UUID) error) error {
	t.mu.Lock()
	if t.armed != id || id == uuid.Nil {
		t.mu.Unlock()
		return ErrNotArmed
	}
	t.mu.Unlock()

	if err := del(ctx, id); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if i := t.indexOf(id); i >= 0 {
		t.items = append(t.items[:i], t.items[i+1:]...)
	}
	if t.armed == id {
		t.armed = uuid.Nil
	}
	return nil
}

// Distinct lists the non-empty values of a filter across the collection, sorted.
func (t *Table[T]) Distinct(filter string) []string {
	get, ok := t.schema.Filters[filter]
	if !ok {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, it := range t.items {
		v := get(it)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (t *Table[T]) indexOf(id uuid.UUID) int {
	for i, it := range t.items {
		if t.schema.ID(it) == id {
			return i
		}
	}
	return -1
}
