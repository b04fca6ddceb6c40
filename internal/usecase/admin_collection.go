package usecase

import (
	"context"
	"log"
	"strings"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/listview"

	"github.com/google/uuid"
)

type RecordNotifier interface {
	RecordChanged(entity, action, id string)
}

// CollectionStore is the slice of a repository an admin CRUD screen needs.
type CollectionStore[T any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	Create(ctx context.Context, v T) error
	Update(ctx context.Context, id uuid.UUID, p P) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ViewRequest edits a table's query before it is rendered. Nil or empty
// fields leave the current state alone.
type ViewRequest struct {
	Search  *string
	Filters map[string]string
	Sort    string
	Refresh bool
}

type ListPage[T any] struct {
	Items         []T                 `json:"items"`
	Total         int                 `json:"total"`
	Query         listview.Query      `json:"query"`
	Options       map[string][]string `json:"options,omitempty"`
	PendingDelete *uuid.UUID          `json:"pending_delete,omitempty"`
}

type CollectionConfig[T any, P any] struct {
	Name   string
	Scope  string
	Store  CollectionStore[T, P]
	Table  func(*listview.Workspace) *listview.Table[T]
	Apply  func(P, T) T
	Cache  ContentCache
	Notify RecordNotifier
	Logger *log.Logger
}

// Collection drives one admin CRUD screen: the store is the source of truth,
// the workspace table is the session's cached copy.
type Collection[T any, P any] struct {
	name   string
	scope  string
	store  CollectionStore[T, P]
	table  func(*listview.Workspace) *listview.Table[T]
	apply  func(P, T) T
	cache  ContentCache
	notify RecordNotifier
	logger *log.Logger
}

func NewCollection[T any, P any](cfg CollectionConfig[T, P]) *Collection[T, P] {
	return &Collection[T, P]{
		name:   cfg.Name,
		scope:  cfg.Scope,
		store:  cfg.Store,
		table:  cfg.Table,
		apply:  cfg.Apply,
		cache:  cfg.Cache,
		notify: cfg.Notify,
		logger: cfg.Logger,
	}
}

func (c *Collection[T, P]) Name() string { return c.name }

func (c *Collection[T, P]) load(ctx context.Context, t *listview.Table[T], refresh bool) error {
	if t.Loaded() && !refresh {
		return nil
	}
	items, err := c.store.List(ctx)
	if err != nil {
		return err
	}
	t.SetItems(items)
	return nil
}

func (c *Collection[T, P]) View(ctx context.Context, ws *listview.Workspace, req ViewRequest) (ListPage[T], error) {
	t := c.table(ws)
	if err := c.load(ctx, t, req.Refresh); err != nil {
		return ListPage[T]{}, err
	}
	if err := applyViewRequest(t, req); err != nil {
		return ListPage[T]{}, err
	}
	return pageOf(t), nil
}

func (c *Collection[T, P]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	return c.store.Get(ctx, id)
}

// Create inserts then refetches the whole collection into the session table.
func (c *Collection[T, P]) Create(ctx context.Context, ws *listview.Workspace, v T) error {
	if err := c.store.Create(ctx, v); err != nil {
		return err
	}
	if err := c.load(ctx, c.table(ws), true); err != nil {
		return err
	}
	c.changed(ctx, "created", "")
	return nil
}

// Update writes the patch and merges its fields into the cached row.
func (c *Collection[T, P]) Update(ctx context.Context, ws *listview.Workspace, id uuid.UUID, p P) error {
	if err := c.store.Update(ctx, id, p); err != nil {
		return err
	}
	c.table(ws).Merge(id, func(v T) T { return c.apply(p, v) })
	c.changed(ctx, "updated", id.String())
	return nil
}

func (c *Collection[T, P]) RequestDelete(ctx context.Context, ws *listview.Workspace, id uuid.UUID) error {
	t := c.table(ws)
	if err := c.load(ctx, t, false); err != nil {
		return err
	}
	return t.RequestDelete(id)
}

func (c *Collection[T, P]) CancelDelete(ws *listview.Workspace) {
	c.table(ws).CancelDelete()
}

func (c *Collection[T, P]) ConfirmDelete(ctx context.Context, ws *listview.Workspace, id uuid.UUID) error {
	if err := c.table(ws).ConfirmDelete(ctx, id, c.store.Delete); err != nil {
		return err
	}
	c.changed(ctx, "deleted", id.String())
	return nil
}

func (c *Collection[T, P]) changed(ctx context.Context, action, id string) {
	invalidate(ctx, c.cache, c.logger, c.scope)
	if c.notify != nil {
		c.notify.RecordChanged(c.name, action, id)
	}
	if c.logger != nil {
		c.logger.Printf("[Admin] %s %s id=%s", c.name, action, id)
	}
}

func applyViewRequest[T any](t *listview.Table[T], req ViewRequest) error {
	if req.Search != nil {
		t.SetSearch(strings.TrimSpace(*req.Search))
	}
	for name, v := range req.Filters {
		if err := t.SetFilter(name, strings.TrimSpace(v)); err != nil {
			return domain.NewValidationError(name, err.Error())
		}
	}
	if req.Sort != "" {
		if err := t.ToggleSort(req.Sort); err != nil {
			return domain.NewValidationError("sort", err.Error())
		}
	}
	return nil
}

func pageOf[T any](t *listview.Table[T]) ListPage[T] {
	p := ListPage[T]{
		Items: t.View(),
		Total: t.Len(),
		Query: t.Query(),
	}
	filters := t.Schema().Filters
	if len(filters) > 0 {
		p.Options = make(map[string][]string, len(filters))
		for name := range filters {
			p.Options[name] = t.Distinct(name)
		}
	}
	if id, ok := t.PendingDelete(); ok {
		p.PendingDelete = &id
	}
	return p
}
