package dto

import (
	"elextrio-site/internal/listview"
	"elextrio-site/internal/usecase"

	"github.com/google/uuid"
)

// CollectionPage is an admin table page with each row passed through a presenter.
type CollectionPage struct {
	Items         []any               `json:"items"`
	Total         int                 `json:"total"`
	Query         listview.Query      `json:"query"`
	Options       map[string][]string `json:"options,omitempty"`
	PendingDelete *uuid.UUID          `json:"pending_delete,omitempty"`
}

func NewCollectionPage[T any](p usecase.ListPage[T], present func(T) any) CollectionPage {
	items := make([]any, 0, len(p.Items))
	for _, it := range p.Items {
		if present != nil {
			items = append(items, present(it))
		} else {
			items = append(items, it)
		}
	}
	return CollectionPage{
		Items:         items,
		Total:         p.Total,
		Query:         p.Query,
		Options:       p.Options,
		PendingDelete: p.PendingDelete,
	}
}
