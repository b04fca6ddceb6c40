package usecase

import (
	"context"
	"log"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/listview"
	"elextrio-site/internal/repository"

	"github.com/google/uuid"
)

type AdminMessages struct {
	messages repository.MessageRepository
	notify   RecordNotifier
	logger   *log.Logger
}

func NewAdminMessagesUsecase(messages repository.MessageRepository, notify RecordNotifier, logger *log.Logger) *AdminMessages {
	return &AdminMessages{messages: messages, notify: notify, logger: logger}
}

func (u *AdminMessages) View(ctx context.Context, ws *listview.Workspace, req ViewRequest) (ListPage[contact.Message], error) {
	t := ws.Messages
	if !t.Loaded() || req.Refresh {
		items, err := u.messages.List(ctx)
		if err != nil {
			return ListPage[contact.Message]{}, err
		}
		t.SetItems(items)
	}
	if err := applyViewRequest(t, req); err != nil {
		return ListPage[contact.Message]{}, err
	}
	return pageOf(t), nil
}

func (u *AdminMessages) UpdateStatus(ctx context.Context, ws *listview.Workspace, id uuid.UUID, status contact.Status) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "Invalid message status")
	}
	if err := u.messages.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	ws.Messages.Merge(id, func(m contact.Message) contact.Message {
		m.Status = status
		return m
	})
	if u.notify != nil {
		u.notify.RecordChanged("messages", "updated", id.String())
	}
	return nil
}

// Open returns the message and marks it read if it was new.
func (u *AdminMessages) Open(ctx context.Context, ws *listview.Workspace, id uuid.UUID) (contact.Message, error) {
	m, err := u.messages.Get(ctx, id)
	if err != nil {
		return contact.Message{}, err
	}
	if m.Status != contact.StatusNew {
		return m, nil
	}
	if err := u.UpdateStatus(ctx, ws, id, contact.StatusRead); err != nil {
		return contact.Message{}, err
	}
	m.Status = contact.StatusRead
	return m, nil
}
