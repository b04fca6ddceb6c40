package ws

import (
	"encoding/json"
	"time"

	"elextrio-site/internal/domain/contact"
	"elextrio-site/internal/domain/job"
)

const (
	EventMessageReceived     = "message_received"
	EventApplicationReceived = "application_received"
	EventRecordChanged       = "record_changed"
)

type Event struct {
	Type      string `json:"type"`
	Entity    string `json:"entity,omitempty"`
	Action    string `json:"action,omitempty"`
	ID        string `json:"id,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier turns domain events into hub broadcasts. A nil Notifier is a no-op.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) MessageReceived(m contact.Message) {
	n.publish(Event{
		Type:    EventMessageReceived,
		Entity:  "messages",
		ID:      m.ID.String(),
		Summary: m.Name + " <" + m.Email + ">",
	})
}

func (n *Notifier) ApplicationReceived(a job.Application) {
	n.publish(Event{
		Type:    EventApplicationReceived,
		Entity:  "applications",
		ID:      a.ID.String(),
		Summary: a.FirstName + " " + a.LastName,
	})
}

func (n *Notifier) RecordChanged(entity, action, id string) {
	n.publish(Event{Type: EventRecordChanged, Entity: entity, Action: action, ID: id})
}

func (n *Notifier) publish(evt Event) {
	if n == nil || n.hub == nil {
		return
	}
	evt.Timestamp = n.now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
