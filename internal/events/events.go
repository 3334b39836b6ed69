// Package events carries domain events emitted by the catalog and account
// services after a successful mutation.
//
// Events are published after the service releases its lock, so concurrent
// mutations may be delivered out of order: a book_removed can arrive before
// the book_added it undoes.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	BookAdded      = "catalog.book_added"
	BookRemoved    = "catalog.book_removed"
	UserRegistered = "user.registered"
	ProfileUpdated = "user.profile_updated"
	BookPurchased  = "user.book_purchased"
	ReviewAdded    = "user.review_added"
)

type Event struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

func New(eventType string, payload any) Event {
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

type Publisher interface {
	Publish(e Event) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(Event) error { return nil }

// LogPublisher writes each event as a structured log line.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log.With().Str("component", "events").Logger()}
}

func (p *LogPublisher) Publish(e Event) error {
	p.log.Info().
		Str("event_id", e.ID.String()).
		Str("type", e.Type).
		Time("timestamp", e.Timestamp).
		Interface("payload", e.Payload).
		Msg("event")
	return nil
}
