// Package events defines the domain event contract and the in-process
// dispatcher that fans events out to notification handlers.
package events

import (
	"time"
)

// DomainEvent is the minimal surface every aggregate event exposes.
type DomainEvent interface {
	// GetAggregateID identifies the aggregate the event originated from.
	GetAggregateID() string

	// GetEventType is the stable name handlers subscribe on.
	GetEventType() string

	GetOccurredAt() time.Time

	// GetVersion allows the payload schema to evolve without breaking
	// subscribers.
	GetVersion() int
}

// BaseEvent carries the common fields; concrete events embed it.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string   { return e.AggregateID }
func (e BaseEvent) GetEventType() string     { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }
func (e BaseEvent) GetVersion() int          { return e.Version }

// EventHandler consumes domain events.
type EventHandler interface {
	Handle(event DomainEvent) error

	// CanHandle filters event types; a handler may subscribe to several.
	CanHandle(eventType string) bool
}

// EventPublisher is the side use cases depend on.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventSubscriber is the side notification handlers depend on.
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventDispatcher is the full dispatcher contract with lifecycle control.
type EventDispatcher interface {
	EventPublisher
	EventSubscriber

	Start() error
	Stop() error
}
