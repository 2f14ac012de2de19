// Package notify publishes transfer lifecycle events to downstream consumers.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// EventType names an event on the stream.
type EventType string

const (
	// EventObserved is emitted the first time a record is seen for an identity.
	EventObserved EventType = "transfer.observed"
	// EventStatusChanged is emitted when a record's persisted status moves.
	EventStatusChanged EventType = "transfer.status_changed"
)

// Event is the JSON payload written to the stream.
type Event struct {
	ID             string          `json:"id"`
	Type           EventType       `json:"type"`
	Address        string          `json:"address"`
	NetworkType    string          `json:"networkType"`
	Key            string          `json:"key"`
	Status         transfer.Status `json:"status,omitempty"`
	PreviousStatus transfer.Status `json:"previousStatus,omitempty"`
	Record         transfer.Record `json:"record"`
	At             int64           `json:"at"`
}

// NewEvent builds an event with a fresh id.
func NewEvent(typ EventType, id transfer.Identity, rec transfer.Record, prev transfer.Status, at time.Time) Event {
	return Event{
		ID:             uuid.NewString(),
		Type:           typ,
		Address:        id.Address,
		NetworkType:    string(id.NetworkType),
		Key:            rec.Key(),
		Status:         rec.Status,
		PreviousStatus: prev,
		Record:         rec,
		At:             at.Unix(),
	}
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, events []Event) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, []Event) error { return nil }

func (Nop) Close() error { return nil }
