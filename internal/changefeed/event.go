// Package changefeed fans out row-level change notifications from the
// database to in-process subscribers.
package changefeed

import "encoding/json"

// Op is the kind of row change.
type Op string

// List of operations.
const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Table names emitted by the database triggers.
const (
	TableCustomers     = "customers"
	TableCouriers      = "couriers"
	TableDeliveries    = "deliveries"
	TableTrackingPings = "tracking_pings"
)

// Event is a single row change.
type Event struct {
	Table   string          `json:"table"`
	Op      Op              `json:"op"`
	ID      int64           `json:"id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Subscription delivers events until Close is called. The channel returned
// by Events is closed after Close.
type Subscription interface {
	Events() <-chan Event
	Close()
}

// Subscriber is implemented by anything that hands out subscriptions.
type Subscriber interface {
	Subscribe(table string, ops ...Op) Subscription
}
