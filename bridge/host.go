package bridge

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// HostLedger is the host chain's value primitives. Transfer debits the
// contract account and credits the destination atomically; a failure aborts
// the enclosing operation with no state committed. Burn permanently destroys
// the amount from the contract balance.
type HostLedger interface {
	Transfer(dest string, amount uint64) error
	Burn(amount uint64) error
}

// InvocationContext is supplied per call by the host runtime: who is calling
// and how much reward was attached to the invocation.
type InvocationContext interface {
	Invoker() string
	InvocationReward() uint64
}

// Invocation is a plain InvocationContext for embeddings where the caller
// identity arrives with the request (HTTP surface, tests).
type Invocation struct {
	Caller string
	Reward uint64
}

func (i Invocation) Invoker() string          { return i.Caller }
func (i Invocation) InvocationReward() uint64 { return i.Reward }

type EventKind string

const (
	EventOrderCreated   EventKind = "OrderCreated"
	EventOrderInitiated EventKind = "OrderInitiated"
	EventOrderConfirmed EventKind = "OrderConfirmed"
	EventOrderCompleted EventKind = "OrderCompleted"
	EventOrderRefunded  EventKind = "OrderRefunded"
	EventOrderBurned    EventKind = "OrderBurned"
)

// Event is emitted once per state transition for off-chain observers.
// Delivery is best effort and has no bearing on correctness.
type Event struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	OrderID   uint64    `json:"orderId"`
	Amount    uint64    `json:"amount"`
	TsEmitted int64     `json:"tsEmitted"`
}

type EventSink interface {
	Emit(ev Event)
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) Emit(Event) {}

// LogSink writes each event to the process log.
type LogSink struct{}

func (LogSink) Emit(ev Event) {
	log.Printf("event %s: order %d, amount %d (%s)", ev.Kind, ev.OrderID, ev.Amount, ev.ID)
}

func newEvent(kind EventKind, orderID, amount uint64) Event {
	return Event{
		ID:        uuid.New().String(),
		Kind:      kind,
		OrderID:   orderID,
		Amount:    amount,
		TsEmitted: time.Now().Unix(),
	}
}
