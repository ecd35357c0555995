package types

import (
	"encoding/json"
	"fmt"
)

// Direction of value flow for a bridge order. Chain A is the local chain
// custodying locked funds, chain B is the counterpart chain.
type Direction int

const (
	DirectionAToB Direction = 0
	DirectionBToA Direction = 1
)

func (d Direction) Valid() bool {
	return d == DirectionAToB || d == DirectionBToA
}

func (d Direction) String() string {
	switch d {
	case DirectionAToB:
		return "AtoB"
	case DirectionBToA:
		return "BtoA"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func ParseDirection(name string) (Direction, error) {
	switch name {
	case "AtoB":
		return DirectionAToB, nil
	case "BtoA":
		return DirectionBToA, nil
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

func (d Direction) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal direction %d", int(d))
	}
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseDirection(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// OrderStatus is a closed enumeration so the transition table stays
// exhaustively checkable; free-form status strings are not representable.
type OrderStatus int

const (
	StatusCreated OrderStatus = iota
	StatusPending
	StatusInProgress
	StatusSuccess
	StatusRefunded
	StatusBurned
)

var statusNames = map[OrderStatus]string{
	StatusCreated:    "created",
	StatusPending:    "pending",
	StatusInProgress: "inprogress",
	StatusSuccess:    "success",
	StatusRefunded:   "refunded",
	StatusBurned:     "burned",
}

func (s OrderStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

func ParseStatus(name string) (OrderStatus, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown order status %q", name)
}

// Stored and served in string form, same as the operation statuses the
// bridge keeps in Redis.
func (s OrderStatus) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal order status %d", int(s))
	}
	return json.Marshal(name)
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Terminal statuses permit no further transition at all.
func (s OrderStatus) Terminal() bool {
	return s == StatusRefunded || s == StatusBurned
}

// Locked reports whether an order in this status still holds funds in the
// locked pool.
func (s OrderStatus) Locked() bool {
	return s == StatusCreated || s == StatusPending || s == StatusInProgress
}

// BridgeOrder is a single lock of value pending release, refund or burn on
// confirmation from the counterpart chain. Everything except Status and
// CounterpartTxRef is immutable after creation.
type BridgeOrder struct {
	OrderID            uint64      `json:"orderId"`
	Sender             string      `json:"sender"`
	CounterpartAddress string      `json:"counterpartAddress"`
	Amount             uint64      `json:"amount"`
	Direction          Direction   `json:"direction"`
	Status             OrderStatus `json:"status"`
	CounterpartTxRef   string      `json:"counterpartTxRef,omitempty"` // set when confirmed, empty before
	TsCreated          int64       `json:"tsCreated"`
}
