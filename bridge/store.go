package bridge

import "gobridgeorder/types"

// OrderStore is the authoritative holder of order records. Put inserts or
// overwrites the full record by OrderID; inserting a new ID past capacity
// fails with ErrCapacityExceeded and must not evict or overwrite anything
// else. Get returns nil (and no error) for an absent ID.
type OrderStore interface {
	Put(order *types.BridgeOrder) error
	Get(orderID uint64) (*types.BridgeOrder, error)
	Count() (int, error)
}

// MemoryStore keeps orders in a map. Used for the in-process embedding and
// tests; the production store is redis.Store.
type MemoryStore struct {
	capacity int
	orders   map[uint64]types.BridgeOrder
}

func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		capacity: capacity,
		orders:   make(map[uint64]types.BridgeOrder),
	}
}

func (s *MemoryStore) Put(order *types.BridgeOrder) error {
	if _, exists := s.orders[order.OrderID]; !exists && len(s.orders) >= s.capacity {
		return ErrCapacityExceeded
	}
	s.orders[order.OrderID] = *order
	return nil
}

// Get returns a copy; mutating the result never aliases the stored record.
func (s *MemoryStore) Get(orderID uint64) (*types.BridgeOrder, error) {
	order, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (s *MemoryStore) Count() (int, error) {
	return len(s.orders), nil
}
