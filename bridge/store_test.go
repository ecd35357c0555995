package bridge

import (
	"errors"
	"testing"

	"gobridgeorder/types"
)

func TestMemoryStoreCapacity(t *testing.T) {
	s := NewMemoryStore(2)

	for id := uint64(1); id <= 2; id++ {
		if err := s.Put(&types.BridgeOrder{OrderID: id, Amount: 10}); err != nil {
			t.Fatalf("Put(%d) failed: %v", id, err)
		}
	}
	if err := s.Put(&types.BridgeOrder{OrderID: 3, Amount: 10}); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}

	// overwriting an existing record is not an insert and must still work
	if err := s.Put(&types.BridgeOrder{OrderID: 2, Amount: 10, Status: types.StatusRefunded}); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	order, _ := s.Get(2)
	if order.Status != types.StatusRefunded {
		t.Errorf("status = %s after overwrite, want refunded", order.Status)
	}

	// the rejected insert must not have evicted anything
	for id := uint64(1); id <= 2; id++ {
		if order, _ := s.Get(id); order == nil {
			t.Errorf("order %d missing after rejected insert", id)
		}
	}
	if count, _ := s.Count(); count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestMemoryStoreGetIsSnapshot(t *testing.T) {
	s := NewMemoryStore(10)
	if err := s.Put(&types.BridgeOrder{OrderID: 1, Amount: 10, Status: types.StatusPending}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	order, _ := s.Get(1)
	order.Status = types.StatusBurned

	stored, _ := s.Get(1)
	if stored.Status != types.StatusPending {
		t.Errorf("stored status = %s, mutation of a snapshot leaked into the store", stored.Status)
	}
}

func TestMemoryStoreGetAbsent(t *testing.T) {
	s := NewMemoryStore(10)
	order, err := s.Get(42)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if order != nil {
		t.Errorf("Get of absent ID = %+v, want nil", order)
	}
}
