package bridge

import (
	"fmt"
	"sync"
	"time"

	"gobridgeorder/types"
)

// PermissionPolicy decides who may execute completion/refund transitions.
// Kept configurable; which deployments run open completion is a product
// decision, not a property of the machine.
type PermissionPolicy int

const (
	// ManagerGated requires admin or manager for complete/refund.
	ManagerGated PermissionPolicy = iota
	// OpenCompletion lets any caller complete or refund.
	OpenCompletion
)

type MachineConfig struct {
	// OrderFee is the flat per-order fee; createOrder rejects invocations
	// carrying a smaller reward.
	OrderFee uint64
	Policy   PermissionPolicy
}

// Machine orchestrates store, queue, access control, accounting and the host
// ledger into the bridge order lifecycle. Every public operation is a single
// atomic step: calls are serialized on the machine mutex, and inner
// components rely on that and carry no locking of their own.
type Machine struct {
	mu sync.Mutex

	cfg        MachineConfig
	store      OrderStore
	queue      OrderQueue
	access     *AccessControl
	accounting *Accounting
	host       HostLedger
	events     EventSink

	// high-water mark of assigned order IDs, never reused
	lastOrderID uint64
}

// NewMachine wires a machine over its collaborators. lastOrderID seeds the ID
// counter when the store already holds orders from a previous run; pass 0 for
// a fresh store. A nil events sink is replaced with NopSink.
func NewMachine(cfg MachineConfig, store OrderStore, queue OrderQueue, access *AccessControl, accounting *Accounting, host HostLedger, events EventSink, lastOrderID uint64) *Machine {
	if events == nil {
		events = NopSink{}
	}
	return &Machine{
		cfg:         cfg,
		store:       store,
		queue:       queue,
		access:      access,
		accounting:  accounting,
		host:        host,
		events:      events,
		lastOrderID: lastOrderID,
	}
}

// CreateOrder locks amount against a new order and enqueues it for
// processing. The order enters the queue in pending status right away.
func (m *Machine) CreateOrder(inv InvocationContext, counterpartAddress string, amount uint64, direction types.Direction) (*types.BridgeOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if amount == 0 {
		return nil, ErrInvalidAmount
	}
	if !direction.Valid() {
		return nil, ErrWrongDirection
	}
	if inv.InvocationReward() < m.cfg.OrderFee {
		return nil, ErrInsufficientFee
	}

	order := &types.BridgeOrder{
		OrderID:            m.lastOrderID + 1,
		Sender:             inv.Invoker(),
		CounterpartAddress: counterpartAddress,
		Amount:             amount,
		Direction:          direction,
		Status:             types.StatusPending,
		TsCreated:          time.Now().Unix(),
	}

	// queue first: the queue is advisory and consumers skip IDs with no
	// stored order, so a failed Put afterwards leaves only a stale entry.
	// The reverse order could strand a stored order outside the accounting.
	if err := m.queue.Enqueue(order.OrderID); err != nil {
		return nil, fmt.Errorf("enqueue order %d: %w", order.OrderID, err)
	}
	if err := m.store.Put(order); err != nil {
		return nil, err
	}
	m.lastOrderID++
	m.accounting.Lock(amount)
	m.events.Emit(newEvent(EventOrderCreated, order.OrderID, amount))

	return order, nil
}

// PushBridgeOrder re-enqueues an existing pending order.
func (m *Machine) PushBridgeOrder(orderID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, err := m.getOrder(orderID)
	if err != nil {
		return err
	}
	if order.Status != types.StatusPending {
		return ErrInvalidStatus
	}
	return m.queue.Enqueue(orderID)
}

// PullBridgeOrder dequeues the head order ID and returns a snapshot of that
// order, status unchanged. A dequeued ID can point at an order that has since
// moved on; the caller must check the snapshot's status before acting.
func (m *Machine) PullBridgeOrder() (*types.BridgeOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orderID, err := m.queue.Dequeue()
	if err != nil {
		return nil, err
	}
	return m.getOrder(orderID)
}

// InitiateTransfer moves a pending order in flight. The caller states which
// direction it is processing; a mismatch is rejected rather than silently
// picking up the wrong leg.
func (m *Machine) InitiateTransfer(orderID uint64, direction types.Direction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, err := m.getOrder(orderID)
	if err != nil {
		return err
	}
	if order.Status != types.StatusPending {
		return ErrInvalidStatus
	}
	if order.Direction != direction {
		return ErrWrongDirection
	}

	order.Status = types.StatusInProgress
	if err := m.store.Put(order); err != nil {
		return err
	}
	m.events.Emit(newEvent(EventOrderInitiated, order.OrderID, order.Amount))
	return nil
}

// ConfirmTransfer records the counterpart-chain transaction proving
// completion and moves the order to success. For counterpart-to-local orders
// the locked funds are released to the sender; a host transfer failure aborts
// with no state committed.
func (m *Machine) ConfirmTransfer(orderID uint64, counterpartTxRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, err := m.getOrder(orderID)
	if err != nil {
		return err
	}
	if order.Status != types.StatusInProgress {
		return ErrInvalidStatus
	}

	if order.Direction == types.DirectionBToA {
		if err := m.host.Transfer(order.Sender, order.Amount); err != nil {
			return fmt.Errorf("host transfer for order %d: %w", order.OrderID, err)
		}
	}

	order.Status = types.StatusSuccess
	order.CounterpartTxRef = counterpartTxRef
	if err := m.store.Put(order); err != nil {
		return err
	}
	if err := m.accounting.Release(order.Amount); err != nil {
		return err
	}
	m.events.Emit(newEvent(EventOrderConfirmed, order.OrderID, order.Amount))
	return nil
}

// CompleteOrder settles an order that never went in flight. Gated by the
// permission policy.
func (m *Machine) CompleteOrder(inv InvocationContext, orderID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkPrivileged(inv); err != nil {
		return err
	}
	order, err := m.getOrder(orderID)
	if err != nil {
		return err
	}
	if order.Status != types.StatusCreated && order.Status != types.StatusPending {
		return ErrInvalidStatus
	}

	order.Status = types.StatusSuccess
	if err := m.store.Put(order); err != nil {
		return err
	}
	if err := m.accounting.Release(order.Amount); err != nil {
		return err
	}
	m.events.Emit(newEvent(EventOrderCompleted, order.OrderID, order.Amount))
	return nil
}

// RefundOrder returns the locked amount to the sender. Legal from any
// non-terminal status except success: refund after completion would release
// the same funds twice, so the status guard rejects it outright instead of
// leaving the accounting to catch it.
func (m *Machine) RefundOrder(inv InvocationContext, orderID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkPrivileged(inv); err != nil {
		return err
	}
	order, err := m.getOrder(orderID)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		return ErrAlreadyTerminal
	}
	if order.Status == types.StatusSuccess {
		return ErrInvalidStatus
	}

	if err := m.host.Transfer(order.Sender, order.Amount); err != nil {
		return fmt.Errorf("host transfer for order %d: %w", order.OrderID, err)
	}

	order.Status = types.StatusRefunded
	if err := m.store.Put(order); err != nil {
		return err
	}
	if err := m.accounting.Release(order.Amount); err != nil {
		return err
	}
	m.events.Emit(newEvent(EventOrderRefunded, order.OrderID, order.Amount))
	return nil
}

// BurnAmount destroys the amount of a successfully bridged order. Funds left
// the locked pool at success, so the accounting is not touched here.
func (m *Machine) BurnAmount(orderID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, err := m.getOrder(orderID)
	if err != nil {
		return err
	}
	if order.Status != types.StatusSuccess {
		return ErrInvalidStatus
	}

	if err := m.host.Burn(order.Amount); err != nil {
		return fmt.Errorf("host burn for order %d: %w", order.OrderID, err)
	}

	order.Status = types.StatusBurned
	if err := m.store.Put(order); err != nil {
		return err
	}
	m.events.Emit(newEvent(EventOrderBurned, order.OrderID, order.Amount))
	return nil
}

// GetOrder returns a snapshot of the order, or ErrOrderNotFound.
func (m *Machine) GetOrder(orderID uint64) (*types.BridgeOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getOrder(orderID)
}

// SetAdmin transfers the admin role; current admin only.
func (m *Machine) SetAdmin(inv InvocationContext, newAdmin string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access.SetAdmin(inv.Invoker(), newAdmin)
}

// AddManager grants completion/refund rights to an identity; admin only.
func (m *Machine) AddManager(inv InvocationContext, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access.AddManager(inv.Invoker(), identity)
}

// RemoveManager revokes an identity's manager rights; admin only.
func (m *Machine) RemoveManager(inv InvocationContext, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access.RemoveManager(inv.Invoker(), identity)
}

// LockedTokens reports the aggregate locked balance.
func (m *Machine) LockedTokens() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounting.Locked()
}

// OrderCount reports how many orders the store holds.
func (m *Machine) OrderCount() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Count()
}

// QueueDepth reports how many IDs are waiting in the queue.
func (m *Machine) QueueDepth() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.Len()
}

func (m *Machine) getOrder(orderID uint64) (*types.BridgeOrder, error) {
	order, err := m.store.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (m *Machine) checkPrivileged(inv InvocationContext) error {
	if m.cfg.Policy == OpenCompletion {
		return nil
	}
	caller := inv.Invoker()
	if !m.access.IsAdmin(caller) && !m.access.IsManager(caller) {
		return ErrUnauthorized
	}
	return nil
}
