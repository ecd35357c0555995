package bridge

// OrderQueue sequences order IDs awaiting processing, strictly FIFO. Entries
// are bare back-references into the OrderStore and can go stale relative to
// admin actions performed out of band; consumers must re-validate status
// against the store before acting on a dequeued ID.
type OrderQueue interface {
	Enqueue(orderID uint64) error
	Dequeue() (uint64, error)
	Len() (int, error)
}

// MemoryQueue is the in-process OrderQueue; the production queue is a Redis
// list (redis.Queue).
type MemoryQueue struct {
	ids []uint64
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

func (q *MemoryQueue) Enqueue(orderID uint64) error {
	q.ids = append(q.ids, orderID)
	return nil
}

func (q *MemoryQueue) Dequeue() (uint64, error) {
	if len(q.ids) == 0 {
		return 0, ErrQueueEmpty
	}
	id := q.ids[0]
	q.ids = q.ids[1:]
	return id, nil
}

func (q *MemoryQueue) Len() (int, error) {
	return len(q.ids), nil
}
