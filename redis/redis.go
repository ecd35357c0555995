package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gobridgeorder/bridge"
	"gobridgeorder/config"
	"gobridgeorder/types"

	"github.com/gomodule/redigo/redis"
)

var pool *redis.Pool

const (
	orderKeyPrefix = "bridgeorder:rec:"
	queueKey       = "bridgeorder:queue"
	countKey       = "bridgeorder:count"
	lastIDKey      = "bridgeorder:lastid"
)

func timeoutDialOptions() []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
	}
}

func Init() {
	redisAddr := fmt.Sprintf("%s:%d", config.Config.Server.RedisHost, config.Config.Server.RedisPort)
	pool = &redis.Pool{
		MaxIdle: 5,
		Dial:    func() (redis.Conn, error) { return redis.Dial("tcp", redisAddr, timeoutDialOptions()...) },
	}
}

func orderKey(orderID uint64) string {
	return fmt.Sprintf("%s%d", orderKeyPrefix, orderID)
}

// Store is the Redis-backed OrderStore. One key per order record, a count
// key guarding capacity, and a high-water key for restart seeding.
type Store struct {
	capacity int
}

func NewStore(capacity int) *Store {
	return &Store{capacity: capacity}
}

func (s *Store) Put(order *types.BridgeOrder) error {
	conn := pool.Get()
	defer conn.Close()

	if order == nil {
		return errors.New("null order to store")
	}

	exists, err := redis.Bool(conn.Do("EXISTS", orderKey(order.OrderID)))
	if err != nil {
		log.Printf("error Redis EXISTS: %s", err.Error())
		return err
	}

	if !exists {
		count, err := redis.Int(conn.Do("GET", countKey))
		if err != nil && !errors.Is(err, redis.ErrNil) {
			log.Printf("error Redis GET: %s", err.Error())
			return err
		}
		if count >= s.capacity {
			return bridge.ErrCapacityExceeded
		}
	}

	orderJSON, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("cannot marshal bridge order to JSON: %s", err.Error())
	}

	if !exists {
		// record, count and high-water mark must move together, otherwise a
		// mid-sequence failure drifts the capacity guard off the real count
		if err := conn.Send("MULTI"); err != nil {
			log.Printf("error Redis MULTI: %s", err.Error())
			return err
		}
		if err := conn.Send("SET", orderKey(order.OrderID), orderJSON); err != nil {
			log.Printf("error Redis SET: %s", err.Error())
			return err
		}
		if err := conn.Send("INCR", countKey); err != nil {
			log.Printf("error Redis INCR: %s", err.Error())
			return err
		}
		// IDs only grow, a plain SET keeps the high-water mark
		if err := conn.Send("SET", lastIDKey, order.OrderID); err != nil {
			log.Printf("error Redis SET: %s", err.Error())
			return err
		}
		if _, err := conn.Do("EXEC"); err != nil {
			log.Printf("error Redis EXEC: %s", err.Error())
			return err
		}
		return nil
	}

	_, err = conn.Do("SET", orderKey(order.OrderID), orderJSON)
	if err != nil {
		log.Printf("error Redis SET: %s", err.Error())
		return err
	}

	return nil
}

func (s *Store) Get(orderID uint64) (*types.BridgeOrder, error) {
	conn := pool.Get()
	defer conn.Close()

	orderJSON, err := redis.Bytes(conn.Do("GET", orderKey(orderID)))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		log.Printf("error Redis GET: %s", err.Error())
		return nil, err
	}

	var order types.BridgeOrder
	if err := json.Unmarshal(orderJSON, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) Count() (int, error) {
	conn := pool.Get()
	defer conn.Close()

	count, err := redis.Int(conn.Do("GET", countKey))
	if errors.Is(err, redis.ErrNil) {
		return 0, nil
	}
	if err != nil {
		log.Printf("error Redis GET: %s", err.Error())
		return 0, err
	}
	return count, nil
}

// Queue is the Redis-backed OrderQueue, a plain list: RPUSH tail, LPOP head.
type Queue struct{}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Enqueue(orderID uint64) error {
	conn := pool.Get()
	defer conn.Close()

	_, err := conn.Do("RPUSH", queueKey, orderID)
	if err != nil {
		log.Printf("error Redis RPUSH: %s", err.Error())
		return err
	}
	return nil
}

func (q *Queue) Dequeue() (uint64, error) {
	conn := pool.Get()
	defer conn.Close()

	orderID, err := redis.Uint64(conn.Do("LPOP", queueKey))
	if errors.Is(err, redis.ErrNil) {
		return 0, bridge.ErrQueueEmpty
	}
	if err != nil {
		log.Printf("error Redis LPOP: %s", err.Error())
		return 0, err
	}
	return orderID, nil
}

func (q *Queue) Len() (int, error) {
	conn := pool.Get()
	defer conn.Close()

	depth, err := redis.Int(conn.Do("LLEN", queueKey))
	if err != nil {
		log.Printf("error Redis LLEN: %s", err.Error())
		return 0, err
	}
	return depth, nil
}

// GetLastOrderID returns the persisted order ID high-water mark for seeding
// the machine counter on restart.
func GetLastOrderID() (uint64, error) {
	conn := pool.Get()
	defer conn.Close()

	lastID, err := redis.Uint64(conn.Do("GET", lastIDKey))
	if errors.Is(err, redis.ErrNil) {
		return 0, nil
	}
	if err != nil {
		log.Printf("error Redis GET: %s", err.Error())
		return 0, err
	}
	return lastID, nil
}

// ComputeLockedTokens rebuilds the locked-token balance by scanning every
// stored order and summing the amounts still held. Startup only, so the full
// scan is acceptable (and O(n) anyway).
func ComputeLockedTokens() (uint64, error) {
	conn := pool.Get()
	defer conn.Close()

	var locked uint64
	var cursor int64

	for {
		values, err := redis.Values(conn.Do("SCAN", cursor, "MATCH", orderKeyPrefix+"*"))
		if err != nil {
			return 0, err
		}

		var orderKeys []string
		values, err = redis.Scan(values, &cursor, &orderKeys)
		if err != nil {
			return 0, err
		}

		for _, key := range orderKeys {
			orderJSON, err := redis.Bytes(conn.Do("GET", key))
			if errors.Is(err, redis.ErrNil) {
				continue
			}
			if err != nil {
				log.Printf("error Redis GET: %s", err.Error())
				return 0, err
			}

			var order types.BridgeOrder
			if err := json.Unmarshal(orderJSON, &order); err != nil {
				return 0, err
			}
			if order.Status.Locked() {
				locked += order.Amount
			}
		}

		if cursor == 0 {
			break
		}
	}

	return locked, nil
}
