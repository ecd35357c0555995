package workers

import (
	"errors"
	"log"
	"time"

	"gobridgeorder/bridge"
	"gobridgeorder/config"
	"gobridgeorder/types"
)

var WorkerShutdown = false

// Worker_processQueue drains the order queue and moves still-pending orders
// in flight. Queue entries are advisory sequencing only: an admin can refund
// or complete an order out of band while its ID sits in the queue, so the
// snapshot status decides, never queue membership.
func Worker_processQueue(engine *bridge.Machine) {
	for !WorkerShutdown {
		time.Sleep(config.QUEUE_POLL_SECONDS * time.Second)

		for {
			order, err := engine.PullBridgeOrder()
			if errors.Is(err, bridge.ErrQueueEmpty) {
				break
			}
			if errors.Is(err, bridge.ErrOrderNotFound) {
				// dangling entry, the order never made it into the store
				continue
			}
			if err != nil {
				log.Printf("Error pulling bridge order: %v", err)
				break
			}

			if order.Status != types.StatusPending {
				log.Printf("Skipping stale queue entry for order %d, status %s", order.OrderID, order.Status)
				continue
			}

			if err := engine.InitiateTransfer(order.OrderID, order.Direction); err != nil {
				log.Printf("Error initiating transfer for order %d: %v", order.OrderID, err)
				continue
			}
			log.Printf("Initiated transfer for order %d (%s, amount %d), awaiting relayer confirmation", order.OrderID, order.Direction, order.Amount)
		}
	}
}
