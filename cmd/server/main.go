package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gobridgeorder/LEDGERRPC"
	"gobridgeorder/bridge"
	"gobridgeorder/config"
	"gobridgeorder/redis"
	"gobridgeorder/workers"
	"gobridgeorder/workers/handlers"
)

func main() {
	log.Print("Starting bridge order service")

	f, err := os.OpenFile(fmt.Sprintf("logs/log_%s.txt", time.Now().Format("2006-01-02")), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file for writing: %v", err)
	}
	defer f.Close()

	log.SetOutput(f)

	config.Init()

	// connect to Redis, without persistence do not continue
	redis.Init()

	lastOrderID, err := redis.GetLastOrderID()
	if err != nil {
		log.Fatalf("error reading order ID high-water mark: %v", err)
	}
	lockedTokens, err := redis.ComputeLockedTokens()
	if err != nil {
		log.Fatalf("error rebuilding locked token balance: %v", err)
	}
	log.Printf("Resuming with last order ID %d, %d tokens locked", lastOrderID, lockedTokens)

	policy := bridge.ManagerGated
	if config.Config.Bridge.OpenCompletion {
		policy = bridge.OpenCompletion
	}

	engine := bridge.NewMachine(
		bridge.MachineConfig{
			OrderFee: config.Config.Bridge.OrderFee,
			Policy:   policy,
		},
		redis.NewStore(config.Config.Bridge.StoreCapacity),
		redis.NewQueue(),
		bridge.NewAccessControl(config.Config.Bridge.Admin, config.Config.Bridge.Managers),
		bridge.NewAccounting(lockedTokens),
		LEDGERRPC.GetClient(),
		bridge.LogSink{},
		lastOrderID,
	)
	handlers.Init(engine)

	// two worker threads:
	// * drain the order queue and initiate transfers
	// * API serving HTTP server (serves as main worker thread)
	go workers.Worker_processQueue(engine)

	workers.Worker_HTTP()
}
