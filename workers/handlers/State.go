package handlers

import (
	"log"
	"net/http"

	"gobridgeorder/LEDGERRPC"
)

func State(w http.ResponseWriter, r *http.Request) {
	orderCount, err := Engine.OrderCount()
	if err != nil {
		log.Printf("Error reading order count: %v", err)
		responseError(w, err)
		return
	}
	queueDepth, err := Engine.QueueDepth()
	if err != nil {
		log.Printf("Error reading queue depth: %v", err)
		responseError(w, err)
		return
	}

	// ledger balance is informational, failure does not fail the endpoint
	balance, err := LEDGERRPC.GetClient().Balance()
	if err != nil {
		log.Printf("Error reading ledger balance: %v", err)
		balance = 0
	}

	responseJSON(w, &APIStateResponse{
		Status:        "ok",
		LockedTokens:  Engine.LockedTokens(),
		OrderCount:    orderCount,
		QueueDepth:    queueDepth,
		LedgerBalance: balance,
	}, http.StatusOK)
}
