package handlers

import (
	"log"
	"net/http"

	"gobridgeorder/bridge"
)

type CompleteOrderRequest struct {
	Identity string `json:"identity"`
	OrderID  uint64 `json:"orderId"`
}

func CompleteOrder(w http.ResponseWriter, r *http.Request) {
	var req CompleteOrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	inv := bridge.Invocation{Caller: req.Identity}
	if err := Engine.CompleteOrder(inv, req.OrderID); err != nil {
		log.Printf("Error completing order %d for %s: %v", req.OrderID, req.Identity, err)
		responseError(w, err)
		return
	}

	log.Printf("Completed order %d by %s", req.OrderID, req.Identity)
	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Order completed",
	}, http.StatusOK)
}
