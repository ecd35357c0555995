package handlers

import (
	"log"
	"net/http"

	"gobridgeorder/bridge"
)

type RefundOrderRequest struct {
	Identity string `json:"identity"`
	OrderID  uint64 `json:"orderId"`
}

func RefundOrder(w http.ResponseWriter, r *http.Request) {
	var req RefundOrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	inv := bridge.Invocation{Caller: req.Identity}
	if err := Engine.RefundOrder(inv, req.OrderID); err != nil {
		log.Printf("Error refunding order %d for %s: %v", req.OrderID, req.Identity, err)
		responseError(w, err)
		return
	}

	log.Printf("Refunded order %d by %s", req.OrderID, req.Identity)
	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Order refunded",
	}, http.StatusOK)
}
