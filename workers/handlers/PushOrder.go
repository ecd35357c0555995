package handlers

import (
	"log"
	"net/http"
)

type PushOrderRequest struct {
	OrderID uint64 `json:"orderId"`
}

// PushOrder re-enqueues a pending order for another processing pass.
func PushOrder(w http.ResponseWriter, r *http.Request) {
	var req PushOrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := Engine.PushBridgeOrder(req.OrderID); err != nil {
		log.Printf("Error pushing bridge order %d: %v", req.OrderID, err)
		responseError(w, err)
		return
	}

	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Order queued",
	}, http.StatusOK)
}
