package handlers

import (
	"log"
	"net/http"
)

// PullOrder hands the queue head to an external processor. The returned
// snapshot can be stale relative to admin actions; the caller must check the
// status before acting on it.
func PullOrder(w http.ResponseWriter, r *http.Request) {
	order, err := Engine.PullBridgeOrder()
	if err != nil {
		log.Printf("Error pulling bridge order: %v", err)
		responseError(w, err)
		return
	}

	responseJSON(w, &APIOrderResponse{
		Status: "ok",
		Order:  order,
	}, http.StatusOK)
}
