package handlers

import (
	"log"
	"net/http"
)

type BurnOrderRequest struct {
	OrderID uint64 `json:"orderId"`
}

func BurnOrder(w http.ResponseWriter, r *http.Request) {
	var req BurnOrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := Engine.BurnAmount(req.OrderID); err != nil {
		log.Printf("Error burning order %d: %v", req.OrderID, err)
		responseError(w, err)
		return
	}

	log.Printf("Burned amount of order %d", req.OrderID)
	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Order amount burned",
	}, http.StatusOK)
}
