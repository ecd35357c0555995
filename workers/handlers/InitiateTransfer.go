package handlers

import (
	"log"
	"net/http"

	"gobridgeorder/types"
)

type InitiateTransferRequest struct {
	OrderID   uint64 `json:"orderId"`
	Direction string `json:"direction"`
}

// InitiateTransfer marks a pending order in flight. The relayer states the
// direction it is processing so the two legs cannot be mixed up.
func InitiateTransfer(w http.ResponseWriter, r *http.Request) {
	var req InitiateTransferRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	direction, err := types.ParseDirection(req.Direction)
	if err != nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "direction",
			Message: "Direction must be AtoB or BtoA",
		}, http.StatusBadRequest)
		return
	}

	if err := Engine.InitiateTransfer(req.OrderID, direction); err != nil {
		log.Printf("Error initiating transfer for order %d: %v", req.OrderID, err)
		responseError(w, err)
		return
	}

	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Transfer initiated",
	}, http.StatusOK)
}
