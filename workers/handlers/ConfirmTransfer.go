package handlers

import (
	"log"
	"net/http"
)

type ConfirmTransferRequest struct {
	OrderID          uint64 `json:"orderId"`
	CounterpartTxRef string `json:"counterpartTxRef"`
}

// ConfirmTransfer is called by the off-chain relayer once it has observed
// the matching transaction on the counterpart chain.
func ConfirmTransfer(w http.ResponseWriter, r *http.Request) {
	var req ConfirmTransferRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if req.CounterpartTxRef == "" {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "counterpartTxRef",
			Message: "No counterpart transaction reference provided",
		}, http.StatusBadRequest)
		return
	}

	if err := Engine.ConfirmTransfer(req.OrderID, req.CounterpartTxRef); err != nil {
		log.Printf("Error confirming transfer for order %d: %v", req.OrderID, err)
		responseError(w, err)
		return
	}

	log.Printf("Confirmed transfer for order %d, counterpart tx %s", req.OrderID, req.CounterpartTxRef)
	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Transfer confirmed",
	}, http.StatusOK)
}
