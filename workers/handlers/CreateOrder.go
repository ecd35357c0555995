package handlers

import (
	"log"
	"net/http"

	"gobridgeorder/bridge"
	"gobridgeorder/types"

	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
)

type CreateOrderRequest struct {
	Identity           string `json:"identity"`
	Reward             uint64 `json:"reward"`
	CounterpartAddress string `json:"counterpartAddress"`
	Amount             uint64 `json:"amount"`
	Direction          string `json:"direction"`
}

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
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

	counterpart := req.CounterpartAddress
	if direction == types.DirectionAToB {
		// counterpart side is EVM, normalize and validate the destination
		counterpart = common.HexToAddress(req.CounterpartAddress).Hex()
		if err := ethav.Validate(counterpart); err != nil {
			log.Printf("Error validating counterpart address '%s': %s", req.CounterpartAddress, err.Error())
			responseJSON(w, &APIResponse{
				Status:  "error",
				Field:   "counterpartAddress",
				Message: "No counterpart address or invalid address provided",
			}, http.StatusBadRequest)
			return
		}
	} else if counterpart == "" {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "counterpartAddress",
			Message: "No counterpart address provided",
		}, http.StatusBadRequest)
		return
	}

	inv := bridge.Invocation{Caller: req.Identity, Reward: req.Reward}
	order, err := Engine.CreateOrder(inv, counterpart, req.Amount, direction)
	if err != nil {
		log.Printf("Error creating bridge order for %s: %v", req.Identity, err)
		responseError(w, err)
		return
	}

	log.Printf("Created bridge order %d: %s -> %s, amount %d (%s)", order.OrderID, order.Sender, order.CounterpartAddress, order.Amount, order.Direction)
	responseJSON(w, &APIOrderResponse{
		Status: "ok",
		Order:  order,
	}, http.StatusOK)
}
