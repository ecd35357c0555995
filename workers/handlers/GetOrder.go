package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

func GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "id",
			Message: "Order ID must be a positive integer",
		}, http.StatusBadRequest)
		return
	}

	order, err := Engine.GetOrder(orderID)
	if err != nil {
		responseError(w, err)
		return
	}

	responseJSON(w, &APIOrderResponse{
		Status: "ok",
		Order:  order,
	}, http.StatusOK)
}
