package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gobridgeorder/bridge"
)

// Engine is the machine all handlers operate on, wired once at startup.
var Engine *bridge.Machine

func Init(engine *bridge.Machine) {
	Engine = engine
}

func responseJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// responseError maps the machine's guard failures onto HTTP codes and writes
// the standard envelope.
func responseError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, bridge.ErrInvalidAmount),
		errors.Is(err, bridge.ErrInsufficientFee),
		errors.Is(err, bridge.ErrWrongDirection):
		code = http.StatusBadRequest
	case errors.Is(err, bridge.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, bridge.ErrOrderNotFound),
		errors.Is(err, bridge.ErrQueueEmpty):
		code = http.StatusNotFound
	case errors.Is(err, bridge.ErrInvalidStatus),
		errors.Is(err, bridge.ErrAlreadyTerminal),
		errors.Is(err, bridge.ErrCapacityExceeded):
		code = http.StatusConflict
	}
	responseJSON(w, &APIResponse{
		Status:  "error",
		Message: err.Error(),
	}, code)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Cannot unmarshal input JSON",
		}, http.StatusBadRequest)
		return false
	}
	return true
}
