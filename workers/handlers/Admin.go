package handlers

import (
	"log"
	"net/http"

	"gobridgeorder/bridge"
)

type AdminRequest struct {
	Identity string `json:"identity"`
	Target   string `json:"target"`
}

func SetAdmin(w http.ResponseWriter, r *http.Request) {
	var req AdminRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	inv := bridge.Invocation{Caller: req.Identity}
	if err := Engine.SetAdmin(inv, req.Target); err != nil {
		log.Printf("Error transferring admin to %s by %s: %v", req.Target, req.Identity, err)
		responseError(w, err)
		return
	}

	log.Printf("Admin transferred to %s by %s", req.Target, req.Identity)
	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Admin transferred",
	}, http.StatusOK)
}

func AddManager(w http.ResponseWriter, r *http.Request) {
	var req AdminRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	inv := bridge.Invocation{Caller: req.Identity}
	if err := Engine.AddManager(inv, req.Target); err != nil {
		log.Printf("Error adding manager %s by %s: %v", req.Target, req.Identity, err)
		responseError(w, err)
		return
	}

	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Manager added",
	}, http.StatusOK)
}

func RemoveManager(w http.ResponseWriter, r *http.Request) {
	var req AdminRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	inv := bridge.Invocation{Caller: req.Identity}
	if err := Engine.RemoveManager(inv, req.Target); err != nil {
		log.Printf("Error removing manager %s by %s: %v", req.Target, req.Identity, err)
		responseError(w, err)
		return
	}

	responseJSON(w, &APIResponse{
		Status:  "ok",
		Message: "Manager removed",
	}, http.StatusOK)
}
