package handlers

import "gobridgeorder/types"

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type APIOrderResponse struct {
	Status string             `json:"status"`
	Order  *types.BridgeOrder `json:"order"`
}

type APIStateResponse struct {
	Status        string `json:"status"`
	LockedTokens  uint64 `json:"lockedTokens"`
	OrderCount    int    `json:"orderCount"`
	QueueDepth    int    `json:"queueDepth"`
	LedgerBalance uint64 `json:"ledgerBalance,omitempty"`
}
