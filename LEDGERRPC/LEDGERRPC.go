package LEDGERRPC

import (
	"fmt"
	"log"

	"gobridgeorder/config"

	"github.com/ybbus/jsonrpc"
)

// thin wrapper over the host ledger node's bridge_* JSON-RPC methods,
// implements bridge.HostLedger
type RPCClient struct {
	Client *jsonrpc.RPCClient
}

var client *RPCClient

func GetClient() *RPCClient {
	if client == nil {
		cl := jsonrpc.NewRPCClient(config.Config.Ledger.URL)
		if config.Config.Ledger.RPCUser != "" {
			cl.SetBasicAuth(config.Config.Ledger.RPCUser, config.Config.Ledger.RPCPassword)
		}
		client = &RPCClient{
			Client: cl,
		}
	}
	return client
}

// Transfer debits the bridge contract account and credits dest atomically on
// the host ledger.
func (c *RPCClient) Transfer(dest string, amount uint64) error {
	var reterr error
	for i := 0; i < config.LEDGER_RETRIES; i++ {
		resp, err := c.Client.Call("bridge_transfer", dest, amount)
		if err != nil {
			reterr = fmt.Errorf("error calling bridge_transfer: %s", err.Error())
			log.Print(reterr.Error())
			continue
		}
		if resp.Error != nil {
			// node rejected the transfer, retrying will not help
			return fmt.Errorf("bridge_transfer rejected: %d %s", resp.Error.Code, resp.Error.Message)
		}
		return nil
	}
	return reterr
}

// Burn permanently destroys amount from the bridge contract balance.
func (c *RPCClient) Burn(amount uint64) error {
	var reterr error
	for i := 0; i < config.LEDGER_RETRIES; i++ {
		resp, err := c.Client.Call("bridge_burn", amount)
		if err != nil {
			reterr = fmt.Errorf("error calling bridge_burn: %s", err.Error())
			log.Print(reterr.Error())
			continue
		}
		if resp.Error != nil {
			return fmt.Errorf("bridge_burn rejected: %d %s", resp.Error.Code, resp.Error.Message)
		}
		return nil
	}
	return reterr
}

// Balance reports the bridge contract account balance on the host ledger.
func (c *RPCClient) Balance() (uint64, error) {
	resp, err := c.Client.Call("bridge_balance")
	if err != nil {
		return 0, fmt.Errorf("error calling bridge_balance: %s", err.Error())
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("bridge_balance rejected: %d %s", resp.Error.Code, resp.Error.Message)
	}

	balance, err := resp.GetInt()
	if err != nil {
		return 0, fmt.Errorf("cannot decode bridge_balance result: %s", err.Error())
	}
	// a broken node must not wrap into an astronomical unsigned balance
	if balance < 0 {
		return 0, fmt.Errorf("bridge_balance returned negative value %d", balance)
	}
	return uint64(balance), nil
}
