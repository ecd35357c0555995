package config

type Configuration struct {
	// Server config
	Server struct {
		UseSSL    bool   `yaml:"ssl"`
		Listen    string `yaml:"listen"`
		RedisPort int    `yaml:"redis_port"`
		RedisHost string `yaml:"redis_host"`
	} `yaml:"server"`
	// Bridge order machine config
	Bridge struct {
		// flat per-order fee, invocations carrying less reward are rejected
		OrderFee      uint64 `yaml:"order_fee"`
		StoreCapacity int    `yaml:"store_capacity"`
		// when true, complete/refund are open to any caller instead of
		// admin/manager gated
		OpenCompletion bool     `yaml:"open_completion"`
		Admin          string   `yaml:"admin"`
		Managers       []string `yaml:"managers"`
	} `yaml:"bridge"`
	// Host ledger node config
	Ledger struct {
		URL string `yaml:"url"`
		// important private stuff
		RPCUser     string `yaml:"rpc_user"`
		RPCPassword string `yaml:"rpc_pass"`
	} `yaml:"ledger"`
}

var Config Configuration

// maximum number of host ledger RPC retries
const LEDGER_RETRIES = 3

// how often the queue worker wakes up
const QUEUE_POLL_SECONDS = 3
