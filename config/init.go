package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v2"
)

const configFile = "config.yml"

// reading config error is fatal, and exits main thread
func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

func readFile(cfg *Configuration) {
	f, err := os.Open(configFile)
	if err != nil {
		processError(err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		processError(err)
	}
}

func readEnv(cfg *Configuration) {
	if err := envconfig.Process("", cfg); err != nil {
		processError(err)
	}
}

// Init loads config.yml and lets environment variables override it. A
// machine with no admin identity would be unmanageable, so that is fatal too.
func Init() {
	readFile(&Config)
	readEnv(&Config)

	if Config.Bridge.Admin == "" {
		processError(fmt.Errorf("config: bridge admin identity is required"))
	}
	if Config.Bridge.StoreCapacity <= 0 {
		processError(fmt.Errorf("config: bridge store capacity must be positive"))
	}
}
