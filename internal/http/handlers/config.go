package handlers

import "fleetops/internal/billing"

var engineCfg = billing.DefaultConfig()

// SetEngineConfig installs the billing config at startup.
func SetEngineConfig(cfg billing.Config) {
	engineCfg = cfg
}

func engineConfig() billing.Config {
	return engineCfg
}
