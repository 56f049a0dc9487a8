package module

import (
	"incommand/internal/platform/config"
)

// Options configures the incidents module
type Options struct {
	HardLimit int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	inf := cfg.Prefix("CORE_INCIDENTS_")
	return Options{
		HardLimit: inf.MayInt("HARD_LIMIT", 500),
	}
}
