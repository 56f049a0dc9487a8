package module

import (
	"incommand/internal/platform/config"
)

// Options configures the audit module
type Options struct {
	MaxWindowHours int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_AUDIT_")
	return Options{
		MaxWindowHours: af.MayInt("MAX_WINDOW_HOURS", 24*90),
	}
}
