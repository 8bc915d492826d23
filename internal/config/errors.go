package config

import "errors"

// Sentinel error kinds. Load failures wrap ErrLoadConfig; values that load
// but cannot run the service wrap ErrInvalidConfig.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
