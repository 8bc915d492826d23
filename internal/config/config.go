// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers a YAML file and environment variables over the defaults.
// - Validation errors wrap ErrInvalidConfig.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects the log output: text, json or tint.
	LogFormat string `koanf:"log_format"`
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`
	// EventsPath points at the athlete events CSV.
	EventsPath string `koanf:"events_path"`
	// RegionsPath points at the NOC regions CSV.
	RegionsPath string `koanf:"regions_path"`
	// DedupeTeamEvents counts a team medal once instead of once per athlete.
	DedupeTeamEvents bool `koanf:"dedupe_team_events"`
	// MaxTallyLimit caps GET /tally?limit.
	MaxTallyLimit int `koanf:"max_tally_limit"`
	// CORSAllowedOrigins lists origins allowed to call the JSON API.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
	// RateLimitRPS is the per-client request rate on query endpoints; 0 disables limiting.
	RateLimitRPS float64 `koanf:"rate_limit_rps"`
	// RateLimitBurst is the per-client burst size.
	RateLimitBurst int `koanf:"rate_limit_burst"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		EventsPath:         "data/athlete_events.csv",
		RegionsPath:        "data/noc_regions.csv",
		DedupeTeamEvents:   true,
		MaxTallyLimit:      250,
		CORSAllowedOrigins: []string{"*"},
		RateLimitRPS:       0,
		RateLimitBurst:     20,
	}
}
