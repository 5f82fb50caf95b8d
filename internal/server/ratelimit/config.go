package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// EndpointConfig sets the budget for one route.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration
	Burst  int           // burst capacity, defaults to Limit
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// LoadConfig reads limiter settings from the environment. The per-route
// table stays compiled in; only the knobs are tunable.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: defaultEndpointConfigs(),
	}
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: defaultEndpointConfigs(),
	}
}

// defaultEndpointConfigs budgets the LLM-backed routes; each request costs
// one upstream completion, so they get tighter limits than the default.
func defaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/v1/bio/elaborate", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/v1/wizard/step", Method: "POST", Limit: 60, Window: time.Minute, Burst: 15},
	}
}

// match resolves the config for a path and method. Health checks are
// unlimited; unknown routes use the default budget.
func (c *Config) match(path, method string) EndpointConfig {
	if path == "/health" {
		return EndpointConfig{}
	}
	for _, ec := range c.EndpointConfigs {
		if ec.Path == path && ec.Method == method {
			return ec
		}
	}
	return EndpointConfig{
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
		Burst:  c.DefaultLimit,
	}
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
