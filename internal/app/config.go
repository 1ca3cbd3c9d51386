package app

import (
	"time"

	"github.com/raysh454/soshin/internal/demoserver"
	"github.com/raysh454/soshin/internal/submit"
	"github.com/raysh454/soshin/internal/webclient"
)

// Config contains the runtime configuration for a workshop run.
type Config struct {
	// Submit pipeline configuration
	SubmitCfg submit.Config

	// WebClient configuration
	WebClientCfg webclient.Config

	// Demo server configuration
	DemoServerCfg demoserver.Config
}

// DefaultConfig returns a Config populated with sensible defaults:
// the nethttp backend pointed at the local demo server.
func DefaultConfig() *Config {
	return &Config{
		SubmitCfg: submit.Config{
			Endpoint: "http://localhost:9999/api/login",
		},
		WebClientCfg: webclient.Config{
			Backend: webclient.BackendNetHTTP,
			Timeout: 30 * time.Second,
		},
		DemoServerCfg: demoserver.DefaultConfig(),
	}
}
