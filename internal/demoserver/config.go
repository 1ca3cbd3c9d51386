package demoserver

import "github.com/raysh454/soshin/internal/logging"

// Mode selects how the demo API answers submissions, so the workshop
// can demonstrate both the success and the failure paths.
type Mode string

const (
	ModeOK       Mode = "ok"
	ModeNotFound Mode = "not-found"
	ModeError    Mode = "error"
)

// Config holds configuration for the demo server.
type Config struct {
	// Port is the port on which the demo server listens.
	Port int

	// DBPath is where received submissions are kept; empty means an
	// in-memory database.
	DBPath string

	// InitialMode is the API behavior at startup (default: ok).
	InitialMode Mode

	Logger logging.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Port:        9999,
		InitialMode: ModeOK,
	}
}
