package webclient

import "time"

// Backend names the transport implementation to construct.
type Backend string

const (
	BackendNetHTTP Backend = "nethttp"
	BackendBrowser Backend = "browser"
)

// Config is the minimal set of options required for constructing a
// WebClient backend.
type Config struct {
	Backend Backend

	// Timeout applies to the whole request on backends that support it.
	// Zero means the backend default.
	Timeout time.Duration
}
