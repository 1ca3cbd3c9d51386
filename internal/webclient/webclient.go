package webclient

import "context"

// WebClient abstracts the issuance of an HTTP request and the
// asynchronous receipt of a response or failure, so the submit pipeline
// can be exercised against real servers, a headless browser, or test
// doubles interchangeably.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	// Get is a convenience method for simple GET requests
	Get(ctx context.Context, url string) (*Response, error)

	Close() error
}
