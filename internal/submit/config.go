package submit

// Config holds the pipeline options that vary per embedding.
type Config struct {
	// Endpoint is the target URL used when a form event carries no
	// URL-bearing field of its own.
	Endpoint string

	// FailureLabel, when non-empty, prefixes every reported failure.
	FailureLabel string
}
