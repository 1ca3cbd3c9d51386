package submit

import "fmt"

// StatusError reports a response whose status indicated failure. The
// pipeline does not distinguish it from transport or parse failures
// when reporting; it exists so callers that care can errors.As for it.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("server responded %d", e.Code)
	}
	return fmt.Sprintf("server responded %d %s", e.Code, e.Status)
}
