package submit

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Payload is a flat field-name to value mapping read from a form,
// e.g. {"username": ..., "password": ...}.
type Payload map[string]string

// RequestConfig is the method/body/headers triple describing an
// outgoing submission. It is built fresh per submission and never
// mutated afterwards.
type RequestConfig struct {
	Method  string
	Body    []byte
	Headers map[string]string
}

// BuildRequestConfig serializes payload to JSON and wraps it in a POST
// configuration with a single Content-Type header. It is a pure
// function of its input; a payload that cannot be marshaled (the caller
// controls payload shape, so in practice a flat string mapping always
// can) propagates as an error.
func BuildRequestConfig(payload any) (*RequestConfig, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return &RequestConfig{
		Method: http.MethodPost,
		Body:   body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}
