package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/raysh454/soshin/internal/logging"
	"github.com/raysh454/soshin/internal/webclient"
)

// SuccessReporter receives the parsed JSON response value.
type SuccessReporter func(value any)

// FailureReporter receives every failure the pipeline produces: request
// construction, transport, non-2xx status, and response parsing all
// funnel here undistinguished.
type FailureReporter func(err error)

// Pipeline runs a submission end to end: build the request config,
// issue it through the transport, check the status, parse the body, and
// hand the outcome to exactly one of the two reporters.
type Pipeline struct {
	cfg       Config
	wc        webclient.WebClient
	logger    logging.Logger
	onSuccess SuccessReporter
	onFailure FailureReporter
	flight    singleflight.Group
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithSuccessReporter replaces the default success reporter (an Info
// log of the parsed value).
func WithSuccessReporter(r SuccessReporter) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.onSuccess = r
		}
	}
}

// WithFailureReporter replaces the default failure reporter (an Error
// log, prefixed with cfg.FailureLabel when set).
func WithFailureReporter(r FailureReporter) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.onFailure = r
		}
	}
}

func NewPipeline(cfg Config, wc webclient.WebClient, logger logging.Logger, opts ...Option) *Pipeline {
	componentLogger := logger.With(logging.Field{Key: "component", Value: "submit"})

	p := &Pipeline{
		cfg:    cfg,
		wc:     wc,
		logger: componentLogger,
	}
	p.onSuccess = func(value any) {
		p.logger.Info("submission succeeded", logging.Field{Key: "response", Value: value})
	}
	p.onFailure = func(err error) {
		p.logger.Error("submission failed", logging.Field{Key: "error", Value: err.Error()})
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// HandleEvent is the interaction-event adapter: it suppresses the
// event's default action exactly once, assembles the payload from the
// event's field values, resolves the target URL (the event's
// URL-bearing field wins over the configured endpoint), and runs the
// submission. Overlapping events with the same FormID are collapsed
// onto one in-flight request; each caller still gets the shared outcome
// reported.
func (p *Pipeline) HandleEvent(ctx context.Context, ev FormEvent) (any, error) {
	ev.PreventDefault()

	payload := Payload{}
	for name, value := range ev.FieldValues() {
		payload[name] = value
	}

	url := ev.TargetURL()
	if url == "" {
		url = p.cfg.Endpoint
	}

	value, err, shared := p.flight.Do(ev.FormID(), func() (any, error) {
		return p.run(ctx, url, payload)
	})
	if shared {
		p.logger.Debug("submission shared with in-flight request",
			logging.Field{Key: "form", Value: ev.FormID()})
	}
	return p.report(value, err)
}

// Submit runs a single submission outside any event context. It is the
// pure (payload, transport) to (result | error) form of the pipeline.
func (p *Pipeline) Submit(ctx context.Context, url string, payload Payload) (any, error) {
	if url == "" {
		url = p.cfg.Endpoint
	}
	value, err := p.run(ctx, url, payload)
	return p.report(value, err)
}

func (p *Pipeline) report(value any, err error) (any, error) {
	if err != nil {
		if p.cfg.FailureLabel != "" {
			err = fmt.Errorf("%s: %w", p.cfg.FailureLabel, err)
		}
		p.onFailure(err)
		return nil, err
	}
	p.onSuccess(value)
	return value, nil
}

func (p *Pipeline) run(ctx context.Context, url string, payload Payload) (any, error) {
	if p.wc == nil {
		return nil, fmt.Errorf("submit: webclient is nil")
	}
	if url == "" {
		return nil, fmt.Errorf("submit: no target URL")
	}

	reqCfg, err := BuildRequestConfig(payload)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	for k, v := range reqCfg.Headers {
		headers.Set(k, v)
	}

	p.logger.Debug("submitting form payload",
		logging.Field{Key: "url", Value: url},
		logging.Field{Key: "fields", Value: len(payload)})

	resp, err := p.wc.Do(ctx, &webclient.Request{
		Method:  reqCfg.Method,
		URL:     url,
		Headers: headers,
		Body:    reqCfg.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("submit to %s: %w", url, err)
	}

	return DecodeResponse(resp)
}

// DecodeResponse checks the response status and parses the body as
// JSON. It is shared with embeddings that obtain the response through
// their own transport, like the browser adapter.
func DecodeResponse(resp *webclient.Response) (any, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Status: http.StatusText(resp.StatusCode),
		}
	}

	var value any
	if err := json.Unmarshal(resp.Body, &value); err != nil {
		return nil, fmt.Errorf("parse response body: %w", err)
	}
	return value, nil
}
