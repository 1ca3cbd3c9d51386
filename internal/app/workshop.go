package app

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/raysh454/soshin/internal/browser"
	"github.com/raysh454/soshin/internal/form"
	"github.com/raysh454/soshin/internal/logging"
	"github.com/raysh454/soshin/internal/submit"
	"github.com/raysh454/soshin/internal/webclient"
)

// Workshop wires the transport, the form parser and the submit
// pipeline together for a run against a workshop page or endpoint.
type Workshop struct {
	cfg    *Config
	wc     webclient.WebClient
	pipe   *submit.Pipeline
	logger logging.Logger

	onSuccess submit.SuccessReporter
	onFailure submit.FailureReporter
}

// NewWorkshop constructs a Workshop using the configured webclient
// backend. Reporters default to structured log output; pass non-nil
// ones to capture outcomes instead.
func NewWorkshop(cfg *Config, logger logging.Logger, onSuccess submit.SuccessReporter, onFailure submit.FailureReporter) (*Workshop, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	wc, err := webclient.New(cfg.WebClientCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("constructing webclient: %w", err)
	}

	w := &Workshop{
		cfg:    cfg,
		wc:     wc,
		logger: logger,
	}

	w.onSuccess = onSuccess
	if w.onSuccess == nil {
		w.onSuccess = func(value any) {
			logger.Info("submission succeeded", logging.Field{Key: "response", Value: value})
		}
	}
	w.onFailure = onFailure
	if w.onFailure == nil {
		w.onFailure = func(err error) {
			logger.Error("submission failed", logging.Field{Key: "error", Value: err.Error()})
		}
	}

	w.pipe = submit.NewPipeline(cfg.SubmitCfg, wc, logger,
		submit.WithSuccessReporter(w.onSuccess),
		submit.WithFailureReporter(w.onFailure),
	)
	return w, nil
}

// SubmitCredentials posts username/password straight to endpoint (""
// uses the configured one).
func (w *Workshop) SubmitCredentials(ctx context.Context, endpoint, username, password string) (any, error) {
	return w.pipe.Submit(ctx, endpoint, submit.Payload{
		"username": username,
		"password": password,
	})
}

// SubmitFromPage fetches pageURL, locates its first form, resolves the
// submit target the way the page itself would (URL-bearing field over
// action attribute, falling back to the configured endpoint), and runs
// the submission as a form event.
func (w *Workshop) SubmitFromPage(ctx context.Context, pageURL, username, password string) (any, error) {
	resp, err := w.wc.Get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", pageURL, err)
	}

	doc, err := form.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", pageURL, err)
	}
	f, err := doc.FirstForm()
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", pageURL, err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page URL %s: %w", pageURL, err)
	}
	target, err := f.SubmitURL(base)
	if err == form.ErrNoSubmitURL {
		target = "" // pipeline endpoint applies
	} else if err != nil {
		return nil, err
	}

	formID := f.ID
	if formID == "" {
		formID = pageURL
	}

	ev := &submit.BasicEvent{
		ID:     formID,
		Values: map[string]string{"username": username, "password": password},
		URL:    target,
	}
	return w.pipe.HandleEvent(ctx, ev)
}

// SubmitViaBrowser drives a real browser against pageURL and routes
// the captured API response through the same reporters as the HTTP
// path.
func (w *Workshop) SubmitViaBrowser(ctx context.Context, pageURL, username, password string) (any, error) {
	sub := browser.NewSubmitter(browser.Config{Timeout: w.cfg.WebClientCfg.Timeout}, w.logger)

	resp, err := sub.Submit(ctx, pageURL, map[string]string{
		"#username": username,
		"#password": password,
	})
	if err == nil {
		var value any
		value, err = submit.DecodeResponse(resp)
		if err == nil {
			w.onSuccess(value)
			return value, nil
		}
	}

	if w.cfg.SubmitCfg.FailureLabel != "" {
		err = fmt.Errorf("%s: %w", w.cfg.SubmitCfg.FailureLabel, err)
	}
	w.onFailure(err)
	return nil, err
}

// Close releases the underlying transport.
func (w *Workshop) Close() {
	if w.wc != nil {
		_ = w.wc.Close()
	}
}
