// Package testutil provides shared test doubles for use across package
// tests. All dummies implement the corresponding interfaces from the
// production code, allowing injection into components under test
// without real I/O or side effects.
package testutil

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/raysh454/soshin/internal/logging"
	"github.com/raysh454/soshin/internal/webclient"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── WebClient ─────────────────────────────────────────────────────────

// DummyWebClient implements webclient.WebClient with scripted outcomes.
// By default every request returns Status (200 when zero) with Body.
// Set Err to force a transport-level failure instead. Block, when
// non-nil, is received from before responding, letting tests hold a
// request in flight deterministically.
type DummyWebClient struct {
	Status int
	Body   []byte
	Err    error
	Block  chan struct{}

	ResponseDelay time.Duration

	mu       sync.Mutex
	Requests []*webclient.Request
}

func (d *DummyWebClient) Do(ctx context.Context, req *webclient.Request) (*webclient.Response, error) {
	d.mu.Lock()
	d.Requests = append(d.Requests, req)
	d.mu.Unlock()

	if d.ResponseDelay > 0 {
		select {
		case <-time.After(d.ResponseDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if d.Block != nil {
		select {
		case <-d.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if d.Err != nil {
		return nil, d.Err
	}

	status := d.Status
	if status == 0 {
		status = http.StatusOK
	}
	return &webclient.Response{
		Request:    req,
		Body:       d.Body,
		Headers:    http.Header{},
		StatusCode: status,
		FetchedAt:  time.Now(),
	}, nil
}

func (d *DummyWebClient) Get(ctx context.Context, url string) (*webclient.Response, error) {
	return d.Do(ctx, &webclient.Request{Method: http.MethodGet, URL: url})
}

func (d *DummyWebClient) Close() error { return nil }

// RequestCount returns how many requests the dummy has seen.
func (d *DummyWebClient) RequestCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Requests)
}

// LastRequest returns the most recent request, or an error if none.
func (d *DummyWebClient) LastRequest() (*webclient.Request, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Requests) == 0 {
		return nil, fmt.Errorf("no requests recorded")
	}
	return d.Requests[len(d.Requests)-1], nil
}

// ─── Reporters ─────────────────────────────────────────────────────────

// RecordingReporters captures success and failure reporter invocations.
type RecordingReporters struct {
	mu        sync.Mutex
	Successes []any
	Failures  []error
}

func (r *RecordingReporters) Success(value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, value)
}

func (r *RecordingReporters) Failure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, err)
}

func (r *RecordingReporters) SuccessCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Successes)
}

func (r *RecordingReporters) FailureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Failures)
}
