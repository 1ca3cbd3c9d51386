// Package browser drives a real headless browser against a workshop
// page: it fills the login fields, clicks the submit control, and
// captures the network request the page's own script issues. It is the
// "embedding environment" end of the submit pipeline.
package browser

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/raysh454/soshin/internal/logging"
	"github.com/raysh454/soshin/internal/webclient"
)

// Config controls how the browser is driven.
type Config struct {
	// SubmitSelector locates the control to click after filling fields.
	SubmitSelector string

	// Timeout bounds the whole navigate-fill-submit-capture sequence.
	Timeout time.Duration

	// ShowBrowser disables headless mode for debugging.
	ShowBrowser bool
}

const (
	defaultSubmitSelector = `[type="submit"], #submit-btn`
	defaultTimeout        = 30 * time.Second
)

// Submitter performs form submissions through chromedp.
type Submitter struct {
	cfg       Config
	logger    logging.Logger
	allocOpts []chromedp.ExecAllocatorOption
}

func NewSubmitter(cfg Config, logger logging.Logger) *Submitter {
	if cfg.SubmitSelector == "" {
		cfg.SubmitSelector = defaultSubmitSelector
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if cfg.ShowBrowser {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	return &Submitter{
		cfg:       cfg,
		logger:    logger.With(logging.Field{Key: "component", Value: "browser"}),
		allocOpts: opts,
	}
}

// Submit navigates to pageURL, types each value into its selector
// (e.g. "#username"), clicks the submit control, and returns the
// captured status and body of the XHR/fetch the page issued.
func (s *Submitter) Submit(ctx context.Context, pageURL string, fields map[string]string) (*webclient.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, s.allocOpts...)
	defer cancelAlloc()
	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	var (
		mu      sync.Mutex
		reqID   network.RequestID
		status  int
		headers http.Header
		failure string
		once    sync.Once
		done    = make(chan struct{})
	)

	chromedp.ListenTarget(taskCtx, func(ev any) {
		switch e := ev.(type) {
		case *network.EventResponseReceived:
			if e.Type != network.ResourceTypeXHR && e.Type != network.ResourceTypeFetch {
				return
			}
			mu.Lock()
			reqID = e.RequestID
			status = int(e.Response.Status)
			headers = http.Header{}
			for k, v := range e.Response.Headers {
				headers.Set(k, fmt.Sprint(v))
			}
			mu.Unlock()
		case *network.EventLoadingFinished:
			mu.Lock()
			match := reqID != "" && e.RequestID == reqID
			mu.Unlock()
			if match {
				once.Do(func() { close(done) })
			}
		case *network.EventLoadingFailed:
			if e.Type != network.ResourceTypeXHR && e.Type != network.ResourceTypeFetch {
				return
			}
			mu.Lock()
			failure = e.ErrorText
			mu.Unlock()
			once.Do(func() { close(done) })
		}
	})

	// Fill fields in a stable order so runs are reproducible
	selectors := make([]string, 0, len(fields))
	for sel := range fields {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	tasks := chromedp.Tasks{
		network.Enable(),
		chromedp.Navigate(pageURL),
	}
	for _, sel := range selectors {
		tasks = append(tasks, chromedp.SendKeys(sel, fields[sel], chromedp.ByQuery))
	}
	tasks = append(tasks, chromedp.Click(s.cfg.SubmitSelector, chromedp.ByQuery))

	s.logger.Debug("driving page",
		logging.Field{Key: "url", Value: pageURL},
		logging.Field{Key: "fields", Value: len(fields)})

	if err := chromedp.Run(taskCtx, tasks); err != nil {
		return nil, fmt.Errorf("drive page %s: %w", pageURL, err)
	}

	select {
	case <-done:
	case <-taskCtx.Done():
		return nil, fmt.Errorf("waiting for submission response: %w", taskCtx.Err())
	}

	mu.Lock()
	id, code, hdrs, failed := reqID, status, headers, failure
	mu.Unlock()

	if failed != "" {
		return nil, fmt.Errorf("browser request failed: %s", failed)
	}

	var body []byte
	err := chromedp.Run(taskCtx, chromedp.ActionFunc(func(cx context.Context) error {
		b, err := network.GetResponseBody(id).Do(cx)
		if err != nil {
			return err
		}
		body = b
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("read submission response body: %w", err)
	}

	return &webclient.Response{
		Body:       body,
		Headers:    hdrs,
		StatusCode: code,
		FetchedAt:  time.Now(),
	}, nil
}
