package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/raysh454/soshin/internal/logging"
	"github.com/raysh454/soshin/internal/webclient"
)

// Client adapts Submitter to the webclient.WebClient interface so the
// browser can be selected through the backend registry. Do interprets
// req.URL as the workshop page and req.Options as selector-to-value
// field fills; Get renders the page and returns its HTML.
type Client struct {
	sub    *Submitter
	logger logging.Logger
}

func NewClient(cfg Config, logger logging.Logger) *Client {
	return &Client{
		sub:    NewSubmitter(cfg, logger),
		logger: logger.With(logging.Field{Key: "component", Value: "browser"}),
	}
}

func (c *Client) Do(ctx context.Context, req *webclient.Request) (*webclient.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	resp, err := c.sub.Submit(ctx, req.URL, req.Options)
	if err != nil {
		return nil, err
	}
	resp.Request = req
	return resp, nil
}

// Get renders the page in the browser and returns its outer HTML,
// useful for pages that only build their form with script.
func (c *Client) Get(ctx context.Context, url string) (*webclient.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.sub.cfg.Timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, c.sub.allocOpts...)
	defer cancelAlloc()
	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	var html string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", url, err)
	}

	return &webclient.Response{
		Body:       []byte(html),
		StatusCode: 200,
		FetchedAt:  time.Now(),
	}, nil
}

func (c *Client) Close() error { return nil }

var registerOnce sync.Once

// Register makes the browser backend available through the webclient
// registry under the "browser" name.
func Register() {
	registerOnce.Do(func() {
		webclient.Register(webclient.BackendBrowser, func(cfg webclient.Config, logger logging.Logger) (webclient.WebClient, error) {
			return NewClient(Config{Timeout: cfg.Timeout}, logger), nil
		})
	})
}
