package cli

import (
	"flag"
	"fmt"
	"strings"
)

// CLIArgs are the command-line arguments that control a single
// submission run.
type CLIArgs struct {
	// Page is the URL of the workshop page whose form is submitted.
	Page string

	// Endpoint is a direct API URL; used when no page is given, and as
	// the fallback when the page's form carries no submit URL.
	Endpoint string

	// Username and Password fill the form's two fields.
	Username string
	Password string

	// Backend selects the transport: nethttp (default) or browser.
	Backend string

	// Label, when set, prefixes reported failures.
	Label string

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by
// passing arbitrary slices. The function is deterministic and does not
// read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("soshin", flag.ContinueOnError)
	var (
		page     = fs.String("page", "", "URL of the workshop page to submit (preferred)")
		endpoint = fs.String("endpoint", "", "API URL to POST to directly, or fallback when the form has none")
		username = fs.String("username", "", "Value for the username field (required)")
		password = fs.String("password", "", "Value for the password field")
		backend  = fs.String("backend", "nethttp", "Transport backend: nethttp|browser")
		label    = fs.String("label", "", "Prefix for reported failures")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(nil)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if strings.TrimSpace(*page) == "" && strings.TrimSpace(*endpoint) == "" {
		return nil, fmt.Errorf("one of -page or -endpoint is required")
	}
	if strings.TrimSpace(*username) == "" {
		return nil, fmt.Errorf("missing required -username argument")
	}
	if *backend == "browser" && strings.TrimSpace(*page) == "" {
		return nil, fmt.Errorf("the browser backend requires -page")
	}

	return &CLIArgs{
		Page:     *page,
		Endpoint: *endpoint,
		Username: *username,
		Password: *password,
		Backend:  *backend,
		Label:    *label,
		RawArgs:  args,
	}, nil
}
