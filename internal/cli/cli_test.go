package cli_test

import (
	"testing"

	"github.com/raysh454/soshin/internal/cli"
)

func TestParseArgs_PageRun(t *testing.T) {
	t.Parallel()
	args, err := cli.ParseArgs([]string{
		"-page", "http://localhost:9999/login",
		"-username", "sam",
		"-password", "hunter2",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Page != "http://localhost:9999/login" || args.Username != "sam" {
		t.Errorf("unexpected args %+v", args)
	}
	if args.Backend != "nethttp" {
		t.Errorf("expected default backend nethttp, got %q", args.Backend)
	}
}

func TestParseArgs_EndpointOnly(t *testing.T) {
	t.Parallel()
	args, err := cli.ParseArgs([]string{
		"-endpoint", "http://localhost:9999/api/login",
		"-username", "sam",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Endpoint != "http://localhost:9999/api/login" {
		t.Errorf("unexpected endpoint %q", args.Endpoint)
	}
}

func TestParseArgs_MissingTarget_ReturnsError(t *testing.T) {
	t.Parallel()
	if _, err := cli.ParseArgs([]string{"-username", "sam"}); err == nil {
		t.Fatal("expected error when neither -page nor -endpoint is given")
	}
}

func TestParseArgs_MissingUsername_ReturnsError(t *testing.T) {
	t.Parallel()
	if _, err := cli.ParseArgs([]string{"-endpoint", "http://x/api"}); err == nil {
		t.Fatal("expected error for missing -username")
	}
}

func TestParseArgs_BrowserRequiresPage(t *testing.T) {
	t.Parallel()
	_, err := cli.ParseArgs([]string{
		"-endpoint", "http://x/api",
		"-username", "sam",
		"-backend", "browser",
	})
	if err == nil {
		t.Fatal("expected error: browser backend without -page")
	}
}
