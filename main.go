// Command soshin submits a workshop login form the way the page's own
// script would: read the fields, serialize them to JSON, POST them to
// the form's endpoint, and log the parsed response or the failure.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/raysh454/soshin/internal/app"
	"github.com/raysh454/soshin/internal/browser"
	"github.com/raysh454/soshin/internal/cli"
	"github.com/raysh454/soshin/internal/logging"
	"github.com/raysh454/soshin/internal/webclient"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "soshin: %v\n", err)
		os.Exit(2)
	}

	logger := logging.NewStdoutLogger("soshin")

	webclient.RegisterDefaultBackends()
	browser.Register()

	cfg := app.DefaultConfig()
	cfg.WebClientCfg.Backend = webclient.Backend(args.Backend)
	cfg.SubmitCfg.FailureLabel = args.Label
	if args.Endpoint != "" {
		cfg.SubmitCfg.Endpoint = args.Endpoint
	}

	workshop, err := app.NewWorkshop(cfg, logger, nil, nil)
	if err != nil {
		logger.Error("setup failed", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	defer workshop.Close()

	ctx := context.Background()

	switch {
	case args.Backend == "browser":
		_, err = workshop.SubmitViaBrowser(ctx, args.Page, args.Username, args.Password)
	case args.Page != "":
		_, err = workshop.SubmitFromPage(ctx, args.Page, args.Username, args.Password)
	default:
		_, err = workshop.SubmitCredentials(ctx, args.Endpoint, args.Username, args.Password)
	}
	if err != nil {
		// already reported through the failure reporter
		os.Exit(1)
	}
}
