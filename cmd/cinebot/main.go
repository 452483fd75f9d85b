package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jorisvermeer/cinebot/internal/catalog"
	"github.com/jorisvermeer/cinebot/internal/cli"
	"github.com/jorisvermeer/cinebot/internal/dialog"
	"github.com/jorisvermeer/cinebot/internal/stats"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Catalog: CINEBOT_CATALOG points at a JSON file, otherwise the
	// embedded default set is used.
	cat := catalog.Default()
	if path := os.Getenv("CINEBOT_CATALOG"); path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("loading catalog %s: %w", path, err)
		}
		cat = loaded
	}

	imageBase := os.Getenv("CINEBOT_IMAGE_BASE")
	if imageBase == "" {
		imageBase = "images/"
	}

	// Stats client for remote-query answers.
	statsCfg := stats.LoadConfig()
	var observer stats.Observer = stats.NoopObserver{}
	if statsCfg.LogCalls {
		observer = stats.NewLogObserver(os.Stderr)
	}
	statsClient := stats.NewHTTPClient(statsCfg, observer)

	app := &cli.App{
		Controller: dialog.NewController(cat, statsClient, imageBase),
	}

	// Detect interactive terminal for the shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
