package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/jorisvermeer/cinebot/internal/statsd"
	"github.com/jorisvermeer/cinebot/internal/statsdb"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	addr := os.Getenv("STATSD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dbPath := os.Getenv("STATSD_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := statsdb.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening movie database: %w", err)
	}
	defer db.Close()

	if err := statsdb.Seed(db); err != nil {
		return fmt.Errorf("seeding movie database: %w", err)
	}

	srv := statsd.NewServer(db, os.Stderr)
	fmt.Fprintf(os.Stderr, "statsd listening on %s (db=%s)\n", addr, dbPath)
	return http.ListenAndServe(addr, srv.Handler())
}
