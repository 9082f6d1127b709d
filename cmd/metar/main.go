// Command metar prints current aviation weather bulletins for one or more
// stations, fetched from the NOAA TGFTP text-file repository and reproduced
// byte for byte on standard output.
//
// Usage:
//
//	metar [-d] [-t] station_id [...]
//
// Station IDs are four-character ICAO identifiers; three-character US
// identifiers get a "K" prepended (LAX fetches KLAX). -d requests the
// human-decoded rendering instead of the raw METAR; -t additionally fetches
// the TAF, where available, after each successful station.
//
// Individual station failures are diagnostics on standard error, never
// process failures: the exit status is 0 unless the invocation itself was
// malformed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/couchcryptid/metar/internal/adapter/http"
	"github.com/couchcryptid/metar/internal/adapter/noaa"
	"github.com/couchcryptid/metar/internal/config"
	"github.com/couchcryptid/metar/internal/observability"
	"github.com/couchcryptid/metar/internal/pipeline"
)

// BSD sysexits codes, what shell callers expect from small fetch tools.
const (
	exitOK    = 0
	exitUsage = 64
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("metar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	decoded := fs.Bool("d", false, "show decoded METAR output")
	tafs := fs.Bool("t", false, "show TAFs where available")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	stations := fs.Args()
	if len(stations) == 0 {
		fmt.Fprintln(stderr, "metar: at least one station ID is required")
		usage(stderr)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "metar: %v\n", err)
		return exitUsage
	}

	logger := observability.NewLogger(cfg, stderr)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := httpadapter.NewServer(cfg.MetricsAddr, metrics.Registry(), logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("debug server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("debug server shutdown error", "error", err)
			}
		}()
	}

	// One shared client for every station and both bulletin kinds.
	client := noaa.NewClient(cfg.RequestTimeout, logger, metrics)
	loop := pipeline.New(client, stdout, logger, metrics)
	loop.Run(ctx, stations, pipeline.Options{Decoded: *decoded, TAF: *tafs})

	return exitOK
}

func usage(w io.Writer) {
	fmt.Fprint(w, "usage: metar [-d] [-t] station_id [...]\n"+
		"\t-d show decoded METAR output\n"+
		"\t-t show TAFs where available\n")
}
