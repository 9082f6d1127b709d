// Package pipeline drives the per-station fetch loop.
package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/couchcryptid/metar/internal/domain"
	"github.com/couchcryptid/metar/internal/observability"
)

// Options select which bulletin variants a run requests.
type Options struct {
	// Decoded fetches the human-decoded rendering instead of the raw METAR.
	Decoded bool
	// TAF additionally fetches the forecast after each successful primary
	// fetch, best effort.
	TAF bool
}

// Loop fetches bulletins for a sequence of stations, one at a time, in
// input order. Failures are confined to their station: the loop logs a
// diagnostic and moves on, and never escalates.
type Loop struct {
	fetcher domain.Fetcher
	out     io.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Loop writing bulletin bodies to out.
func New(fetcher domain.Fetcher, out io.Writer, logger *slog.Logger, metrics *observability.Metrics) *Loop {
	return &Loop{
		fetcher: fetcher,
		out:     out,
		logger:  logger,
		metrics: metrics,
	}
}

// Run processes every station in order. Output ordering matches input
// ordering because each fetch completes before the next begins.
func (l *Loop) Run(ctx context.Context, stations []string, opts Options) {
	primary := domain.Metar
	if opts.Decoded {
		primary = domain.Decoded
	}

	for _, station := range stations {
		l.fetchStation(ctx, primary, station, opts.TAF)
	}
}

func (l *Loop) fetchStation(ctx context.Context, primary domain.Kind, station string, wantTAF bool) {
	url, err := domain.BulletinURL(primary, station)
	if err != nil {
		l.logger.Warn("skipping invalid station ID",
			"station", station,
			"reason", err,
		)
		l.metrics.Fetches.WithLabelValues(primary.String(), "invalid_station").Inc()
		return
	}

	err = l.fetcher.Fetch(ctx, url, l.out)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		l.logger.Warn("station not found", "station", station)
		l.metrics.Fetches.WithLabelValues(primary.String(), "not_found").Inc()
		return
	case err != nil:
		l.logger.Warn("unable to fetch bulletin",
			"station", station,
			"error", err,
		)
		l.metrics.Fetches.WithLabelValues(primary.String(), "transport_error").Inc()
		return
	}
	l.metrics.Fetches.WithLabelValues(primary.String(), "success").Inc()

	if !wantTAF {
		return
	}

	// The repository is not known to carry a TAF for every station that has
	// a METAR, so this fetch is fire-and-forget: no diagnostic, no effect on
	// the run.
	tafURL, err := domain.BulletinURL(domain.TAF, station)
	if err != nil {
		l.metrics.Fetches.WithLabelValues(domain.TAF.String(), "invalid_station").Inc()
		return
	}
	if err := l.fetcher.Fetch(ctx, tafURL, l.out); err != nil {
		outcome := "transport_error"
		if errors.Is(err, domain.ErrNotFound) {
			outcome = "not_found"
		}
		l.metrics.Fetches.WithLabelValues(domain.TAF.String(), outcome).Inc()
		return
	}
	l.metrics.Fetches.WithLabelValues(domain.TAF.String(), "success").Inc()
}
