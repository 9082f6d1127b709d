package domain

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound reports that the repository has no bulletin at the requested
// path. The fetch loop treats it as a per-station condition, not a failure
// of the run.
var ErrNotFound = errors.New("bulletin not found")

// Fetcher retrieves the bulletin at url and streams its body to dst exactly
// as received. Implementations return ErrNotFound when the remote reports
// the resource absent, and wrap any other transport condition.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dst io.Writer) error
}
