package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/resdesk"
)

// Ensure LoggingOpener implements resdesk.Opener.
var _ resdesk.Opener = (*LoggingOpener)(nil)

// LoggingOpener wraps an Opener with logging.
type LoggingOpener struct {
	next   resdesk.Opener
	logger *slog.Logger
}

// NewLoggingOpener creates a new LoggingOpener.
func NewLoggingOpener(next resdesk.Opener, logger *slog.Logger) *LoggingOpener {
	return &LoggingOpener{next: next, logger: logger}
}

// Open delegates to the wrapped opener and logs the URL.
func (o *LoggingOpener) Open(ctx context.Context, url string) (err error) {
	defer func() {
		o.logger.Info("open", "url", url, "err", err)
	}()
	return o.next.Open(ctx, url)
}
