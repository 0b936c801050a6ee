// Package slog provides logging decorators for resdesk services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/resdesk"
)

// Ensure LoggingKeyValueStore implements resdesk.KeyValueStore.
var _ resdesk.KeyValueStore = (*LoggingKeyValueStore)(nil)

// LoggingKeyValueStore wraps a KeyValueStore with logging. Missing keys are
// logged at debug level; other failures at warn level, since callers such
// as the history ignore them.
type LoggingKeyValueStore struct {
	next   resdesk.KeyValueStore
	logger *slog.Logger
}

// NewLoggingKeyValueStore creates a new LoggingKeyValueStore.
func NewLoggingKeyValueStore(next resdesk.KeyValueStore, logger *slog.Logger) *LoggingKeyValueStore {
	return &LoggingKeyValueStore{next: next, logger: logger}
}

// Get delegates to the wrapped store and logs the lookup.
func (s *LoggingKeyValueStore) Get(ctx context.Context, key string) (value string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil && resdesk.ErrorCode(err) != resdesk.ENOTFOUND {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "kv get",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Get(ctx, key)
}

// Set delegates to the wrapped store and logs the write.
func (s *LoggingKeyValueStore) Set(ctx context.Context, key, value string) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "kv set",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Set(ctx, key, value)
}
