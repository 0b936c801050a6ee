package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/resdesk"
	"github.com/fwojciec/resdesk/mock"
	resslog "github.com/fwojciec/resdesk/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingKeyValueStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("logs missing key at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		store := resslog.NewLoggingKeyValueStore(mock.NewMemoryStore(), debugLogger(&buf))

		_, err := store.Get(context.Background(), resdesk.HistoryKey)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "kv get")
		assert.Contains(t, output, "key=searchHistory")
	})

	t.Run("logs storage failure at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.KeyValueStore{
			GetFn: func(context.Context, string) (string, error) {
				return "", errors.New("disk I/O error")
			},
		}
		store := resslog.NewLoggingKeyValueStore(inner, debugLogger(&buf))

		_, err := store.Get(context.Background(), "k")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), `err="disk I/O error"`)
	})
}

func TestLoggingKeyValueStore_Set(t *testing.T) {
	t.Parallel()

	t.Run("logs write size and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := mock.NewMemoryStore()
		store := resslog.NewLoggingKeyValueStore(inner, debugLogger(&buf))

		err := store.Set(context.Background(), resdesk.HistoryKey, `["q1"]`)

		require.NoError(t, err)
		assert.Equal(t, `["q1"]`, inner.Values[resdesk.HistoryKey])
		assert.Contains(t, buf.String(), "kv set")
		assert.Contains(t, buf.String(), "bytes=6")
	})

	t.Run("history keeps working when writes fail", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.KeyValueStore{
			GetFn: func(_ context.Context, key string) (string, error) {
				return "", resdesk.Errorf(resdesk.ENOTFOUND, "key %q not found", key)
			},
			SetFn: func(context.Context, string, string) error {
				return errors.New("quota exceeded")
			},
		}
		ctx := context.Background()
		h := resdesk.NewHistory(ctx, resslog.NewLoggingKeyValueStore(inner, debugLogger(&buf)), nil)

		h.RecordQuery(ctx, "bandit tutoring")

		assert.Equal(t, []string{"bandit tutoring"}, h.Queries())
		assert.Contains(t, buf.String(), `err="quota exceeded"`)
	})
}
