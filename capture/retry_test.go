package capture_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/clipvault"
	"github.com/fwojciec/clipvault/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelay := []time.Duration{0, 0, 0}

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := capture.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelay)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection reset")
			}
			return "ok", nil
		}

		html, err := capture.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelay)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after all delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("boom")
		}

		_, err := capture.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelay)

		require.EqualError(t, err, "boom")
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry not found", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", clipvault.Errorf(clipvault.ENOTFOUND, "HTTP 404")
		}

		_, err := capture.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelay)

		require.Error(t, err)
		assert.Equal(t, clipvault.ENOTFOUND, clipvault.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("boom")
		}

		_, err := capture.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, capture.DefaultRetryDelays())
}
