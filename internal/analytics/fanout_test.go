package analytics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestDispatchSuccess(t *testing.T) {
	p := Dispatch(context.Background(), discardLogger(), "orders", func(ctx context.Context) (int, error) {
		return 42, nil
	})

	o := p.Wait()
	assert.False(t, o.Failed())
	assert.Equal(t, "orders", o.Query())
	assert.Equal(t, 42, o.ValueOr(0))
}

func TestDispatchFailureYieldsDefault(t *testing.T) {
	p := Dispatch(context.Background(), discardLogger(), "orders", func(ctx context.Context) ([]string, error) {
		return nil, errors.New("connection reset")
	})

	o := p.Wait()
	assert.True(t, o.Failed())
	assert.EqualError(t, o.Err(), "connection reset")
	assert.Equal(t, []string{}, o.ValueOr([]string{}))
}

func TestPendingWaitIsIdempotent(t *testing.T) {
	var calls atomic.Int32
	p := Dispatch(context.Background(), discardLogger(), "count", func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 7, nil
	})

	first := p.Wait()
	second := p.Wait()
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSettleIsolatesFailures(t *testing.T) {
	boom := errors.New("boom")
	queries := []Query[int]{
		{Name: "a", Run: func(ctx context.Context) (int, error) { return 1, nil }},
		{Name: "b", Run: func(ctx context.Context) (int, error) { return 0, boom }},
		{Name: "c", Run: func(ctx context.Context) (int, error) { return 3, nil }},
	}

	outcomes := Settle(context.Background(), discardLogger(), queries)
	require.Len(t, outcomes, 3)

	assert.Equal(t, 1, outcomes[0].ValueOr(-1))
	assert.True(t, outcomes[1].Failed())
	assert.Equal(t, -1, outcomes[1].ValueOr(-1))
	assert.Equal(t, 3, outcomes[2].ValueOr(-1))

	// Outcomes line up with the input order, not completion order.
	assert.Equal(t, "a", outcomes[0].Query())
	assert.Equal(t, "b", outcomes[1].Query())
	assert.Equal(t, "c", outcomes[2].Query())
}

func TestSettleRunsConcurrently(t *testing.T) {
	block := make(chan struct{})
	queries := []Query[int]{
		{Name: "slow", Run: func(ctx context.Context) (int, error) {
			<-block
			return 1, nil
		}},
		{Name: "unblocker", Run: func(ctx context.Context) (int, error) {
			close(block)
			return 2, nil
		}},
	}

	done := make(chan []Outcome[int], 1)
	go func() { done <- Settle(context.Background(), discardLogger(), queries) }()

	select {
	case outcomes := <-done:
		assert.Equal(t, 1, outcomes[0].ValueOr(0))
		assert.Equal(t, 2, outcomes[1].ValueOr(0))
	case <-time.After(2 * time.Second):
		t.Fatal("queries ran sequentially and deadlocked")
	}
}
