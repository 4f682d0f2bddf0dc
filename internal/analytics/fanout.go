package analytics

import (
	"context"
	"log/slog"
	"sync"
)

// Outcome is the settled result of one fan-out query: either a value or the
// error that produced it. Consumers unwrap with ValueOr, supplying the
// documented per-query default, so a failed query degrades instead of
// propagating.
type Outcome[T any] struct {
	query string
	value T
	err   error
}

// OK settles an outcome with a value.
func OK[T any](query string, v T) Outcome[T] {
	return Outcome[T]{query: query, value: v}
}

// Fail settles an outcome with the error that caused it.
func Fail[T any](query string, err error) Outcome[T] {
	return Outcome[T]{query: query, err: err}
}

// Query returns the name of the query that produced this outcome.
func (o Outcome[T]) Query() string { return o.query }

// Failed reports whether the query settled with an error.
func (o Outcome[T]) Failed() bool { return o.err != nil }

// Err returns the failure cause, or nil.
func (o Outcome[T]) Err() error { return o.err }

// ValueOr returns the settled value, or def when the query failed.
func (o Outcome[T]) ValueOr(def T) T {
	if o.err != nil {
		return def
	}
	return o.value
}

// Pending is a dispatched query that has not been waited on yet.
type Pending[T any] struct {
	ch      chan Outcome[T]
	settled *Outcome[T]
}

// Dispatch starts run in its own goroutine and returns immediately. Failures
// are logged with the query name and settle as a failed outcome; they never
// affect any sibling query. Dispatch all queries of a batch before waiting
// on any of them so total wall time tracks the slowest query, not the sum.
func Dispatch[T any](ctx context.Context, log *slog.Logger, name string, run func(context.Context) (T, error)) *Pending[T] {
	p := &Pending[T]{ch: make(chan Outcome[T], 1)}
	go func() {
		v, err := run(ctx)
		if err != nil {
			log.ErrorContext(ctx, "report query failed",
				slog.String("query", name),
				slog.String("error", err.Error()),
			)
			p.ch <- Fail[T](name, err)
			return
		}
		p.ch <- OK(name, v)
	}()
	return p
}

// Wait blocks until the query settles and returns its outcome. Subsequent
// calls return the same outcome without blocking.
func (p *Pending[T]) Wait() Outcome[T] {
	if p.settled == nil {
		o := <-p.ch
		p.settled = &o
	}
	return *p.settled
}

// Query names a unit of work dispatched by Settle.
type Query[T any] struct {
	Name string
	Run  func(context.Context) (T, error)
}

// Settle executes all queries concurrently and returns one outcome per
// query, in input order. A failure in query i never prevents completion or
// alters the outcome of any other query.
func Settle[T any](ctx context.Context, log *slog.Logger, queries []Query[T]) []Outcome[T] {
	outcomes := make([]Outcome[T], len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := q.Run(ctx)
			if err != nil {
				log.ErrorContext(ctx, "report query failed",
					slog.String("query", q.Name),
					slog.String("error", err.Error()),
				)
				outcomes[i] = Fail[T](q.Name, err)
				return
			}
			outcomes[i] = OK(q.Name, v)
		}()
	}
	wg.Wait()

	return outcomes
}
