// Package runtime interleaves network completions with the UI loop.
// It orchestrates the client without containing message rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"nym-chat/contract"
	"nym-chat/errors"
	"nym-chat/runtime/workers"
	"time"
)

// Continuation is the part of a task that runs on the loop, after its I/O is done.
type Continuation func()

// Post queues a continuation for the loop. It returns false once ctx is done.
type Post func(Continuation) bool

// Body does the blocking part of a task off the loop. It must not touch loop
// state: everything it learns goes back through post.
type Body func(ctx context.Context, post Post) error

// Scheduler is a cooperative scheduler. Blocking I/O runs on supervised
// goroutines; every continuation runs on whoever drives the loop, one at a
// time and in the order it became ready. Loop state therefore needs no lock.
type Scheduler struct {
	log        *slog.Logger
	supervisor *workers.Supervisor
	ready      chan Continuation
}

func NewScheduler(log *slog.Logger, supervisor *workers.Supervisor, bufferSize int) *Scheduler {
	return &Scheduler{
		log:        log,
		supervisor: supervisor,
		ready:      make(chan Continuation, bufferSize),
	}
}

// Go starts a task. onExit, if set, runs on the loop with the task's result.
func (s *Scheduler) Go(ctx context.Context, name string, body Body, onExit func(error)) {
	post := func(next Continuation) bool {
		select {
		case s.ready <- next:
			return true
		case <-ctx.Done():
			return false
		}
	}

	s.supervisor.Start(ctx, task{name: contract.WorkerName(name), run: func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
			}
			if onExit != nil {
				result := err
				post(func() { onExit(result) })
			}
		}()
		return body(ctx, post)
	}})
}

// TryPost queues a continuation from outside the loop without blocking.
func (s *Scheduler) TryPost(next Continuation) bool {
	select {
	case s.ready <- next:
		return true
	default:
		s.log.Warn("Loop queue full, dropping continuation")
		return false
	}
}

// RunOnce makes one non-blocking pass: it runs the continuations that are
// ready now and returns. Ones that become ready meanwhile wait for the next pass.
func (s *Scheduler) RunOnce() int {
	n := len(s.ready)
	for i := 0; i < n; i++ {
		(<-s.ready)()
	}
	return n
}

// Run drives the loop until ctx is done, waking up only when a continuation
// is ready.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case next := <-s.ready:
			next()
		}
	}
}

// Pump is the bounded-poll alternative to Run for hosts that own the thread.
// Every interval it hands a RunOnce pass to host, which is expected to run it
// on the UI thread. Latency is bounded by interval; idle CPU grows as it shrinks.
func (s *Scheduler) Pump(ctx context.Context, interval time.Duration, host func(func())) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			host(func() { s.RunOnce() })
		}
	}
}

// Wait blocks until every task has returned.
func (s *Scheduler) Wait() {
	s.supervisor.Wait()
}

type task struct {
	name contract.WorkerName
	run  func(ctx context.Context) error
}

func (t task) Run(ctx context.Context) error { return t.run(ctx) }

func (t task) GetName() contract.WorkerName { return t.name }
