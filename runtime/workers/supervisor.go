package workers

import (
	"context"
	"fmt"
	"log/slog"
	"nym-chat/contract"
	"nym-chat/errors"
	"sync"
)

// Named lets a worker report a name other than its type name.
type Named interface {
	GetName() contract.WorkerName
}

// Supervisor Own a context and a cancel function
// Run each worker in a goroutine
// Check panics and errors
// Never restart: the daemon connection is not re-established
// Shutdown properly if parent context is canceled
// Wait for the end of all goroutines via WaitGroup
type Supervisor struct {
	mu      sync.Mutex
	cancel  context.CancelFunc // To stop the context
	stopped bool
	wg      *sync.WaitGroup // Wait for the end of goroutines
	log     *slog.Logger
	workers []contract.Worker
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log}
}

// Run starts every added worker under a context tied to the parent ctx and
// blocks until they all returned.
//
//	// If the parent (main) cancels, we cancel.
//	// If WE call s.Stop(), only our children cancel.
func (s *Supervisor) Run(ctx context.Context) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

// Add registers workers for the next Run.
func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs a worker under supervision in a dedicated goroutine.
// A panic is recovered and reported as ErrWorkerPanic; a failure in one
// worker must not stop the supervisor itself. Workers run once.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := nameOf(worker)

	go func() {
		defer s.wg.Done()

		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
				}
			}()
			return worker.Run(ctx)
		}()

		switch {
		case err == nil:
			s.log.Debug(fmt.Sprintf("Worker finished : %s", workerName))
		case ctx.Err() != nil:
			s.log.Debug("Worker stopped (context canceled)", "name", workerName)
		default:
			s.log.Warn("Worker failed", "name", workerName, "error", err)
		}
	}()
}

// Stop cancels the workers started by Run. A Run that has not begun yet
// returns right away.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Wait blocks until every started worker has returned.
func (s *Supervisor) Wait() {
	s.wg.Wait()
}

func nameOf(worker contract.Worker) string {
	if named, ok := worker.(Named); ok {
		return string(named.GetName())
	}
	return contract.GetWorkerName(worker)
}
