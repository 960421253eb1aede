package parallel

import (
	"fmt"
	"sync"

	"github.com/dd0wney/cluso-defectsim/pkg/logging"
)

// WorkerPool runs independent tasks across a fixed set of goroutines. It
// backs batch defect generation, where each task owns a disjoint slice of
// the trial range and its own random source, so tasks never share state.
type WorkerPool struct {
	workers   int
	taskQueue chan func() error
	wg        sync.WaitGroup
	once      sync.Once
	logger    logging.Logger

	mu     sync.RWMutex // Protects taskQueue from concurrent close during send
	closed bool         // Protected by mu

	errMu sync.Mutex
	errs  []error
}

// NewWorkerPool creates a pool with the given number of workers. Counts
// below 1 are clamped to 1.
func NewWorkerPool(workers int, logger logging.Logger) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func() error, workers*2),
		logger:    logger,
	}
	pool.start()
	return pool
}

func (wp *WorkerPool) start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// worker processes tasks from the queue, recovering from panics so one
// bad task cannot take the whole batch down.
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if err := wp.runTask(task); err != nil {
			wp.errMu.Lock()
			wp.errs = append(wp.errs, err)
			wp.errMu.Unlock()
		}
	}
}

func (wp *WorkerPool) runTask(task func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			wp.logger.Error("worker task panicked", logging.Any("panic", r))
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task()
}

// Submit adds a task to the pool. Returns false if the pool is closed.
func (wp *WorkerPool) Submit(task func() error) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}

	// Safe to send because we hold the lock and the pool is not closed
	wp.taskQueue <- task
	return true
}

// Wait closes the queue, waits for all submitted tasks to finish, and
// returns the first task error, if any.
func (wp *WorkerPool) Wait() error {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()

	wp.errMu.Lock()
	defer wp.errMu.Unlock()
	if len(wp.errs) > 0 {
		return wp.errs[0]
	}
	return nil
}

// Run is a convenience that submits every task and waits for completion.
func Run(workers int, logger logging.Logger, tasks []func() error) error {
	pool := NewWorkerPool(workers, logger)
	for _, task := range tasks {
		pool.Submit(task)
	}
	return pool.Wait()
}
