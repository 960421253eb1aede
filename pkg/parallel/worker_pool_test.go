package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/dd0wney/cluso-defectsim/pkg/logging"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4, logging.NewNopLogger())

	var done int64
	for i := 0; i < 100; i++ {
		ok := pool.Submit(func() error {
			atomic.AddInt64(&done, 1)
			return nil
		})
		if !ok {
			t.Fatalf("Submit %d rejected", i)
		}
	}

	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if done != 100 {
		t.Errorf("Expected 100 tasks to run, got %d", done)
	}
}

func TestWorkerPool_ReportsTaskError(t *testing.T) {
	pool := NewWorkerPool(2, logging.NewNopLogger())
	wantErr := errors.New("task failed")

	pool.Submit(func() error { return nil })
	pool.Submit(func() error { return wantErr })

	if err := pool.Wait(); !errors.Is(err, wantErr) {
		t.Errorf("Expected task error, got %v", err)
	}
}

func TestWorkerPool_RecoverFromPanic(t *testing.T) {
	pool := NewWorkerPool(2, logging.NewNopLogger())

	pool.Submit(func() error { panic("boom") })
	pool.Submit(func() error { return nil })

	err := pool.Wait()
	if err == nil {
		t.Error("Expected an error from the panicked task")
	}
}

func TestWorkerPool_SubmitAfterWait(t *testing.T) {
	pool := NewWorkerPool(1, logging.NewNopLogger())
	pool.Wait()

	if pool.Submit(func() error { return nil }) {
		t.Error("Submit should be rejected after Wait")
	}
}

func TestWorkerPool_ClampsWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0, nil)
	var ran int64
	pool.Submit(func() error {
		atomic.AddInt64(&ran, 1)
		return nil
	})
	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if ran != 1 {
		t.Error("Task did not run with clamped worker count")
	}
}

func TestRun_Convenience(t *testing.T) {
	var total int64
	tasks := make([]func() error, 10)
	for i := range tasks {
		tasks[i] = func() error {
			atomic.AddInt64(&total, 1)
			return nil
		}
	}
	if err := Run(3, logging.NewNopLogger(), tasks); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if total != 10 {
		t.Errorf("Expected 10 tasks to run, got %d", total)
	}
}
