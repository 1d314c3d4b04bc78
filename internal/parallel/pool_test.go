package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]bool)

	work := make([]func(), 100)
	for i := range work {
		work[i] = func() {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
		}
	}
	pool.ExecuteAll(work)

	if len(seen) != len(work) {
		t.Errorf("executed %d tasks, want %d", len(seen), len(work))
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_NilTask(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var ran atomic.Bool
	pool.ExecuteAll([]func(){nil, func() { ran.Store(true) }})
	if !ran.Load() {
		t.Error("non-nil task next to a nil task was not executed")
	}
}

func TestWorkerPool_ExecuteAfterCloseRunsInline(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()

	var counter atomic.Int64
	work := make([]func(), 10)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 10 {
		t.Errorf("counter = %d after ExecuteAll on closed pool, want 10", counter.Load())
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const callers, perCaller = 10, 50
	var counter atomic.Int64
	var wg sync.WaitGroup
	for range callers {
		wg.Go(func() {
			work := make([]func(), perCaller)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(work)
		})
	}
	wg.Wait()

	if counter.Load() != callers*perCaller {
		t.Errorf("counter = %d, want %d", counter.Load(), callers*perCaller)
	}
}

func TestWorkerPool_UnevenTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var slow, fast atomic.Int64
	work := make([]func(), 40)
	for i := range work {
		if i%10 == 0 {
			work[i] = func() {
				time.Sleep(5 * time.Millisecond)
				slow.Add(1)
			}
		} else {
			work[i] = func() { fast.Add(1) }
		}
	}
	pool.ExecuteAll(work)

	if slow.Load() != 4 || fast.Load() != 36 {
		t.Errorf("slow=%d fast=%d, want 4 and 36", slow.Load(), fast.Load())
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for range 5 {
		pool := NewWorkerPool(4)
		work := make([]func(), 100)
		for j := range work {
			work[j] = func() {}
		}
		pool.ExecuteAll(work)
		pool.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	if final := runtime.NumGoroutine(); final > baseline+2 {
		t.Errorf("goroutines: baseline=%d final=%d", baseline, final)
	}
}

func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	work := make([]func(), 8)
	for i := range work {
		work[i] = func() {}
	}
	for b.Loop() {
		pool.ExecuteAll(work)
	}
}
