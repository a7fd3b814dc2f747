package worker

import (
	"context"
	stderrors "errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessplus-go/internal/position"
)

func positionLength(item Item) int {
	return len(item.Position)
}

func submitAll[T any](t *testing.T, pool *Pool[T], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := pool.Submit(context.Background(), Item{Index: i, Position: position.InitialPosition}); err != nil {
			t.Errorf("Submit(%d) error: %v", i, err)
		}
	}
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(func(item Item) int {
		atomic.AddInt32(&processed, 1)
		return positionLength(item)
	}, WithWorkers(4))
	pool.Start()

	const numItems = 10
	go func() {
		submitAll(t, pool, numItems)
		pool.Close()
	}()

	count := 0
	for r := range pool.Results() {
		count++
		if !r.Done || r.Value != len(position.InitialPosition) {
			t.Errorf("result %d = %+v", r.Index, r)
		}
	}
	if count != numItems {
		t.Errorf("results = %d; want %d", count, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolStop(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	pool := NewPool(func(item Item) string {
		if item.Index == 0 {
			close(started)
			<-release
		}
		return item.Position
	})
	pool.Start()

	submitAll(t, pool, 1)
	<-started
	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("IsStopped() = false after Stop()")
	}
	for i := 1; i < 4; i++ {
		if err := pool.Submit(context.Background(), Item{Index: i, Position: position.InitialPosition}); err != nil {
			t.Fatalf("Submit(%d) error: %v", i, err)
		}
	}
	close(release)
	go pool.Close()

	results := Ordered(pool.Results(), 4)
	if !results[0].Done || results[0].Value != position.InitialPosition {
		t.Errorf("running item = %+v, want it finished", results[0])
	}
	for _, r := range results[1:] {
		if r.Done || r.Value != "" {
			t.Errorf("item %d ran after Stop(): %+v", r.Index, r)
		}
	}
}

func TestPoolSubmitCanceled(t *testing.T) {
	pool := NewPool(positionLength, WithBufferSize(1))

	if err := pool.Submit(context.Background(), Item{Index: 0}); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.Submit(ctx, Item{Index: 1})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Submit() on a full queue error = %v, want context.Canceled", err)
	}

	pool.Start()
	go pool.Close()
	if r := Ordered(pool.Results(), 1)[0]; !r.Done {
		t.Errorf("queued item = %+v, want it finished", r)
	}
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers and buffer", []Option{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid values ignored", []Option{WithWorkers(0), WithBufferSize(-5)}, 1, 10},
		{"negative workers", []Option{WithWorkers(-1)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(positionLength, tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if got := cap(pool.items); got != tt.wantBuffer {
				t.Errorf("buffer = %d; want %d", got, tt.wantBuffer)
			}
		})
	}
}

func TestOrdered(t *testing.T) {
	pool := NewPool(func(item Item) string {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return item.Position
	}, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			_ = pool.Submit(context.Background(), Item{Index: i, Position: strconv.Itoa(i)})
		}
		pool.Close()
	}()

	results := Ordered(pool.Results(), numItems)
	for i, r := range results {
		if r.Index != i || r.Value != strconv.Itoa(i) {
			t.Errorf("results[%d] = {Index: %d, Value: %q}", i, r.Index, r.Value)
		}
	}
}

func TestOrderedDropsOutOfRange(t *testing.T) {
	results := make(chan Result[int], 3)
	results <- Result[int]{Index: -1, Value: 1, Done: true}
	results <- Result[int]{Index: 0, Value: 2, Done: true}
	results <- Result[int]{Index: 5, Value: 3, Done: true}
	close(results)

	got := Ordered(results, 1)
	if len(got) != 1 || got[0].Value != 2 {
		t.Errorf("Ordered() = %+v, want only index 0", got)
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(func(item Item) int {
		atomic.AddInt32(&counter, 1)
		return item.Index
	}, WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		submitAll(t, pool, numItems)
		pool.Close()
	}()

	for range pool.Results() {
	}

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}
