package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeTB records failures without failing the enclosing test
type fakeTB struct {
	testing.TB
	failed bool
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Errorf(string, ...any) { f.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_WaitsForSlowExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(50 * time.Millisecond)
	}()

	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(1)
}

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	fake := &fakeTB{}
	checker := NewGoroutineChecker(fake)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(0)
	assert.True(t, fake.failed)
}
