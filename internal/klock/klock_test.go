package klock

import (
	"sync"
	"testing"
)

func TestSpinLockMutualExclusion(t *testing.T) {
	var l SpinLock
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10000; j++ {
				g := l.Lock()
				counter++
				g.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != 80000 {
		t.Fatalf("counter = %d, want 80000", counter)
	}
}

func TestYieldLockMutualExclusion(t *testing.T) {
	var l YieldLock
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50000; j++ {
				g := l.Lock()
				counter++
				g.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != 200000 {
		t.Fatalf("counter = %d, want 200000", counter)
	}
}

func TestYieldMutex(t *testing.T) {
	m := NewYieldMutex(0)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25000; j++ {
				g := m.Lock()
				*g.Value()++
				g.Release()
			}
		}()
	}
	wg.Wait()
	g := m.Lock()
	defer g.Release()
	if *g.Value() != 100000 {
		t.Fatalf("value = %d, want 100000", *g.Value())
	}
}
