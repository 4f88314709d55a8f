// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](0)
	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache returned ok")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %v, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if !c.Delete("a") || c.Delete("a") {
		t.Error("Delete should succeed once")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}
	// Touch 0 so 1 becomes the oldest.
	c.Get(0)
	c.Set(4, 4)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 after eviction", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used key 0 was evicted")
	}
	if _, ok := c.Get(4); !ok {
		t.Error("new key 4 was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest key 1 survived eviction")
	}
}

func TestCacheGetOrLoad(t *testing.T) {
	c := New[string, string](0)
	calls := 0
	load := func() (string, error) {
		calls++
		return "v", nil
	}
	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != "v" {
			t.Fatalf("GetOrLoad = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 {
		t.Errorf("stats = %+v, want 2 hits 1 miss", st)
	}
}

func TestCacheGetOrLoadErrorNotCached(t *testing.T) {
	c := New[string, int](0)
	boom := errors.New("boom")
	if _, err := c.GetOrLoad("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed load was cached")
	}
	v, err := c.GetOrLoad("k", func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("retry = %v, %v; want 7", v, err)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				k := (g*100 + i) % 32
				_, _ = c.GetOrLoad(k, func() (int, error) { return k, nil })
				c.Get(k)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds soft limit", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, int](0)
	c.Set(1, 1)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
}

func TestCacheLoadDoesNotBlockOtherKeys(t *testing.T) {
	c := New[string, int](0)
	started := make(chan struct{})
	release := make(chan struct{})
	slowDone := make(chan error, 1)
	go func() {
		_, err := c.GetOrLoad("slow", func() (int, error) {
			close(started)
			<-release
			return 1, nil
		})
		slowDone <- err
	}()
	<-started

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Get("slow")
		c.Len()
		if v, err := c.GetOrLoad("fast", func() (int, error) { return 2, nil }); err != nil || v != 2 {
			t.Errorf("GetOrLoad(fast) = %v, %v", v, err)
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Get and GetOrLoad of another key waited on an in-flight load")
	}

	close(release)
	if err := <-slowDone; err != nil {
		t.Fatalf("slow load: %v", err)
	}
	if v, ok := c.Get("slow"); !ok || v != 1 {
		t.Errorf("Get(slow) = %v, %v after load", v, ok)
	}
}

func TestCacheConcurrentLoadsShared(t *testing.T) {
	c := New[string, int](0)
	var calls atomic.Int32
	release := make(chan struct{})
	load := func() (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := c.GetOrLoad("k", load); err != nil || v != 7 {
				t.Errorf("GetOrLoad = %v, %v", v, err)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("load called %d times for one key, want 1", got)
	}
}

func TestFlightKeyDistinct(t *testing.T) {
	type key struct {
		name string
		w    float64
	}
	a := flightKey(key{"a", 200})
	b := flightKey(key{"a", 200.5})
	if a == b {
		t.Errorf("flightKey collided: %s", a)
	}
	if flightKey("1") == flightKey(1) {
		t.Error("string and int keys share a flight key")
	}
}
