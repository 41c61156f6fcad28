package cache

import (
	"errors"
	"testing"
	"time"
)

func testStore(start time.Time) (*Store, *time.Time) {
	now := start
	s := NewStore()
	s.Now = func() time.Time { return now }
	return s, &now
}

func TestGetOrComputeHitsWithinTTL(t *testing.T) {
	s, now := testStore(time.Unix(1000, 0))
	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	v, err := s.GetOrCompute("idx", 20*time.Second, producer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(int) != 1 || calls != 1 {
		t.Fatalf("expected first call to produce, got value %v after %d calls", v, calls)
	}

	*now = now.Add(19 * time.Second)
	v, _ = s.GetOrCompute("idx", 20*time.Second, producer)
	if v.(int) != 1 || calls != 1 {
		t.Errorf("expected cached value within TTL, got %v after %d calls", v, calls)
	}

	*now = now.Add(2 * time.Second)
	v, _ = s.GetOrCompute("idx", 20*time.Second, producer)
	if v.(int) != 2 || calls != 2 {
		t.Errorf("expected recompute after expiry, got %v after %d calls", v, calls)
	}
}

func TestGetOrComputeKeysAreIndependent(t *testing.T) {
	s, _ := testStore(time.Unix(1000, 0))
	a, _ := s.GetOrCompute("a", time.Minute, func() (any, error) { return "a", nil })
	b, _ := s.GetOrCompute("b", time.Minute, func() (any, error) { return "b", nil })
	if a.(string) != "a" || b.(string) != "b" {
		t.Errorf("keys should not share entries: got %v and %v", a, b)
	}
}

func TestGetOrComputeErrorNotCached(t *testing.T) {
	s, _ := testStore(time.Unix(1000, 0))
	boom := errors.New("boom")
	calls := 0
	if _, err := s.GetOrCompute("k", time.Minute, func() (any, error) {
		calls++
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected producer error, got %v", err)
	}
	v, err := s.GetOrCompute("k", time.Minute, func() (any, error) {
		calls++
		return "ok", nil
	})
	if err != nil || v.(string) != "ok" || calls != 2 {
		t.Errorf("error should not have been cached: value %v, err %v, %d calls", v, err, calls)
	}
}

func TestClear(t *testing.T) {
	s, _ := testStore(time.Unix(1000, 0))
	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}
	s.GetOrCompute("idx", time.Minute, producer)
	s.Clear()
	v, _ := s.GetOrCompute("idx", time.Minute, producer)
	if v.(int) != 2 || calls != 2 {
		t.Errorf("expected recompute after Clear, got %v after %d calls", v, calls)
	}
}
