package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestOrdered_ConsumesInIndexOrder(t *testing.T) {
	t.Parallel()

	var got []int
	err := Ordered(context.Background(), 6, 3,
		func(_ context.Context, i int) (int, error) {
			// later indexes finish first inside a window
			time.Sleep(time.Duration(6-i) * time.Millisecond)
			return i * 10, nil
		},
		func(i int, v int, err error) bool {
			if err != nil {
				t.Errorf("unexpected error for %d: %v", i, err)
			}
			got = append(got, v)
			return true
		},
	)
	if err != nil {
		t.Fatalf("ordered fan-out: %v", err)
	}

	want := []int{0, 10, 20, 30, 40, 50}
	if len(got) != len(want) {
		t.Fatalf("unexpected result count: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order at %d: got=%v want=%v", i, got, want)
		}
	}
}

func TestOrdered_WidthOneStopsWithoutExtraCalls(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	consumed := 0
	err := Ordered(context.Background(), 10, 1,
		func(_ context.Context, i int) (int, error) {
			calls.Add(1)
			return i, nil
		},
		func(i int, _ int, _ error) bool {
			consumed++
			return i < 2
		},
	)
	if err != nil {
		t.Fatalf("ordered fan-out: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 task calls, got %d", got)
	}
	if consumed != 3 {
		t.Fatalf("expected 3 consumed results, got %d", consumed)
	}
}

func TestOrdered_PanicBecomesUnitError(t *testing.T) {
	t.Parallel()

	var failed []int
	err := Ordered(context.Background(), 3, 2,
		func(_ context.Context, i int) (string, error) {
			switch i {
			case 1:
				panic("squad decode exploded")
			case 2:
				return "", errors.New("upstream 500")
			}
			return "ok", nil
		},
		func(i int, _ string, err error) bool {
			if err != nil {
				failed = append(failed, i)
			}
			return true
		},
	)
	if err != nil {
		t.Fatalf("ordered fan-out: %v", err)
	}
	if len(failed) != 2 || failed[0] != 1 || failed[1] != 2 {
		t.Fatalf("unexpected failed units: %v", failed)
	}
}

func TestOrdered_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Ordered(ctx, 2, 1,
		func(context.Context, int) (int, error) { return 0, nil },
		func(int, int, error) bool { return true },
	)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
