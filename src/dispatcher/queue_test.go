package dispatcher

import (
	"slices"
	"testing"

	"elevbank/src/types"
)

func req(start, end int) types.Request {
	return types.Request{StartFloor: start, EndFloor: end}
}

func TestQueueFIFO(t *testing.T) {
	var q requestQueue
	if _, ok := q.pop(); ok {
		t.Fatal("pop on empty queue succeeded")
	}
	for i := 0; i < 10; i++ {
		q.push(req(i, i+1))
	}
	if q.Len() != 10 {
		t.Fatalf("len = %d", q.Len())
	}
	for i := 0; i < 10; i++ {
		got, ok := q.pop()
		if !ok || got != req(i, i+1) {
			t.Fatalf("pop %d = %v, %v", i, got, ok)
		}
	}
	if q.Len() != 0 {
		t.Errorf("len = %d after draining", q.Len())
	}
}

func TestQueueGrowsAcrossWrap(t *testing.T) {
	var q requestQueue
	for i := 0; i < 4; i++ {
		q.push(req(i, 9))
	}
	q.pop()
	q.pop()
	// head is now mid-buffer; the next pushes wrap before the buffer grows
	for i := 4; i < 9; i++ {
		q.push(req(i, 9))
	}

	want := []types.Request{req(2, 9), req(3, 9), req(4, 9), req(5, 9), req(6, 9), req(7, 9), req(8, 9)}
	if got := q.items(); !slices.Equal(got, want) {
		t.Errorf("items = %v, want %v", got, want)
	}
}

func TestQueuePopN(t *testing.T) {
	var q requestQueue
	for i := 0; i < 5; i++ {
		q.push(req(0, i+1))
	}

	if got := q.popN(3); !slices.Equal(got, []types.Request{req(0, 1), req(0, 2), req(0, 3)}) {
		t.Errorf("popN(3) = %v", got)
	}
	if got := q.popN(10); !slices.Equal(got, []types.Request{req(0, 4), req(0, 5)}) {
		t.Errorf("popN(10) = %v", got)
	}
	if got := q.popN(3); got != nil {
		t.Errorf("popN on empty queue = %v", got)
	}
}

func TestQueueClear(t *testing.T) {
	var q requestQueue
	q.push(req(1, 2))
	q.push(req(3, 2))
	q.clear()
	if q.Len() != 0 || len(q.items()) != 0 {
		t.Errorf("queue not empty after clear: %v", q.items())
	}
	q.push(req(4, 5))
	if got := q.items(); !slices.Equal(got, []types.Request{req(4, 5)}) {
		t.Errorf("items after reuse = %v", got)
	}
}
