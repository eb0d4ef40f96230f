package dispatcher

import "elevbank/src/types"

// requestQueue is a FIFO ring buffer of pending requests. It grows only when full,
// so pop from the front is O(1).
type requestQueue struct {
	buf  []types.Request
	head int
	size int
}

func (q *requestQueue) Len() int { return q.size }

func (q *requestQueue) push(req types.Request) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = req
	q.size++
}

func (q *requestQueue) pop() (types.Request, bool) {
	if q.size == 0 {
		return types.Request{}, false
	}
	req := q.buf[q.head]
	q.buf[q.head] = types.Request{}
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return req, true
}

// popN dequeues up to n requests from the front, fewer if the queue is shorter.
func (q *requestQueue) popN(n int) []types.Request {
	n = min(n, q.size)
	if n <= 0 {
		return nil
	}
	batch := make([]types.Request, 0, n)
	for i := 0; i < n; i++ {
		req, _ := q.pop()
		batch = append(batch, req)
	}
	return batch
}

func (q *requestQueue) clear() {
	q.buf = nil
	q.head = 0
	q.size = 0
}

// items returns the queued requests in arrival order.
func (q *requestQueue) items() []types.Request {
	out := make([]types.Request, q.size)
	for i := range out {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}

func (q *requestQueue) grow() {
	buf := make([]types.Request, max(2*len(q.buf), 4))
	n := copy(buf, q.buf[q.head:])
	copy(buf[n:], q.buf[:q.head])
	q.buf = buf
	q.head = 0
}
