package core

// ReadyQueue is a FIFO of process indices waiting for the cpu.
type ReadyQueue struct {
	queue []int
}

// Enqueue adds a process to the back of the queue.
func (q *ReadyQueue) Enqueue(index int) {
	q.queue = append(q.queue, index)
}

// Dequeue removes the process at the front of the queue.
// ok is false when the queue is empty.
func (q *ReadyQueue) Dequeue() (index int, ok bool) {
	if len(q.queue) == 0 {
		return -1, false
	}
	index = q.queue[0]
	q.queue = q.queue[1:]
	return index, true
}

func (q *ReadyQueue) Len() int {
	return len(q.queue)
}
