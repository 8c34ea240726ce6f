// Package scheduler batches component render work.
//
// The model is a microtask queue: mutations schedule their instance, and a
// flush at the next checkpoint renders every scheduled instance exactly once,
// in first-schedule order. Single-threaded hosts flush synchronously at
// defined checkpoints; there are no priority levels.
package scheduler

import "sync"

// Task is one schedulable unit, normally a component instance.
type Task interface {
	// RenderPass performs one render. Implementations drop the pass silently
	// when the instance is not in a renderable state.
	RenderPass() error
}

// Scheduler coalesces render scheduling per task per turn.
type Scheduler struct {
	queue  []Task
	queued map[Task]bool
	mu     sync.Mutex

	// OnNeedsFlush is called when a task is scheduled into an empty queue,
	// signalling the host that a flush checkpoint should be arranged.
	OnNeedsFlush func()
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{queued: make(map[Task]bool)}
}

// Schedule enqueues the task for the next flush. Scheduling the same task
// any number of times before the flush results in exactly one render.
func (s *Scheduler) Schedule(task Task) {
	if task == nil {
		return
	}
	first := func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.queued[task] {
			return false
		}
		if s.queued == nil {
			s.queued = make(map[Task]bool)
		}
		wasEmpty := len(s.queue) == 0
		s.queued[task] = true
		s.queue = append(s.queue, task)
		return wasEmpty
	}()

	if first && s.OnNeedsFlush != nil {
		s.OnNeedsFlush()
	}
}

// Pending returns the number of tasks awaiting the next flush.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Flush renders every scheduled task in first-schedule order, draining any
// tasks scheduled during the flush as well. The first render failure is
// returned to the caller; tasks not yet processed stay queued for the next
// flush, and the failing task is not retried.
func (s *Scheduler) Flush() error {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return nil
		}
		batch := s.queue
		s.queue = nil
		clear(s.queued)
		s.mu.Unlock()

		for i, task := range batch {
			if err := task.RenderPass(); err != nil {
				s.requeue(batch[i+1:])
				return err
			}
		}
	}
}

// requeue puts unprocessed tasks back at the front of the queue. It fires
// OnNeedsFlush when the queue goes from empty to non-empty, so a host driving
// flushes purely from the signal still picks up the remainder.
func (s *Scheduler) requeue(rest []Task) {
	if len(rest) == 0 {
		return
	}
	s.mu.Lock()
	wasEmpty := len(s.queue) == 0
	merged := make([]Task, 0, len(rest)+len(s.queue))
	for _, task := range rest {
		if !s.queued[task] {
			s.queued[task] = true
			merged = append(merged, task)
		}
	}
	s.queue = append(merged, s.queue...)
	notify := wasEmpty && len(s.queue) > 0 && s.OnNeedsFlush != nil
	s.mu.Unlock()

	if notify {
		s.OnNeedsFlush()
	}
}
