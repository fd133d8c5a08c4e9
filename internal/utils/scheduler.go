package utils

import (
	"sync"
	"time"
)

// Scheduler runs functions after a delay as cancellable tasks.
// Every scheduled task is tracked so that Close can stop anything
// still pending, preventing callbacks from firing after the owning
// component has been torn down.
type Scheduler struct {
	mu     sync.Mutex
	tasks  map[*ScheduledTask]struct{}
	closed bool
}

// ScheduledTask is a single pending callback created by Scheduler.Schedule.
type ScheduledTask struct {
	timer     *time.Timer
	scheduler *Scheduler
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make(map[*ScheduledTask]struct{}),
	}
}

// Schedule runs fn after the given delay.
// The returned task can be cancelled before it fires; a task that has
// already fired or been cancelled is inert.
// Scheduling on a closed scheduler returns nil and fn never runs.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) *ScheduledTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	task := &ScheduledTask{scheduler: s}
	task.timer = time.AfterFunc(delay, func() {
		s.forget(task)
		fn()
	})

	s.tasks[task] = struct{}{}

	return task
}

// Cancel stops the task if it has not fired yet.
// It reports whether the callback was prevented from running.
func (t *ScheduledTask) Cancel() bool {
	if t == nil {
		return false
	}

	t.scheduler.forget(t)

	return t.timer.Stop()
}

// Close cancels all pending tasks and rejects future scheduling.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	for task := range s.tasks {
		task.timer.Stop()
	}

	s.tasks = make(map[*ScheduledTask]struct{})
}

// PendingCount returns the number of tasks that have not fired or been cancelled.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

func (s *Scheduler) forget(task *ScheduledTask) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks, task)
}
