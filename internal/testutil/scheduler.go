package testutil

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler runs deferred callbacks only when the test advances time.
type ManualScheduler struct {
	mu    sync.Mutex
	clock *FakeClock
	tasks []*manualTask
	seq   int
}

type manualTask struct {
	id      int
	due     time.Time
	every   time.Duration
	fn      func()
	stopped bool
}

// NewManualScheduler builds a scheduler driven by clock.
func NewManualScheduler(clock *FakeClock) *ManualScheduler {
	return &ManualScheduler{clock: clock}
}

// AfterFunc registers fn to run once d has elapsed.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() {
	return s.add(d, 0, fn)
}

// Every registers fn to run each time interval elapses.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

// Pending counts one-shot callbacks that have not run or been stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, task := range s.tasks {
		if !task.stopped && task.every == 0 {
			count++
		}
	}
	return count
}

// Repeating counts live repeating callbacks.
func (s *ManualScheduler) Repeating() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, task := range s.tasks {
		if !task.stopped && task.every > 0 {
			count++
		}
	}
	return count
}

// Advance moves the clock forward, running due callbacks in time order.
//
// Callbacks run without the scheduler lock held so they may schedule more work.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.clock.Now().Add(d)
	for {
		task, fireAt := s.nextDue(target)
		if task == nil {
			break
		}
		if wait := fireAt.Sub(s.clock.Now()); wait > 0 {
			s.clock.Advance(wait)
		}
		task.fn()
	}
	if wait := target.Sub(s.clock.Now()); wait > 0 {
		s.clock.Advance(wait)
	}
}

func (s *ManualScheduler) add(d, every time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	task := &manualTask{
		id:    s.seq,
		due:   s.clock.Now().Add(d),
		every: every,
		fn:    fn,
	}
	s.tasks = append(s.tasks, task)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		task.stopped = true
	}
}

// nextDue pops the earliest task due at or before target along with its fire time.
// Repeating tasks are rescheduled one interval later.
func (s *ManualScheduler) nextDue(target time.Time) (*manualTask, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.stopped {
			live = append(live, task)
		}
	}
	s.tasks = live
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due.Equal(s.tasks[j].due) {
			return s.tasks[i].id < s.tasks[j].id
		}
		return s.tasks[i].due.Before(s.tasks[j].due)
	})
	if len(s.tasks) == 0 || s.tasks[0].due.After(target) {
		return nil, time.Time{}
	}
	task := s.tasks[0]
	fireAt := task.due
	if task.every > 0 {
		task.due = task.due.Add(task.every)
	} else {
		task.stopped = true
	}
	return task, fireAt
}
