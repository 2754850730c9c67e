package quiz

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Scheduler runs deferred and periodic callbacks. The returned func stops the callback.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func())
	Every(interval time.Duration, fn func()) (stop func())
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemScheduler schedules callbacks on runtime timers.
type SystemScheduler struct{}

// AfterFunc runs fn on its own goroutine after d.
func (SystemScheduler) AfterFunc(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// Every runs fn on a ticker goroutine until stopped.
func (SystemScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}
