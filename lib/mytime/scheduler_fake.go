package mytime

import (
	"sort"
	"sync"
	"time"
)

// FakeScheduler is a manually advanced clock. Callbacks run synchronously from Advance.
type FakeScheduler struct {
	sync.Mutex
	now     time.Duration
	seq     int
	pending []*fakeTimer
}

type fakeTimer struct {
	scheduler *FakeScheduler
	seq       int
	dueAt     time.Duration
	f         func()
	stopped   bool
	fired     bool
}

func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) Stopper {
	s.Lock()
	defer s.Unlock()

	s.seq++
	t := &fakeTimer{
		scheduler: s,
		seq:       s.seq,
		dueAt:     s.now + d,
		f:         f,
	}
	s.pending = append(s.pending, t)

	return t
}

// Advance moves the clock forward and runs every callback that became due, oldest first.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.Lock()
	s.now += d
	due := []*fakeTimer{}
	remaining := []*fakeTimer{}
	for _, t := range s.pending {
		if t.stopped {
			continue
		}
		if t.dueAt <= s.now {
			t.fired = true
			due = append(due, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	s.pending = remaining
	s.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].dueAt == due[j].dueAt {
			return due[i].seq < due[j].seq
		}
		return due[i].dueAt < due[j].dueAt
	})
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of callbacks that are scheduled and not yet stopped or fired.
func (s *FakeScheduler) Pending() int {
	s.Lock()
	defer s.Unlock()

	count := 0
	for _, t := range s.pending {
		if !t.stopped {
			count++
		}
	}
	return count
}

func (t *fakeTimer) Stop() bool {
	t.scheduler.Lock()
	defer t.scheduler.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
