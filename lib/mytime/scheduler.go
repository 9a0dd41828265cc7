package mytime

import "time"

// Stopper cancels a scheduled callback. Stop reports whether the callback was prevented from running.
type Stopper interface {
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

type RealScheduler struct{}

func (s RealScheduler) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}
