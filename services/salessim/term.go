package salessim

import "sync"

// TermSubject holds the active search term and notifies observers when it changes.
type TermSubject struct {
	sync.Mutex
	value     string
	observers []func(term string)
}

func NewTermSubject(initial string) *TermSubject {
	return &TermSubject{
		value: initial,
	}
}

func (s *TermSubject) Subscribe(observer func(term string)) {
	s.Lock()
	defer s.Unlock()

	s.observers = append(s.observers, observer)
}

func (s *TermSubject) Get() string {
	s.Lock()
	defer s.Unlock()

	return s.value
}

// Set stores term and reports whether it differed. Observers run outside the lock, in subscription order.
func (s *TermSubject) Set(term string) bool {
	s.Lock()
	if s.value == term {
		s.Unlock()
		return false
	}
	s.value = term
	observers := make([]func(term string), len(s.observers))
	copy(observers, s.observers)
	s.Unlock()

	for _, o := range observers {
		o(term)
	}
	return true
}
