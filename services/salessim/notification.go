package salessim

import (
	"context"
	"sync"

	"github.com/MarcGrol/salessimulator/lib/mylog"
)

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

type Action struct {
	URL   string
	Label string
}

// Notification is a user facing message. A {0} placeholder in Message refers to the first action.
type Notification struct {
	Title   string
	Message string
	Variant Variant
	Actions []Action `json:",omitempty"`
}

// NotificationSink shows notifications, fire and forget.
type NotificationSink interface {
	Show(c context.Context, n Notification)
}

// NotificationLog keeps the most recent notifications of a session until they are drained.
type NotificationLog struct {
	sync.Mutex
	limit   int
	entries []Notification
}

func NewNotificationLog(limit int) *NotificationLog {
	if limit < 1 {
		limit = 1
	}
	return &NotificationLog{
		limit: limit,
	}
}

func (l *NotificationLog) Show(c context.Context, n Notification) {
	l.Lock()
	defer l.Unlock()

	l.entries = append(l.entries, n)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

func (l *NotificationLog) Peek() []Notification {
	l.Lock()
	defer l.Unlock()

	result := make([]Notification, len(l.entries))
	copy(result, l.entries)
	return result
}

// Drain returns the pending notifications and forgets them.
func (l *NotificationLog) Drain() []Notification {
	l.Lock()
	defer l.Unlock()

	result := l.entries
	if result == nil {
		result = []Notification{}
	}
	l.entries = nil
	return result
}

type loggingSink struct {
	traceLabel string
	logger     mylog.Logger
}

func NewLoggingSink(traceLabel string) NotificationSink {
	return &loggingSink{
		traceLabel: traceLabel,
		logger:     mylog.New("notification"),
	}
}

func (s *loggingSink) Show(c context.Context, n Notification) {
	severity := mylog.SeverityInfo
	switch n.Variant {
	case VariantError:
		severity = mylog.SeverityError
	case VariantWarning:
		severity = mylog.SeverityWarn
	}
	s.logger.Log(c, s.traceLabel, severity, "%s: %s (%d actions)", n.Title, n.Message, len(n.Actions))
}

type fanoutSink []NotificationSink

func NewFanoutSink(sinks ...NotificationSink) NotificationSink {
	return fanoutSink(sinks)
}

func (f fanoutSink) Show(c context.Context, n Notification) {
	for _, s := range f {
		s.Show(c, n)
	}
}
