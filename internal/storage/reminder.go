package storage

import (
	"sync"
	"time"
)

// ReminderLog remembers which calendar days already got a reminder so a
// re-run job does not nag twice.
type ReminderLog struct {
	mu   sync.RWMutex
	sent map[string]time.Time
}

func NewReminderLog() *ReminderLog {
	return &ReminderLog{
		sent: make(map[string]time.Time),
	}
}

func dayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.DateOnly)
}

// SentOn reports whether a reminder was recorded on the same day as t.
func (l *ReminderLog) SentOn(t time.Time, loc *time.Location) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.sent[dayKey(t, loc)]
	return ok
}

// MarkSent records a reminder at t. It returns false when one was already
// recorded that day.
func (l *ReminderLog) MarkSent(t time.Time, loc *time.Location) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := dayKey(t, loc)
	if _, ok := l.sent[key]; ok {
		return false
	}
	l.sent[key] = t
	return true
}

// Reset forgets every recorded reminder.
func (l *ReminderLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sent = make(map[string]time.Time)
}
