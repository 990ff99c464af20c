// Package events carries the learning engine's side-effect notifications
// (sounds, haptics, banners) to whoever renders them.
package events

import (
	"sync"

	"github.com/aliskhannn/wordly/internal/domain/entities"
)

// Kind names an event.
type Kind string

const (
	KindLevelUp         Kind = "level_up"
	KindGoalReached     Kind = "goal_reached"
	KindCycleCompleted  Kind = "cycle_completed"
	KindAnswerCorrect   Kind = "answer_correct"
	KindAnswerIncorrect Kind = "answer_incorrect"
	KindQuizPassed      Kind = "quiz_passed"
	KindQuizCompleted   Kind = "quiz_completed"
	KindDayRolledOver   Kind = "day_rolled_over"
	KindReminder        Kind = "reminder"
)

// Event is a single notification.
type Event struct {
	Kind  Kind                  // what happened
	Word  *entities.Word        // word involved, for level ups and answers (nullable)
	Level entities.MasteryLevel // new mastery level, for level ups
}

// Sink receives events.
type Sink interface {
	Emit(e Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(e Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Bus fans events out to subscribers synchronously, in subscription order.
type Bus struct {
	mu        sync.RWMutex
	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func(Event)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers e to every current subscriber.
func (b *Bus) Emit(e Event) {
	b.mu.RLock()
	listeners := make([]listener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, l := range listeners {
		l.fn(e)
	}
}

// Recorder collects events in memory. Useful in tests and for batching output.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
