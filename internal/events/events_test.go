package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_EmitOrderAndUnsubscribe(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got []string

	unsubA := bus.Subscribe(func(e Event) { got = append(got, "a:"+string(e.Kind)) })
	bus.Subscribe(func(e Event) { got = append(got, "b:"+string(e.Kind)) })

	bus.Emit(Event{Kind: KindGoalReached})
	unsubA()
	unsubA()
	bus.Emit(Event{Kind: KindCycleCompleted})

	assert.Equal(t, []string{
		"a:goal_reached",
		"b:goal_reached",
		"b:cycle_completed",
	}, got)
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder
	var sink Sink = &r

	sink.Emit(Event{Kind: KindAnswerCorrect})
	sink.Emit(Event{Kind: KindAnswerIncorrect})
	sink.Emit(Event{Kind: KindAnswerCorrect})

	assert.Equal(t, 2, r.Count(KindAnswerCorrect))
	assert.Equal(t, []Kind{KindAnswerCorrect, KindAnswerIncorrect, KindAnswerCorrect}, r.Kinds())

	r.Reset()
	assert.Empty(t, r.Events())

	Discard.Emit(Event{Kind: KindReminder})
}
