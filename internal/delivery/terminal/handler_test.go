package terminal

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
	"github.com/aliskhannn/wordly/internal/repository"
	"github.com/aliskhannn/wordly/internal/storage"
	"github.com/aliskhannn/wordly/internal/usecase"
)

func newLearner(t *testing.T, sink events.Sink) *usecase.Learner {
	t.Helper()

	var words []*entities.Word
	for i := 0; i < 4; i++ {
		words = append(words, entities.NewWord(fmt.Sprintf("everyday%d", i), "", "noun",
			fmt.Sprintf("definition %d", i), "", entities.CategoryEveryday))
	}
	repo, err := repository.NewWordRepositoryFromWords(words)
	require.NoError(t, err)

	learner, err := usecase.NewLearner(context.Background(), storage.New(storage.NewMemoryBackend()), repo, sink,
		zap.NewNop(), usecase.Options{
			Location: time.UTC,
			Rand:     rand.New(rand.NewSource(1)),
		})
	require.NoError(t, err)
	return learner
}

func runSession(t *testing.T, input string) string {
	t.Helper()

	bus := events.NewBus()
	var out bytes.Buffer
	h := NewHandler(strings.NewReader(input), &out, zap.NewNop(), newLearner(t, bus))
	bus.Subscribe(h.HandleEvent)

	require.NoError(t, h.Run(context.Background()))
	return out.String()
}

func TestHandler_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "welcome and exit",
			input:    "x\n",
			contains: []string{msgWelcome, "everyday0", msgBye},
		},
		{
			name:     "navigation",
			input:    "n\np\np\n",
			contains: []string{"everyday1", "everyday3"},
			excludes: []string{msgBye},
		},
		{
			name:     "unknown command",
			input:    "dance\n",
			contains: []string{msgUnknownCommand},
		},
		{
			name:     "quiz not ready",
			input:    "q\n",
			contains: []string{msgQuizNotReady},
		},
		{
			name:     "status",
			input:    "n\ns\n",
			contains: []string{"Today [██░░░░░░░░░░░░░░░░░░] 1/10", "Streak: 0 days (best 0)", "new:"},
		},
		{
			name:  "full quiz",
			input: "k\nn\nk\nn\nk\nn\nn\nq\n9\neveryday0\neveryday1\neveryday2\nx\n",
			contains: []string{
				"everyday0 is now learning",
				"You went through every word.",
				"A quiz is ready.",
				"Question 1/3",
				msgInvalidOption,
				"✅ Correct!",
				"Quiz complete: 3/3",
				"Quiz passed!",
				msgBye,
			},
			excludes: []string{"❌"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := runSession(t, tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestHandler_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, unblock := newBlockingReader()
	t.Cleanup(unblock)
	h := NewHandler(r, &bytes.Buffer{}, zap.NewNop(), newLearner(t, nil))
	assert.ErrorIs(t, h.Run(ctx), context.Canceled)
}

// newBlockingReader returns a reader that never yields data until closed.
func newBlockingReader() (*blockingReader, func()) {
	r := &blockingReader{done: make(chan struct{})}
	return r, func() { close(r.done) }
}

type blockingReader struct {
	done chan struct{}
}

func (r *blockingReader) Read(_ []byte) (int, error) {
	<-r.done
	return 0, fmt.Errorf("closed")
}

func TestBuildProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current, total, length int
		want                   string
	}{
		{0, 10, 4, "[░░░░]"},
		{5, 10, 4, "[██░░]"},
		{15, 10, 4, "[████]"},
		{3, 0, 4, "[░░░░]"},
	}

	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, buildProgressBar(tt.current, tt.total, tt.length))
	}
}

func TestFormatEvent(t *testing.T) {
	t.Parallel()

	word := entities.NewWord("serendipity", "", "noun", "luck", "", entities.CategoryEveryday)

	assert.Equal(t, "⬆️  serendipity is now mastered",
		FormatEvent(events.Event{Kind: events.KindLevelUp, Word: word, Level: entities.MasteryMastered}))
	assert.Empty(t, FormatEvent(events.Event{Kind: events.KindLevelUp}))
	assert.Empty(t, FormatEvent(events.Event{Kind: events.KindAnswerCorrect}))
	assert.NotEmpty(t, FormatEvent(events.Event{Kind: events.KindReminder}))
}
