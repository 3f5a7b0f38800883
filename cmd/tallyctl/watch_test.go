package main

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Tally/internal/hermes"
)

// fakeHermes delivers published payloads to the registered handler.
type fakeHermes struct {
	mu      sync.Mutex
	handler func(string, []byte)
	subject string
	ready   chan struct{}
}

func (f *fakeHermes) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	f.mu.Lock()
	h := f.handler
	f.mu.Unlock()
	if h != nil {
		h(subject, payload)
	}
	return nil
}

func (f *fakeHermes) Subscribe(subject string, handler func(string, []byte)) error {
	f.mu.Lock()
	f.subject = subject
	f.handler = handler
	f.mu.Unlock()
	close(f.ready)
	return nil
}

func (f *fakeHermes) Close() {}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		event   interface{}
		want    string
	}{
		{
			name:    "completed",
			subject: hermes.SubjectEvaluationCompleted("e1"),
			event: hermes.EvaluationCompletedEvent{
				EvaluationID: "e1", Alternatives: 2, Criteria: 2, BestAlternative: "X", BestScore: 6,
			},
			want: "completed e1: 2 alternatives, 2 criteria, best X (score 6.000000)",
		},
		{
			name:    "completed empty",
			subject: hermes.SubjectEvaluationCompleted("e2"),
			event:   hermes.EvaluationCompletedEvent{EvaluationID: "e2"},
			want:    "completed e2: nothing to rank",
		},
		{
			name:    "rejected",
			subject: hermes.SubjectEvaluationRejected("e3"),
			event: hermes.EvaluationRejectedEvent{
				EvaluationID: "e3", Kind: "weight_sum_invalid", Error: "criterion weights must sum to 100%",
			},
			want: "rejected e3: weight_sum_invalid: criterion weights must sum to 100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, formatEvent(tt.subject, data, 6))
		})
	}
}

func TestFormatEventUnknownSubject(t *testing.T) {
	assert.Equal(t, `tally.other {"a":1}`, formatEvent("tally.other", []byte(`{"a":1}`), 6))
}

func TestFollowEvents(t *testing.T) {
	fake := &fakeHermes{ready: make(chan struct{})}
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- followEvents(ctx, fake, out, 2) }()

	<-fake.ready
	assert.Equal(t, hermes.SubjectEvaluationAll, fake.subject)

	publisher := hermes.NewPublisher(fake, nil)
	publisher.Completed(hermes.EvaluationCompletedEvent{
		EvaluationID: "e1", Alternatives: 2, Criteria: 2, BestAlternative: "X", BestScore: 6,
	})

	assert.Eventually(t, func() bool {
		return out.String() == "completed e1: 2 alternatives, 2 criteria, best X (score 6.00)\n"
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
