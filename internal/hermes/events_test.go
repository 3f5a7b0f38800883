package hermes

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *mockClient) Subscribe(subject string, handler func(string, []byte)) error {
	args := m.Called(subject, handler)
	return args.Error(0)
}

func (m *mockClient) Close() { m.Called() }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "tally.evaluation.abc.completed", SubjectEvaluationCompleted("abc"))
	assert.Equal(t, "tally.evaluation.abc.rejected", SubjectEvaluationRejected("abc"))
}

// waitForCall blocks until the mocked Publish runs or the timeout expires.
func waitForCall(t *testing.T, called <-chan struct{}) {
	t.Helper()
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("publish was not called")
	}
}

func TestPublisherCompleted(t *testing.T) {
	mc := &mockClient{}
	called := make(chan struct{})
	event := EvaluationCompletedEvent{
		EvaluationID:    "e1",
		Alternatives:    2,
		Criteria:        3,
		BestAlternative: "X",
		BestScore:       6,
		Timestamp:       time.Now(),
	}
	mc.On("Publish", "tally.evaluation.e1.completed", event).Return(nil).
		Run(func(mock.Arguments) { close(called) })

	NewPublisher(mc, discardLogger()).Completed(event)
	waitForCall(t, called)
	mc.AssertExpectations(t)
}

func TestPublisherSwallowsErrors(t *testing.T) {
	mc := &mockClient{}
	called := make(chan struct{})
	mc.On("Publish", "tally.evaluation.e2.rejected", mock.Anything).Return(errors.New("nats down")).
		Run(func(mock.Arguments) { close(called) })

	assert.NotPanics(t, func() {
		NewPublisher(mc, discardLogger()).Rejected(EvaluationRejectedEvent{EvaluationID: "e2", Kind: "shape_mismatch"})
	})
	waitForCall(t, called)
	mc.AssertExpectations(t)
}

// stuckClient never returns from Publish until released.
type stuckClient struct {
	release chan struct{}
}

func (c *stuckClient) Publish(string, interface{}) error {
	<-c.release
	return nil
}
func (c *stuckClient) Subscribe(string, func(string, []byte)) error { return nil }
func (c *stuckClient) Close()                                       {}

func TestPublisherDoesNotWaitForClient(t *testing.T) {
	client := &stuckClient{release: make(chan struct{})}
	defer close(client.release)
	p := NewPublisher(client, discardLogger())

	done := make(chan struct{})
	go func() {
		// More events than the queue holds: the overflow is dropped.
		for i := 0; i < publishQueueSize+10; i++ {
			p.Completed(EvaluationCompletedEvent{EvaluationID: "slow"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publishing blocked on a stuck client")
	}
}

func TestPublisherNilClient(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPublisher(nil, discardLogger()).Completed(EvaluationCompletedEvent{EvaluationID: "e3"})
	})
	var p *Publisher
	assert.NotPanics(t, func() {
		p.Rejected(EvaluationRejectedEvent{EvaluationID: "e4"})
	})
}
