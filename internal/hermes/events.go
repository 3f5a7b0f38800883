package hermes

import (
	"log/slog"
	"time"
)

type EvaluationCompletedEvent struct {
	EvaluationID    string    `json:"evaluation_id"`
	Alternatives    int       `json:"alternatives"`
	Criteria        int       `json:"criteria"`
	BestAlternative string    `json:"best_alternative,omitempty"`
	BestScore       float64   `json:"best_score,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

type EvaluationRejectedEvent struct {
	EvaluationID string    `json:"evaluation_id"`
	Kind         string    `json:"kind"`
	Error        string    `json:"error"`
	Timestamp    time.Time `json:"timestamp"`
}

// publishQueueSize is how many events may wait for the client before new ones
// are dropped.
const publishQueueSize = 256

type outgoing struct {
	subject string
	data    interface{}
}

// Publisher sends evaluation events on a best-effort basis. Events are queued
// and delivered by a background goroutine, so a slow or unreachable client
// never holds up the caller. A nil client disables publishing; failures and
// overflow are logged and dropped.
type Publisher struct {
	client Client
	logger *slog.Logger
	queue  chan outgoing
}

func NewPublisher(c Client, logger *slog.Logger) *Publisher {
	p := &Publisher{client: c, logger: logger}
	if c != nil {
		p.queue = make(chan outgoing, publishQueueSize)
		go p.run()
	}
	return p
}

func (p *Publisher) Completed(e EvaluationCompletedEvent) {
	p.publish(SubjectEvaluationCompleted(e.EvaluationID), e)
}

func (p *Publisher) Rejected(e EvaluationRejectedEvent) {
	p.publish(SubjectEvaluationRejected(e.EvaluationID), e)
}

func (p *Publisher) publish(subject string, data interface{}) {
	if p == nil || p.queue == nil {
		return
	}
	select {
	case p.queue <- outgoing{subject: subject, data: data}:
	default:
		p.logger.Warn("event queue full, dropping event", "subject", subject)
	}
}

func (p *Publisher) run() {
	for ev := range p.queue {
		if err := p.client.Publish(ev.subject, ev.data); err != nil {
			p.logger.Warn("failed to publish event", "subject", ev.subject, "error", err)
		}
	}
}
