package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// streamSetupTimeout bounds stream creation at connect time.
const streamSetupTimeout = 2 * time.Second

// Client publishes evaluation events and lets tools follow them.
type Client interface {
	Publish(subject string, data interface{}) error
	Subscribe(subject string, handler func(subject string, data []byte)) error
	Close()
}

// NATSClient publishes on core NATS. The TALLY_EVENTS stream captures the
// evaluation subjects, so publishes never wait on JetStream.
type NATSClient struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewNATSClient(ctx context.Context, url string, logger *slog.Logger) (*NATSClient, error) {
	nc, err := nats.Connect(url, connectOptions(logger)...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	c := &NATSClient{conn: nc, js: js, logger: logger}
	if err := c.ensureStream(ctx); err != nil {
		logger.Warn("failed to ensure stream", "stream", StreamName, "error", err)
	}
	return c, nil
}

func connectOptions(logger *slog.Logger) []nats.Option {
	return []nats.Option{
		nats.Name("tally"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	}
}

// ensureStream keeps evaluation events for StreamMaxAge so downstream
// consumers can replay them.
func (c *NATSClient) ensureStream(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, streamSetupTimeout)
	defer cancel()

	maxAge, err := time.ParseDuration(StreamMaxAge)
	if err != nil {
		return fmt.Errorf("stream max age: %w", err)
	}
	_, err = c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{SubjectEvaluationAll},
		MaxAge:   maxAge,
	})
	return err
}

// Publish JSON-encodes data and hands it to the connection without waiting
// for the stream. While disconnected the message sits in the reconnect buffer.
func (c *NATSClient) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", subject, err)
	}
	if err := c.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (c *NATSClient) Subscribe(subject string, handler func(string, []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	return nil
}

// Close unsubscribes and drains pending publishes.
func (c *NATSClient) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	if err := c.conn.Drain(); err != nil {
		c.logger.Warn("nats drain failed", "error", err)
	}
}
