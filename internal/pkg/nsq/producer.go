package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/docshare/internal/pkg/logger"
	nrpkg "github.com/piresc/docshare/internal/pkg/newrelic"
	"github.com/piresc/docshare/internal/pkg/retry"
)

// publisher is the part of *nsq.Producer the wrapper uses
type publisher interface {
	Publish(topic string, body []byte) error
	Ping() error
	Stop()
}

// Producer publishes JSON messages to NSQ topics
type Producer struct {
	producer publisher
	address  string
}

// NewProducer connects to nsqd, retrying the first ping with backoff
func NewProducer(ctx context.Context, address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	err = retry.New(retry.DefaultConfig()).Execute(ctx, "nsq ping", func(context.Context) error {
		return producer.Ping()
	})
	if err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	logger.Info("Connected to NSQ", logger.String("address", address))
	return &Producer{producer: producer, address: address}, nil
}

// NewProducerWith wraps an existing publisher; used by tests
func NewProducerWith(p publisher) *Producer {
	return &Producer{producer: p}
}

// Publish marshals message and sends it to topic
func (p *Producer) Publish(ctx context.Context, topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return nrpkg.WithSegment(ctx, "nsq.publish."+topic, func() error {
		if err := p.producer.Publish(topic, msgBytes); err != nil {
			return fmt.Errorf("failed to publish message: %w", err)
		}
		logger.Debug("Published message", logger.String("topic", topic), logger.Int("bytes", len(msgBytes)))
		return nil
	})
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
