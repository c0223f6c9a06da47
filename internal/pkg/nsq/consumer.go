package nsq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"
)

// MessageHandler processes one message body. A returned error requeues the message.
type MessageHandler func(ctx context.Context, body []byte) error

// ConsumerConfig selects the topic, channel and where to find it
type ConsumerConfig struct {
	Topic            string
	Channel          string
	NSQDAddress      string
	LookupdAddresses []string
	MaxInFlight      int
	MaxAttempts      uint16
}

// Consumer reads messages from one topic/channel
type Consumer struct {
	consumer *nsq.Consumer
	handler  MessageHandler
	log      *logrus.Entry
	cfg      ConsumerConfig
}

// logAdapter routes go-nsq's own log lines through logrus
type logAdapter struct {
	entry *logrus.Entry
}

func (l logAdapter) Output(calldepth int, s string) error {
	switch {
	case strings.HasPrefix(s, "ERR"):
		l.entry.Error(s)
	case strings.HasPrefix(s, "WRN"):
		l.entry.Warn(s)
	default:
		l.entry.Debug(s)
	}
	return nil
}

// NewConsumer creates a consumer and registers handler. Call Connect to start receiving.
func NewConsumer(cfg ConsumerConfig, handler MessageHandler, log *logrus.Logger) (*Consumer, error) {
	config := nsq.NewConfig()
	if cfg.MaxInFlight > 0 {
		config.MaxInFlight = cfg.MaxInFlight
	}
	if cfg.MaxAttempts > 0 {
		config.MaxAttempts = cfg.MaxAttempts
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	c := &Consumer{
		consumer: consumer,
		handler:  handler,
		log:      log.WithFields(logrus.Fields{"topic": cfg.Topic, "channel": cfg.Channel}),
		cfg:      cfg,
	}
	consumer.SetLogger(logAdapter{entry: c.log}, nsq.LogLevelWarning)
	consumer.AddHandler(nsq.HandlerFunc(c.handleMessage))
	return c, nil
}

func (c *Consumer) handleMessage(message *nsq.Message) error {
	if len(message.Body) == 0 {
		return nil
	}

	if err := c.handler(context.Background(), message.Body); err != nil {
		c.log.WithError(err).WithField("attempts", message.Attempts).Warn("Message processing failed, requeueing")
		return err
	}
	return nil
}

// Connect attaches to lookupd when addresses are configured, otherwise to nsqd directly
func (c *Consumer) Connect() error {
	if len(c.cfg.LookupdAddresses) > 0 {
		if err := c.consumer.ConnectToNSQLookupds(c.cfg.LookupdAddresses); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
		return nil
	}
	if err := c.consumer.ConnectToNSQD(c.cfg.NSQDAddress); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// Stats returns the consumer's counters
func (c *Consumer) Stats() *nsq.ConsumerStats {
	return c.consumer.Stats()
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	err := json.Unmarshal(messageBody, v)
	if err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop stops the consumer and waits for in-flight messages
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
