package nsq

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	topic   string
	body    []byte
	err     error
	stopped bool
}

func (f *fakePublisher) Publish(topic string, body []byte) error {
	f.topic, f.body = topic, body
	return f.err
}
func (f *fakePublisher) Ping() error { return f.err }
func (f *fakePublisher) Stop()       { f.stopped = true }

func TestProducer_Publish(t *testing.T) {
	fake := &fakePublisher{}
	p := NewProducerWith(fake)

	err := p.Publish(context.Background(), "docshare.audit", map[string]string{"action": "ADMIN_LOGIN"})

	require.NoError(t, err)
	assert.Equal(t, "docshare.audit", fake.topic)
	assert.JSONEq(t, `{"action":"ADMIN_LOGIN"}`, string(fake.body))

	p.Stop()
	assert.True(t, fake.stopped)
}

func TestProducer_PublishErrors(t *testing.T) {
	fake := &fakePublisher{err: errors.New("connection refused")}
	p := NewProducerWith(fake)

	err := p.Publish(context.Background(), "docshare.audit", map[string]string{})
	assert.ErrorContains(t, err, "failed to publish message")

	err = p.Publish(context.Background(), "docshare.audit", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal message")
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestConsumer_HandleMessage(t *testing.T) {
	var got []byte
	handlerErr := error(nil)
	c, err := NewConsumer(ConsumerConfig{Topic: "docshare.audit", Channel: "audit-writer"}, func(ctx context.Context, body []byte) error {
		got = body
		return handlerErr
	}, quietLogger())
	require.NoError(t, err)

	msg := nsq.NewMessage(nsq.MessageID{'1'}, []byte(`{"action":"USER_LOGIN"}`))
	assert.NoError(t, c.handleMessage(msg))
	assert.Equal(t, `{"action":"USER_LOGIN"}`, string(got))

	handlerErr = errors.New("db down")
	assert.Error(t, c.handleMessage(msg))

	got = nil
	assert.NoError(t, c.handleMessage(nsq.NewMessage(nsq.MessageID{'2'}, nil)))
	assert.Nil(t, got)
}

func TestUnmarshalMessage(t *testing.T) {
	var v struct {
		Action string `json:"action"`
	}
	require.NoError(t, UnmarshalMessage([]byte(`{"action":"X"}`), &v))
	assert.Equal(t, "X", v.Action)
	assert.Error(t, UnmarshalMessage([]byte(`{`), &v))
}
