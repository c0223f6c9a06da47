package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultNewRelicLogEndpoint is the US region Logs API
const DefaultNewRelicLogEndpoint = "https://log-api.newrelic.com/log/v1"

// NewRelicLogHook is a logrus hook that forwards entries to the New Relic Logs API
type NewRelicLogHook struct {
	licenseKey string
	endpoint   string
	service    string
	client     *http.Client
	wg         sync.WaitGroup
}

// NewNewRelicLogHook creates a hook; an empty endpoint selects the default one
func NewNewRelicLogHook(licenseKey, endpoint, service string) *NewRelicLogHook {
	if endpoint == "" {
		endpoint = DefaultNewRelicLogEndpoint
	}
	return &NewRelicLogHook{
		licenseKey: licenseKey,
		endpoint:   endpoint,
		service:    service,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Levels returns the levels this hook handles
func (hook *NewRelicLogHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

// Fire sends the entry in the background; delivery failures go to stderr only
func (hook *NewRelicLogHook) Fire(entry *logrus.Entry) error {
	if hook.licenseKey == "" {
		return nil
	}

	logData := map[string]interface{}{
		"timestamp": entry.Time.UnixMilli(),
		"message":   entry.Message,
		"level":     entry.Level.String(),
		"service":   hook.service,
	}
	for key, value := range entry.Data {
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		logData[key] = value
	}

	payload, err := json.Marshal([]map[string]interface{}{
		{"logs": []map[string]interface{}{logData}},
	})
	if err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}

	hook.wg.Add(1)
	go func() {
		defer hook.wg.Done()
		hook.send(payload)
	}()
	return nil
}

func (hook *NewRelicLogHook) send(payload []byte) {
	req, err := http.NewRequest(http.MethodPost, hook.endpoint, bytes.NewReader(payload))
	if err != nil {
		fmt.Fprintf(os.Stderr, "newrelic log hook: %v\n", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", hook.licenseKey)

	resp, err := hook.client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "newrelic log hook: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		fmt.Fprintf(os.Stderr, "newrelic log hook: unexpected status %d\n", resp.StatusCode)
	}
}

// Wait blocks until in-flight deliveries finish
func (hook *NewRelicLogHook) Wait() {
	hook.wg.Wait()
}
