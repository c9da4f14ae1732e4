package log

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (t *captureTransport) Configure(sentry.ClientOptions)          {}
func (t *captureTransport) Flush(_ time.Duration) bool              { return true }
func (t *captureTransport) FlushWithContext(_ context.Context) bool { return true }
func (t *captureTransport) Close()                                  {}

func (t *captureTransport) SendEvent(event *sentry.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

func TestSentryHook_Fire(t *testing.T) {
	transport := &captureTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{Dsn: "https://key@sentry.example.com/1", Transport: transport})
	require.NoError(t, err)

	hook := NewSentryHook(sentry.NewHub(client, sentry.NewScope()))

	entry := logrus.NewEntry(logrus.New()).WithField("table", "ad_analytics").WithError(errors.New("load failed"))
	entry.Level = logrus.ErrorLevel
	entry.Message = "ingestão falhou"

	require.NoError(t, hook.Fire(entry))

	require.Len(t, transport.events, 1)
	event := transport.events[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "ad_analytics", event.Extra["table"])
	require.NotEmpty(t, event.Exception)
	assert.Equal(t, "load failed", event.Exception[0].Value)
}

func TestSentryHook_Levels(t *testing.T) {
	assert.NotContains(t, NewSentryHook(nil).Levels(), logrus.WarnLevel)
}

func TestInitSentry_WithoutDSN(t *testing.T) {
	flush, err := InitSentry("", "test")
	require.NoError(t, err)
	flush()
}
