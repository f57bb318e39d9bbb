package feed

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brewos-io/app/internal/models"
	"github.com/brewos-io/app/internal/synth"
)

type fakeSink struct {
	mu       sync.Mutex
	payloads [][]byte
	topic    string
	err      error
}

func (f *fakeSink) Publish(topic string, qos byte, retained bool, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topic = topic
	f.payloads = append(f.payloads, payload)
	return f.err
}

func (f *fakeSink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

func testPublisher(sink Sink, active bool) *Publisher {
	engine := synth.NewEngineWith(rand.NewSource(1), time.Now)
	return NewPublisher(sink, engine,
		func(ctx context.Context) bool { return active },
		"", 10*time.Millisecond, zap.NewNop())
}

func TestPublisher_PublishesWhileActive(t *testing.T) {
	sink := &fakeSink{}
	p := testPublisher(sink, true)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	require.Greater(t, sink.count(), 0, "expected at least one publish")
	assert.Equal(t, DefaultTopic, sink.topic)

	var sample models.PowerSample
	require.NoError(t, json.Unmarshal(sink.payloads[0], &sample))
	assert.GreaterOrEqual(t, sample.MaxWatts, sample.AvgWatts)
	assert.NotZero(t, sample.Timestamp)
}

func TestPublisher_SilentWhileInactive(t *testing.T) {
	sink := &fakeSink{}
	p := testPublisher(sink, false)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	assert.Zero(t, sink.count(), "inactive demo mode must not publish")
}

func TestPublisher_KeepsRunningOnPublishError(t *testing.T) {
	sink := &fakeSink{err: errors.New("broker gone")}
	p := testPublisher(sink, true)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	assert.Greater(t, sink.count(), 1, "loop must survive publish failures")
}
