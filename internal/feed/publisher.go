// Package feed replays synthesized power-meter readings over MQTT while demo
// mode is active, on the same topic a real BrewOS power meter publishes to.
// MQTT-driven dashboards (e.g. Home Assistant cards) then show first-paint
// data without a machine connected.
package feed

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/brewos-io/app/internal/synth"
)

// DefaultTopic matches the topic the stock power-meter firmware uses.
const DefaultTopic = "brewos/power/telemetry"

// Sink is the publish side of an MQTT connection.
type Sink interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// Publisher ticks on a fixed interval and publishes the current synthetic
// power sample whenever demo mode is active.
type Publisher struct {
	sink     Sink
	engine   *synth.Engine
	isActive func(ctx context.Context) bool
	topic    string
	interval time.Duration
	logger   *zap.Logger
}

func NewPublisher(sink Sink, engine *synth.Engine, isActive func(ctx context.Context) bool,
	topic string, interval time.Duration, logger *zap.Logger) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		sink:     sink,
		engine:   engine,
		isActive: isActive,
		topic:    topic,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled. Publish failures are logged and the loop
// keeps going; the feed is best-effort demo content.
func (p *Publisher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("demo power feed started",
		zap.String("topic", p.topic),
		zap.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("demo power feed stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Publisher) tick(ctx context.Context) {
	if !p.isActive(ctx) {
		return
	}

	sample := p.engine.CurrentPowerSample()
	payload, err := json.Marshal(sample)
	if err != nil {
		p.logger.Error("failed to encode power sample", zap.Error(err))
		return
	}

	if err := p.sink.Publish(p.topic, 0, false, payload); err != nil {
		p.logger.Warn("failed to publish demo power sample", zap.Error(err))
	}
}
