package feed

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/brewos-io/app/internal/config"
)

// MQTTSink MQTT客户端封装（演示电表数据的发布端）
type MQTTSink struct {
	client mqtt.Client
}

func NewMQTTSink(cfg *config.MQTTConfig) (*MQTTSink, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &MQTTSink{client: client}, nil
}

func (s *MQTTSink) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := s.client.Publish(topic, qos, retained, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, token.Error())
	}
	return nil
}

func (s *MQTTSink) Close() {
	s.client.Disconnect(250) // 250ms等待时间
}
