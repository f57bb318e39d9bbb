package config

import (
	"os"
	"strconv"
	"time"
)

// RedisConfig Redis配置
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MQTTConfig MQTT配置
type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
}

// Config 演示引擎服务配置
type Config struct {
	Redis RedisConfig
	MQTT  MQTTConfig

	HTTP struct {
		Addr string
	}

	// Live machine API, queried when demo mode is off. Empty = no machine.
	Device struct {
		BaseURL string
		Timeout time.Duration
	}

	Demo struct {
		FlagKey      string
		FeedEnabled  bool
		FeedInterval time.Duration
		FeedTopic    string
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置（环境变量 + 默认值）
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "brewos-demo")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8093")

	cfg.Device.BaseURL = getEnv("DEVICE_BASE_URL", "")
	cfg.Device.Timeout = time.Duration(getEnvInt("DEVICE_TIMEOUT_SEC", 5)) * time.Second

	cfg.Demo.FlagKey = getEnv("DEMO_FLAG_KEY", "brewos:demo:active")
	cfg.Demo.FeedEnabled = getEnv("DEMO_FEED_ENABLED", "false") == "true"
	cfg.Demo.FeedInterval = time.Duration(getEnvInt("DEMO_FEED_INTERVAL_SEC", 10)) * time.Second
	cfg.Demo.FeedTopic = getEnv("DEMO_FEED_TOPIC", "brewos/power/telemetry")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
