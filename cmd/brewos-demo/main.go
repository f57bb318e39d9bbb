package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/brewos-io/app/internal/config"
	"github.com/brewos-io/app/internal/demostate"
	"github.com/brewos-io/app/internal/device"
	"github.com/brewos-io/app/internal/feed"
	"github.com/brewos-io/app/internal/httpapi"
	"github.com/brewos-io/app/internal/store"
	"github.com/brewos-io/app/internal/synth"
	logpkg "github.com/brewos-io/app/pkg/logger"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	log, err := logpkg.NewLogger(cfg.Log.Level, cfg.Log.Format, "brewos-demo")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting brewos-demo service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis holds the durable demo flag. An unreachable Redis is not fatal:
	// the controller resolves to inactive instead of failing the app.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, demo state will resolve to inactive", zap.Error(err))
	}
	kv := store.NewRedisKV(redisClient)

	demo := demostate.NewController(kv, cfg.Demo.FlagKey, log)
	engine := synth.NewEngine()

	var machine httpapi.MachineClient
	if cfg.Device.BaseURL != "" {
		machine = device.NewClient(cfg.Device.BaseURL, cfg.Device.Timeout, log)
		log.Info("Live machine configured", zap.String("base_url", cfg.Device.BaseURL))
	}

	router := httpapi.NewRouter(log)
	router.RegisterDemoRoutes(httpapi.NewHandler(demo, engine, machine, log))

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httpapi.AccessLog(log, router),
	}

	// 可选：演示电表 MQTT 数据流
	if cfg.Demo.FeedEnabled {
		sink, err := feed.NewMQTTSink(&cfg.MQTT)
		if err != nil {
			log.Warn("MQTT broker unreachable, demo power feed disabled", zap.Error(err))
		} else {
			defer sink.Close()
			pub := feed.NewPublisher(sink, engine,
				func(ctx context.Context) bool { return demo.IsActive(ctx, nil) },
				cfg.Demo.FeedTopic, cfg.Demo.FeedInterval, log)
			go pub.Run(ctx)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// 监听系统信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		log.Error("Service error", zap.Error(err))
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error stopping HTTP server", zap.Error(err))
	}

	log.Info("Service stopped")
}
