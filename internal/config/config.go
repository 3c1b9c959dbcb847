// Package config содержит логику чтения конфигурации relay-сервиса.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации relay-сервиса
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	GRPCWebEndpoint string        `env:"GRPC_WEB_ENDPOINT"`
	StaticDir       string        `env:"STATIC_DIR"`
	LogLevel        string        `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных
// окружения. Переменные окружения имеют приоритет над флагами
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envEndpoint := cfg.GRPCWebEndpoint
	envStaticDir := cfg.StaticDir
	envLogLevel := cfg.LogLevel
	envShutdownTimeout := cfg.ShutdownTimeout

	flag.StringVar(&cfg.RunAddress, "a", ":3000", "address and port for HTTP server")
	flag.StringVar(&cfg.GRPCWebEndpoint, "g", "http://money-service:8080", "internal gRPC-Web endpoint address")
	flag.StringVar(&cfg.StaticDir, "s", "./public", "directory with static page assets")
	flag.StringVar(&cfg.LogLevel, "l", "info", "log level")
	flag.DurationVar(&cfg.ShutdownTimeout, "t", 5*time.Second, "graceful shutdown timeout")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envEndpoint != "" {
		cfg.GRPCWebEndpoint = envEndpoint
	}
	if envStaticDir != "" {
		cfg.StaticDir = envStaticDir
	}
	if envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}
	if envShutdownTimeout != 0 {
		cfg.ShutdownTimeout = envShutdownTimeout
	}

	if cfg.GRPCWebEndpoint == "" {
		return nil, fmt.Errorf("gRPC-Web endpoint is required (use -g flag or GRPC_WEB_ENDPOINT env)")
	}

	return cfg, nil
}

// QueryConfig содержит параметры терминального клиента запроса экономии
type QueryConfig struct {
	RelayURL        string `env:"RELAY_URL"`
	ReportWorkers   int    `env:"REPORT_WORKERS"`
	ReportQueueSize int    `env:"REPORT_QUEUE_SIZE"`
	UserInput       string
}

// ParseQuery считывает конфигурацию терминального клиента.
// Идентификатор пользователя передаётся как есть: его проверяет валидатор
func ParseQuery() (*QueryConfig, error) {
	cfg := &QueryConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRelayURL := cfg.RelayURL

	flag.StringVar(&cfg.RelayURL, "r", "http://localhost:3000", "relay service URL")
	flag.StringVar(&cfg.UserInput, "u", "", "user identifier to query")

	flag.Parse()

	if envRelayURL != "" {
		cfg.RelayURL = envRelayURL
	}

	if cfg.ReportWorkers <= 0 {
		cfg.ReportWorkers = 1
	}
	if cfg.ReportQueueSize <= 0 {
		cfg.ReportQueueSize = 64
	}

	return cfg, nil
}
