// Package app собирает зависимости relay-сервиса и управляет его
// жизненным циклом.
package app

import (
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/config"
	"github.com/avc/savings-relay/internal/relay"
)

// App представляет relay-сервис
type App struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
}

// NewApp создает новый relay-сервис
func NewApp() (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Адрес внутреннего эндпоинта gRPC-Web
	target, err := url.Parse(cfg.GRPCWebEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid gRPC-Web endpoint %q: %w", cfg.GRPCWebEndpoint, err)
	}

	// Настройка роутера
	proxy := relay.NewProxy(target, logger)
	handler := relay.NewHandler(logger)
	router := relay.NewRouter(proxy, handler, cfg.StaticDir, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config: cfg,
		logger: logger,
		server: server,
	}, nil
}
