package relay

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter собирает маршруты relay-сервиса
func NewRouter(proxy http.Handler, h *Handler, staticDir string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(RecoveryMiddleware(logger))
	r.Use(CORSMiddleware())
	r.Use(middleware.Compress(5))

	// Пересылка вызовов gRPC-web любым методом
	r.Handle(ProxyPrefix+"/*", proxy)

	r.Get("/health", h.Health)
	r.Get("/api/savings/{userID}", h.LegacySavingsStub)
	r.Post("/log-client-error", h.LogClientError)

	// Статика страницы
	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Handle("/*", fileServer)
	}

	return r
}
