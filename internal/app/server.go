package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	serverReadTimeout  = 15 * time.Second
	serverWriteTimeout = 15 * time.Second
	serverIdleTimeout  = 60 * time.Second
)

// createServer создает HTTP сервер
func createServer(addr string, handler *chi.Mux) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}
}

// Run запускает HTTP сервер и ожидает завершения. SIGINT и SIGTERM
// вызывают graceful shutdown; SIGUSR2 делает то же и затем повторно
// поднимает сигнал для родительского процесса. Паника в серверной
// горутине логируется и ведёт к тому же завершению: после неизвестного
// сбоя процесс не продолжает обслуживание
func (a *App) Run() error {
	defer a.logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	restart := make(chan os.Signal, 1)
	signal.Notify(restart, syscall.SIGUSR2)
	defer signal.Stop(restart)

	var restartRequested atomic.Bool

	g, ctx := errgroup.WithContext(ctx)

	// Запуск HTTP сервера
	g.Go(func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				a.logger.Error("fatal error in server goroutine", zap.Any("panic", rec))
				err = fmt.Errorf("fatal server error: %v", rec)
			}
		}()

		a.logger.Info("starting relay server",
			zap.String("address", a.server.Addr),
			zap.String("grpc_web_endpoint", a.config.GRPCWebEndpoint),
		)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", serveErr)
		}
		return nil
	})

	// Graceful shutdown по сигналу или фатальному сбою
	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-restart:
			restartRequested.Store(true)
			a.logger.Info("restart signal received")
		}
		return a.shutdown()
	})

	err := g.Wait()

	if restartRequested.Load() {
		// Повторно поднимаем сигнал для родительского процесса
		a.logger.Info("re-raising restart signal")
		signal.Reset(syscall.SIGUSR2)
		if killErr := syscall.Kill(syscall.Getpid(), syscall.SIGUSR2); killErr != nil {
			a.logger.Error("failed to re-raise restart signal", zap.Error(killErr))
		}
	}

	return err
}

// shutdown прекращает приём новых соединений и ждёт завершения текущих.
// Если за отведённое окно завершиться не удалось, соединения закрываются
// принудительно и возвращается ошибка
func (a *App) shutdown() error {
	a.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("forced shutdown", zap.Error(err))
		a.server.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("server stopped gracefully")
	return nil
}
