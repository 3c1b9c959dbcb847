package faultreport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/domain"
)

// Путь эндпоинта логирования на relay-сервисе
const logEndpointPath = "/log-client-error"

// ReporterConfig содержит параметры отправителя отчётов
type ReporterConfig struct {
	Workers   int
	QueueSize int
}

// Reporter отправляет отчёты о сбоях best-effort: постановка в очередь не
// блокирует, переполнение очереди и сбои отправки молча отбрасываются и
// никогда не эскалируются
type Reporter struct {
	endpoint   string
	httpClient *http.Client
	queue      chan domain.ClientFaultReport
	logger     *zap.Logger
	wg         sync.WaitGroup
	workers    int
}

// NewReporter создает новый Reporter для указанного адреса relay-сервиса
func NewReporter(relayURL string, cfg ReporterConfig, logger *zap.Logger) *Reporter {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	return &Reporter{
		endpoint: strings.TrimRight(relayURL, "/") + logEndpointPath,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		queue:   make(chan domain.ClientFaultReport, cfg.QueueSize),
		logger:  logger,
		workers: cfg.Workers,
	}
}

// Start запускает воркеры отправки
func (r *Reporter) Start(ctx context.Context) {
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(ctx)
	}
}

// Stop закрывает очередь и дожидается отправки оставшихся отчётов
func (r *Reporter) Stop() {
	close(r.queue)
	r.wg.Wait()
}

// Report ставит отчёт в очередь отправки. Не блокирует: при заполненной
// очереди отчёт отбрасывается
func (r *Reporter) Report(report domain.ClientFaultReport) {
	select {
	case r.queue <- report:
	default:
		r.logger.Debug("fault report queue is full, report dropped",
			zap.String("type", report.Type),
		)
	}
}

func (r *Reporter) worker(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case report, ok := <-r.queue:
			if !ok {
				return
			}
			r.send(ctx, report)
		}
	}
}

// send выполняет одну попытку отправки, без повторов
func (r *Reporter) send(ctx context.Context, report domain.ClientFaultReport) {
	body, err := json.Marshal(report)
	if err != nil {
		r.logger.Debug("failed to encode fault report", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		r.logger.Debug("failed to create fault report request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Debug("fault report submission failed", zap.Error(err))
		return
	}
	resp.Body.Close()
}
