package relay

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/domain"
)

// Handler обрабатывает собственные (не пересылаемые) эндпоинты relay-сервиса
type Handler struct {
	logger *zap.Logger
}

// NewHandler создает новый Handler
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

// LegacySavingsStub отвечает на устаревший REST-путь получения экономии.
// Всегда 501: данные доступны только через эндпоинт gRPC
func (h *Handler) LegacySavingsStub(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotImplemented)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: "Use gRPC endpoint instead"}); err != nil {
		h.logger.Error("failed to encode stub response", zap.Error(err))
	}
}

// LogClientError принимает отчёт о сбое клиента, пишет диагностическую
// запись и безусловно отвечает 204: логирование не должно ломать вызывающую
// сторону даже при некорректном теле
func (h *Handler) LogClientError(w http.ResponseWriter, r *http.Request) {
	defer w.WriteHeader(http.StatusNoContent)

	var report domain.ClientFaultReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		h.logger.Warn("malformed client fault report", zap.Error(err))
		return
	}

	if report.Type == domain.FaultTypeRejection {
		h.logger.Error("client unhandled rejection",
			zap.String("id", report.ID),
			zap.String("reason", report.Reason),
			zap.String("stack", report.Stack),
			zap.String("user_agent", report.UserAgent),
			zap.String("timestamp", report.Timestamp),
		)
		return
	}

	h.logger.Error("client error",
		zap.String("id", report.ID),
		zap.String("message", report.Message),
		zap.String("source", report.Source),
		zap.Int("line", report.Line),
		zap.Int("col", report.Col),
		zap.String("stack", report.Stack),
		zap.String("user_agent", report.UserAgent),
		zap.String("timestamp", report.Timestamp),
	)
}

// Health возвращает статус сервиса
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("failed to write health response", zap.Error(err))
	}
}
