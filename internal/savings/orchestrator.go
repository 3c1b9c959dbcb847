package savings

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/domain"
)

// Outcome представляет итог одного запроса экономии: либо нормализованный
// результат, либо типизированная ошибка
type Outcome struct {
	Result *domain.SavingsResult
	Err    error
}

// Orchestrator выполняет полный цикл запроса: валидация идентификатора,
// один удалённый вызов, нормализация и трансляция статуса
type Orchestrator struct {
	client     domain.SavingsClient
	normalizer *Normalizer
	logger     *zap.Logger
}

// NewOrchestrator создает новый Orchestrator
func NewOrchestrator(client domain.SavingsClient, normalizer *Normalizer, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		client:     client,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Query выполняет запрос экономии для введённого идентификатора.
// Ровно один исходящий вызов на обращение, без повторов; параллельные
// обращения не дедуплицируются. Транспортные сбои возвращаются как
// *domain.TransportError с исходным кодом и сообщением
func (o *Orchestrator) Query(ctx context.Context, rawID string) Outcome {
	userID, err := ParseIdentifier(rawID)
	if err != nil {
		o.logger.Warn("identifier rejected", zap.String("input", rawID))
		return Outcome{Err: err}
	}

	raw, err := o.client.GetSavings(ctx, userID)
	if err != nil {
		var transportErr *domain.TransportError
		if !errors.As(err, &transportErr) {
			transportErr = domain.NewTransportError(domain.TransportUnavailable, err.Error())
		}
		o.logger.Error("savings call failed",
			zap.Int64("user_id", int64(userID)),
			zap.Int("code", int(transportErr.Code)),
			zap.String("message", transportErr.Message),
		)
		return Outcome{Err: transportErr}
	}

	result := o.normalizer.Normalize(raw)
	o.logger.Info("savings call completed",
		zap.Int64("user_id", int64(userID)),
		zap.String("status", string(result.StatusName)),
	)

	return Outcome{Result: &result}
}
