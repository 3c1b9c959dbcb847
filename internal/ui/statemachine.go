// Package ui содержит машину состояний отображения результата запроса
// экономии и правила форматирования сумм.
package ui

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/domain"
	"github.com/avc/savings-relay/internal/savings"
)

// Сообщения, показываемые пользователю машиной состояний
const (
	MsgInvalidIdentifier = "Please enter a valid user ID (a positive number)"
	MsgNoCardPurchases   = "User has no card-paid orders"
	MsgServerError       = "Server error while fetching data"
	MsgFetchFailed       = "Failed to fetch savings data"
)

// StateMachine управляет взаимоисключающими состояниями отображения:
// Idle → Loading → {Result | Error}. Переходы вызываются только итогами
// оркестратора и новыми действиями пользователя. Запущенный вызов не
// отменяется при новом запросе: при пересечении запросов видимое состояние
// определяет итог, применённый последним
type StateMachine struct {
	orchestrator *savings.Orchestrator
	presenter    domain.Presenter
	logger       *zap.Logger

	mu    sync.Mutex
	state domain.UIState
}

// NewStateMachine создает машину состояний над указанным портом отображения
func NewStateMachine(orchestrator *savings.Orchestrator, presenter domain.Presenter, logger *zap.Logger) *StateMachine {
	return &StateMachine{
		orchestrator: orchestrator,
		presenter:    presenter,
		logger:       logger,
		state:        domain.UIStateIdle,
	}
}

// State возвращает текущее состояние отображения
func (m *StateMachine) State() domain.UIState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Submit обрабатывает действие пользователя: при некорректном идентификаторе
// показывает ошибку без входа в Loading и без сетевого вызова; иначе
// скрывает предыдущий результат, показывает Loading, выполняет запрос и
// применяет его итог
func (m *StateMachine) Submit(ctx context.Context, rawID string) domain.UIState {
	if _, err := savings.ParseIdentifier(rawID); err != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.logger.Warn("submit rejected", zap.String("input", rawID))
		m.presenter.ShowError(MsgInvalidIdentifier)
		m.state = domain.UIStateError
		return m.state
	}

	m.mu.Lock()
	m.presenter.Reset()
	m.presenter.ShowLoading()
	m.state = domain.UIStateLoading
	m.mu.Unlock()

	outcome := m.orchestrator.Query(ctx, rawID)
	return m.Apply(outcome)
}

// Apply применяет итог запроса к отображению. Порядок применения задаёт
// итоговое состояние: при пересекающихся запросах побеждает последний
// применённый итог
func (m *StateMachine) Apply(outcome savings.Outcome) domain.UIState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if outcome.Err != nil {
		m.showError(errorText(outcome.Err))
		return m.state
	}

	result := outcome.Result

	switch {
	case result.StatusName == domain.StatusNameOK && result.WbCardPurchases == 0:
		// Успешный статус без заказов, оплаченных картой, считается ошибкой
		m.showError(MsgNoCardPurchases)
	case result.StatusName == domain.StatusNameOK:
		m.presenter.ShowResult(result)
		m.state = domain.UIStateResult
		m.logger.Info("result displayed",
			zap.Float64("total_savings", result.TotalSavings),
			zap.String("currency", result.Currency),
		)
	case result.StatusName == domain.StatusNameNoPurchases:
		// Фиксированный текст независимо от сообщения сервера
		m.showError(savings.ErrorMessage(domain.StatusNameNoPurchases, ""))
	default:
		m.showError(savings.ErrorMessage(result.StatusName, result.Message))
	}

	return m.state
}

func (m *StateMachine) showError(message string) {
	m.presenter.ShowError(message)
	m.state = domain.UIStateError
	m.logger.Info("error displayed", zap.String("message", message))
}

// errorText выбирает текст ошибки по её классификации
func errorText(err error) string {
	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		if transportErr.IsServerFault() {
			return MsgServerError
		}
		if transportErr.Message != "" {
			return transportErr.Message
		}
		return MsgFetchFailed
	}
	if errors.Is(err, domain.ErrInvalidIdentifier) {
		return MsgInvalidIdentifier
	}
	return MsgFetchFailed
}
