// Package faultreport формирует отчёты о необработанных сбоях клиента и
// отправляет их на эндпоинт логирования relay-сервиса.
package faultreport

import (
	"time"

	"github.com/google/uuid"

	"github.com/avc/savings-relay/internal/domain"
)

// Location описывает место возникновения сбоя в исходном коде
type Location struct {
	Source string
	Line   int
	Col    int
}

// NewErrorReport создает отчёт о необработанной ошибке
func NewErrorReport(message string, loc Location, stack string, userAgent string) domain.ClientFaultReport {
	return domain.ClientFaultReport{
		ID:        uuid.New().String(),
		Type:      domain.FaultTypeError,
		Message:   message,
		Source:    loc.Source,
		Line:      loc.Line,
		Col:       loc.Col,
		Stack:     stack,
		UserAgent: userAgent,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewRejectionReport создает отчёт о необработанном отказе асинхронной
// операции
func NewRejectionReport(reason string, stack string, userAgent string) domain.ClientFaultReport {
	return domain.ClientFaultReport{
		ID:        uuid.New().String(),
		Type:      domain.FaultTypeRejection,
		Reason:    reason,
		Stack:     stack,
		UserAgent: userAgent,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
