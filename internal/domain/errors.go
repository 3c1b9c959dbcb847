package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки валидации ввода
var (
	ErrInvalidIdentifier = errors.New("invalid user identifier")
)

// TransportCode представляет код транспортной ошибки удалённого вызова
// (подмножество кодов gRPC)
type TransportCode int

const (
	TransportUnknown          TransportCode = 2
	TransportDeadlineExceeded TransportCode = 4
	TransportPermissionDenied TransportCode = 7
	TransportInternal         TransportCode = 13
	TransportUnavailable      TransportCode = 14
)

// Маркеры серверного сбоя в тексте транспортной ошибки (так их формирует
// шлюз gRPC-web)
var serverFaultMarkers = []string{
	"http response at 400 or 500 level",
	"internal server error",
}

// TransportError представляет ошибку транспортного уровня при удалённом
// вызове. Код и сообщение переносятся без изменений
type TransportError struct {
	Code    TransportCode
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error (code %d): %s", e.Code, e.Message)
}

// NewTransportError создает новую транспортную ошибку
func NewTransportError(code TransportCode, message string) *TransportError {
	return &TransportError{Code: code, Message: message}
}

// IsServerFault сообщает, относится ли ошибка к классу "permission/internal"
// либо содержит маркер серверного сбоя в тексте
func (e *TransportError) IsServerFault() bool {
	if e.Code == TransportPermissionDenied || e.Code == TransportInternal {
		return true
	}
	msg := strings.ToLower(e.Message)
	for _, marker := range serverFaultMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
