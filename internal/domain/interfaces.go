package domain

import "context"

// SavingsClient определяет удалённый вызов получения экономии пользователя.
// Одна попытка на вызов, без повторов
type SavingsClient interface {
	GetSavings(ctx context.Context, userID UserID) (*RawSavingsResponse, error)
}

// Presenter определяет порт отображения, от которого зависит машина
// состояний. Конкретный рендеринг (терминал, страница) остаётся снаружи
type Presenter interface {
	ShowLoading()
	ShowResult(result *SavingsResult)
	ShowError(message string)
	Reset()
}

// FaultSink определяет приёмник отчётов о сбоях клиента.
// Отправка best-effort: вызов не блокирует и не возвращает ошибку
type FaultSink interface {
	Report(report ClientFaultReport)
}
