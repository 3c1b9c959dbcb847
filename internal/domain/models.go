package domain

// UserID представляет идентификатор пользователя
type UserID int64

// StatusCode представляет числовой код статуса ответа сервиса экономии
type StatusCode int32

const (
	StatusOK             StatusCode = 0
	StatusUserNotFound   StatusCode = 1
	StatusNoPurchases    StatusCode = 2
	StatusDBError        StatusCode = 3
	StatusInvalidRequest StatusCode = 4
	StatusUnauthorized   StatusCode = 5
	StatusUnknownError   StatusCode = 6
)

// StatusName представляет символьное имя статуса
type StatusName string

const (
	StatusNameOK             StatusName = "OK"
	StatusNameUserNotFound   StatusName = "USER_NOT_FOUND"
	StatusNameNoPurchases    StatusName = "NO_PURCHASES"
	StatusNameDBError        StatusName = "DB_ERROR"
	StatusNameInvalidRequest StatusName = "INVALID_REQUEST"
	StatusNameUnauthorized   StatusName = "UNAUTHORIZED"
	StatusNameUnknownError   StatusName = "UNKNOWN_ERROR"

	// StatusNameUnknownStatus — отдельное значение для кодов вне таблицы,
	// не совпадает с UNKNOWN_ERROR
	StatusNameUnknownStatus StatusName = "UNKNOWN_STATUS"
)

// RawSavingsResponse представляет сырой ответ удалённого вызова GetSavings.
// Каждое поле может структурно отсутствовать — это контракт внешнего
// сервиса, а не ошибка
type RawSavingsResponse struct {
	Status          *int32   `json:"status,omitempty"`
	TotalSavings    *float64 `json:"total_savings,omitempty"`
	Currency        *string  `json:"currency,omitempty"`
	TotalPurchases  *int32   `json:"total_purchases,omitempty"`
	WbCardPurchases *int32   `json:"wb_card_purchases,omitempty"`
	Message         *string  `json:"message,omitempty"`
}

// SavingsResult представляет нормализованный результат запроса экономии.
// После нормализации все поля гарантированно заполнены
type SavingsResult struct {
	StatusCode      StatusCode
	StatusName      StatusName
	TotalSavings    float64
	Currency        string
	TotalPurchases  int32
	WbCardPurchases int32
	Message         string
}

// UIState представляет состояние отображения
type UIState string

const (
	UIStateIdle    UIState = "idle"
	UIStateLoading UIState = "loading"
	UIStateResult  UIState = "result"
	UIStateError   UIState = "error"
)

// Типы отчётов о сбоях клиента
const (
	FaultTypeError     = "error"
	FaultTypeRejection = "unhandledrejection"
)

// ClientFaultReport представляет отчёт о сбое на стороне клиента
type ClientFaultReport struct {
	ID        string `json:"id,omitempty"`
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Source    string `json:"source,omitempty"`
	Line      int    `json:"lineno,omitempty"`
	Col       int    `json:"colno,omitempty"`
	Stack     string `json:"stack,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
