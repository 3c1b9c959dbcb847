package savings

import "github.com/avc/savings-relay/internal/domain"

var statusNames = map[domain.StatusCode]domain.StatusName{
	domain.StatusOK:             domain.StatusNameOK,
	domain.StatusUserNotFound:   domain.StatusNameUserNotFound,
	domain.StatusNoPurchases:    domain.StatusNameNoPurchases,
	domain.StatusDBError:        domain.StatusNameDBError,
	domain.StatusInvalidRequest: domain.StatusNameInvalidRequest,
	domain.StatusUnauthorized:   domain.StatusNameUnauthorized,
	domain.StatusUnknownError:   domain.StatusNameUnknownError,
}

var baseMessages = map[domain.StatusName]string{
	domain.StatusNameUserNotFound:   "Error:",
	domain.StatusNameNoPurchases:    "User has no purchases",
	domain.StatusNameDBError:        "Database error",
	domain.StatusNameInvalidRequest: "Invalid request",
	domain.StatusNameUnauthorized:   "No access to user data",
	domain.StatusNameUnknownError:   "Unknown error",
}

// StatusNameOf преобразует числовой код статуса в символьное имя.
// Любой код вне таблицы даёт UNKNOWN_STATUS
func StatusNameOf(code domain.StatusCode) domain.StatusName {
	if name, ok := statusNames[code]; ok {
		return name
	}
	return domain.StatusNameUnknownStatus
}

// ErrorMessage возвращает сообщение об ошибке для статуса. Непустое
// сообщение сервера добавляется к базовому тексту через ": ".
// Функция тотальна: для любого входа возвращается строка
func ErrorMessage(name domain.StatusName, serverMessage string) string {
	base, ok := baseMessages[name]
	if !ok {
		base = "Unknown error"
	}
	if serverMessage != "" {
		return base + ": " + serverMessage
	}
	return base
}
