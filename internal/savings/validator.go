// Package savings содержит цикл запроса экономии: валидацию ввода,
// удалённый вызов, нормализацию ответа и трансляцию статусов.
package savings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avc/savings-relay/internal/domain"
)

// ParseIdentifier проверяет введённый текст и возвращает идентификатор
// пользователя. Текст должен быть непустым, целиком числовым и строго
// больше нуля
func ParseIdentifier(raw string) (domain.UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", domain.ErrInvalidIdentifier)
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidIdentifier, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", domain.ErrInvalidIdentifier, id)
	}

	return domain.UserID(id), nil
}
