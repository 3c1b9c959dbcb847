package savings

import (
	"go.uber.org/zap"

	"github.com/avc/savings-relay/internal/domain"
)

// Валюта по умолчанию для нормализованного результата
const defaultCurrency = "RUB"

// Normalizer приводит сырой ответ удалённого вызова к полному результату,
// подставляя значения по умолчанию вместо отсутствующих полей
type Normalizer struct {
	logger *zap.Logger
}

// NewNormalizer создает новый Normalizer
func NewNormalizer(logger *zap.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize возвращает результат, в котором заполнено каждое поле.
// Отсутствие поля в сыром ответе не ошибка: подставляется значение по
// умолчанию и пишется диагностическое предупреждение. Функция чистая
// относительно входа и никогда не завершается с ошибкой
func (n *Normalizer) Normalize(raw *domain.RawSavingsResponse) domain.SavingsResult {
	if raw == nil {
		raw = &domain.RawSavingsResponse{}
	}

	result := domain.SavingsResult{
		Currency: defaultCurrency,
	}

	if raw.Status != nil {
		result.StatusCode = domain.StatusCode(*raw.Status)
	} else {
		n.fieldAbsent("status")
	}

	if raw.TotalSavings != nil {
		result.TotalSavings = *raw.TotalSavings
	} else {
		n.fieldAbsent("total_savings")
	}

	if raw.Currency != nil {
		result.Currency = *raw.Currency
	} else {
		n.fieldAbsent("currency")
	}

	if raw.TotalPurchases != nil {
		result.TotalPurchases = *raw.TotalPurchases
	} else {
		n.fieldAbsent("total_purchases")
	}

	if raw.WbCardPurchases != nil {
		result.WbCardPurchases = *raw.WbCardPurchases
	} else {
		n.fieldAbsent("wb_card_purchases")
	}

	if raw.Message != nil {
		result.Message = *raw.Message
	} else {
		n.fieldAbsent("message")
	}

	result.StatusName = StatusNameOf(result.StatusCode)

	return result
}

func (n *Normalizer) fieldAbsent(field string) {
	n.logger.Warn("field is absent in savings response", zap.String("field", field))
}
