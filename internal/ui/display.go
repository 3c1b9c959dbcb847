package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AmountSign представляет визуальный маркер суммы экономии
type AmountSign string

const (
	SignPositive AmountSign = "positive"
	SignNegative AmountSign = "negative"
	SignNeutral  AmountSign = ""
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount форматирует сумму экономии с группировкой разрядов.
// Положительная сумма получает префикс "+", отрицательная выводится
// как есть, ноль без знака. Чистое правило отображения, не бизнес-логика
func FormatAmount(value float64, currency string) string {
	formatted := amountPrinter.Sprint(number.Decimal(value))
	if value > 0 {
		formatted = "+" + formatted
	}
	return formatted + " " + currency
}

// AmountSignOf возвращает визуальный маркер для суммы
func AmountSignOf(value float64) AmountSign {
	switch {
	case value > 0:
		return SignPositive
	case value < 0:
		return SignNegative
	default:
		return SignNeutral
	}
}
