package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		currency string
		want     string
	}{
		{name: "positive gets plus prefix and grouping", value: 1500, currency: "RUB", want: "+1,500 RUB"},
		{name: "negative keeps raw sign", value: -200, currency: "RUB", want: "-200 RUB"},
		{name: "zero is unmarked", value: 0, currency: "RUB", want: "0 RUB"},
		{name: "large value grouping", value: 1234567, currency: "RUB", want: "+1,234,567 RUB"},
		{name: "fractional value", value: 99.5, currency: "USD", want: "+99.5 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.value, tt.currency))
		})
	}
}

func TestAmountSignOf(t *testing.T) {
	assert.Equal(t, SignPositive, AmountSignOf(1500))
	assert.Equal(t, SignNegative, AmountSignOf(-200))
	assert.Equal(t, SignNeutral, AmountSignOf(0))
}
