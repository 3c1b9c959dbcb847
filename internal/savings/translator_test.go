package savings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avc/savings-relay/internal/domain"
)

func TestStatusNameOf(t *testing.T) {
	tests := []struct {
		code domain.StatusCode
		want domain.StatusName
	}{
		{0, domain.StatusNameOK},
		{1, domain.StatusNameUserNotFound},
		{2, domain.StatusNameNoPurchases},
		{3, domain.StatusNameDBError},
		{4, domain.StatusNameInvalidRequest},
		{5, domain.StatusNameUnauthorized},
		{6, domain.StatusNameUnknownError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusNameOf(tt.code))
	}

	t.Run("out of range codes map to UNKNOWN_STATUS", func(t *testing.T) {
		for _, code := range []domain.StatusCode{-1, 7, 42, 100500} {
			name := StatusNameOf(code)
			assert.Equal(t, domain.StatusNameUnknownStatus, name)
			assert.NotEqual(t, domain.StatusNameUnknownError, name)
		}
	})
}

func TestErrorMessage(t *testing.T) {
	t.Run("base messages", func(t *testing.T) {
		tests := []struct {
			status domain.StatusName
			want   string
		}{
			{domain.StatusNameUserNotFound, "Error:"},
			{domain.StatusNameNoPurchases, "User has no purchases"},
			{domain.StatusNameDBError, "Database error"},
			{domain.StatusNameInvalidRequest, "Invalid request"},
			{domain.StatusNameUnauthorized, "No access to user data"},
			{domain.StatusNameUnknownError, "Unknown error"},
			{domain.StatusNameUnknownStatus, "Unknown error"},
			{domain.StatusName("SOMETHING_ELSE"), "Unknown error"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.want, ErrorMessage(tt.status, ""))
		}
	})

	t.Run("server message is appended after colon", func(t *testing.T) {
		got := ErrorMessage(domain.StatusNameDBError, "connection lost")
		assert.Equal(t, "Database error: connection lost", got)

		got = ErrorMessage(domain.StatusNameUserNotFound, "id 42")
		assert.Equal(t, "Error:: id 42", got)
	})

	t.Run("empty server message returns exactly the base text", func(t *testing.T) {
		assert.Equal(t, "Invalid request", ErrorMessage(domain.StatusNameInvalidRequest, ""))
	})
}
