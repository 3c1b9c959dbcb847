package savings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc/savings-relay/internal/domain"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.UserID
		wantErr bool
	}{
		{name: "valid identifier", input: "42", want: 42},
		{name: "valid with spaces", input: "  7  ", want: 7},
		{name: "large identifier", input: "9000000000", want: 9000000000},
		{name: "empty input", input: "", wantErr: true},
		{name: "spaces only", input: "   ", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "trailing garbage", input: "42abc", wantErr: true},
		{name: "fractional", input: "4.2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentifier(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
