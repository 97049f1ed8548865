package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "admin@gmail.com"},
		{name: "valid with spaces", email: "  user@gmail.com "},
		{name: "empty", email: "", wantErr: true},
		{name: "no at", email: "admin.gmail.com", wantErr: true},
		{name: "no domain dot", email: "admin@localhost", wantErr: true},
		{name: "two at", email: "a@b@c.com", wantErr: true},
		{name: "too long", email: strings.Repeat("a", 250) + "@b.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("admin123"))
	assert.NoError(t, ValidatePassword("user12"))
	assert.ErrorIs(t, ValidatePassword(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidatePassword("abc"), ErrInvalidInput)
}
