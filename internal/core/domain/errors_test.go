package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnknownTopic", ErrUnknownTopic},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrUnsupportedBackend", ErrUnsupportedBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrUnknownTopic))
	assert.False(t, errors.Is(ErrInvalidInput, ErrUnsupportedFormat))
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("resolving %q: %w", "7", ErrUnknownTopic)
	assert.True(t, errors.Is(err, ErrUnknownTopic))
	assert.Equal(t, `resolving "7": unknown topic`, err.Error())
}
