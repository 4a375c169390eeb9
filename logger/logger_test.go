package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNoOpLogger(t *testing.T) {
	l := NewNoOpLogger()
	assert.NotNil(t, l)

	// None of these should panic or produce output.
	l.Info("info", "key", "value")
	l.Debug("debug")
	l.Warn("warn", "key", 1)
	l.Error("error", errors.New("boom"))
}

func TestNewLogger_TestModeReturnsNoOp(t *testing.T) {
	// Under `go test` the constructor hands back the no-op implementation so
	// fulfillment tests stay quiet.
	l, err := NewLogger("development")
	assert.NoError(t, err)

	_, ok := l.(*NoOpLogger)
	assert.True(t, ok)
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		name     string
		kv       []interface{}
		expected int
	}{
		{
			name:     "Pairs",
			kv:       []interface{}{"a", 1, "b", "two"},
			expected: 2,
		},
		{
			name:     "OddTrailingKeyDropped",
			kv:       []interface{}{"a", 1, "dangling"},
			expected: 1,
		},
		{
			name:     "NonStringKeySkipped",
			kv:       []interface{}{42, "value", "b", 2},
			expected: 1,
		},
		{
			name:     "Empty",
			kv:       nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := parseFields(tt.kv...)
			assert.Len(t, fields, tt.expected)
		})
	}
}
