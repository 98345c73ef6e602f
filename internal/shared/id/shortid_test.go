package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantLength int
	}{
		{name: "default length on zero", length: 0, wantLength: DefaultLength},
		{name: "default length on negative", length: -5, wantLength: DefaultLength},
		{name: "explicit length", length: 12, wantLength: 12},
		{name: "api key length", length: APIKeyLength, wantLength: APIKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.length)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLength)

			for _, r := range got {
				assert.Contains(t, alphabet, string(r))
			}
		})
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[got], "generated duplicate ID %s", got)
		seen[got] = true
	}
}

func TestNewAPIKey(t *testing.T) {
	key, err := NewAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "tk_"))
	assert.Len(t, key, len("tk_")+APIKeyLength)
	assert.True(t, HasAPIKeyShape(key))
}

func TestHasAPIKeyShape(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "valid shape", key: "tk_abc123", want: true},
		{name: "bare prefix", key: "tk_", want: true},
		{name: "missing underscore", key: "tkabc123", want: false},
		{name: "different prefix", key: "sk_abc123", want: false},
		{name: "empty", key: "", want: false},
		{name: "jwt-looking value", key: "eyJhbGciOiJIUzI1NiJ9.e30.x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAPIKeyShape(tt.key))
		})
	}
}
