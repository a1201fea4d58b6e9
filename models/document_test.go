package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) Document {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return NewDocument(v)
}

// TestDocumentGet_ObjectKeys verifies presence-aware lookup on a JSON object.
func TestDocumentGet_ObjectKeys(t *testing.T) {
	// Arrange
	doc := decode(t, `{"parameter_1": "custom", "parameter_2": 42, "parameter_4": true}`)

	// Act & Assert
	v, ok := doc.Get("parameter_1")
	assert.True(t, ok)
	assert.Equal(t, "custom", v)

	v, ok = doc.Get("parameter_2")
	assert.True(t, ok)
	assert.Equal(t, float64(42), v)

	_, ok = doc.Get("parameter_3")
	assert.False(t, ok)
}

// TestDocumentGet_NullIsPresent verifies that a key holding JSON null is
// reported as present.
func TestDocumentGet_NullIsPresent(t *testing.T) {
	doc := decode(t, `{"parameter_2": null}`)

	v, ok := doc.Get("parameter_2")
	assert.True(t, ok)
	assert.Nil(t, v)
}

// TestDocumentGet_NonObject verifies that lookup on array and scalar
// documents yields absent for every key.
func TestDocumentGet_NonObject(t *testing.T) {
	for _, body := range []string{`[1, 2, 3]`, `"text"`, `42`, `null`} {
		doc := decode(t, body)

		_, ok := doc.Get("parameter_2")
		assert.False(t, ok, "document %s", body)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string rendered bare", value: "custom", want: "custom"},
		{name: "number", value: float64(42), want: "42"},
		{name: "bool", value: true, want: "true"},
		{name: "null", value: nil, want: "null"},
		{name: "object", value: map[string]any{"k": "v"}, want: `{"k":"v"}`},
		{name: "array", value: []any{float64(1), "a"}, want: `[1,"a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}
