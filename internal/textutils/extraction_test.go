package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"json fence", "```json\n[{\"name\": \"Milk\"}]\n```", `[{"name": "Milk"}]`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"uppercase tag", "```JSON\n[1, 2]\n```", "[1, 2]"},
		{"no fence", "  [1, 2]  ", "[1, 2]"},
		{"fence with surrounding prose", "Here you go:\n```json\n[1]\n```\nLet me know!", "[1]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripCodeFences(tc.text))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		expectedOk bool
		expected   string
	}{
		{"bare array", `[{"name": "Milk"}]`, true, `[{"name": "Milk"}]`},
		{"array in prose", `The items are: [{"name": "Milk"}] as requested.`, true, `[{"name": "Milk"}]`},
		{"object in prose", `Result: {"items": []} done`, true, `{"items": []}`},
		{"fenced array", "```json\n[1, 2]\n```", true, "[1, 2]"},
		{"brackets inside strings ignored", `[{"name": "Bread [500g]"}]`, true, `[{"name": "Bread [500g]"}]`},
		{"array before object wins", `[1] {"a": 2}`, true, "[1]"},
		{"no payload", "I could not read the receipt.", false, ""},
		{"unbalanced", `[{"name": "Milk"`, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := ExtractJSON(tc.text)
			if tc.expectedOk {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, payload)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNormalizeToArray(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		elements, err := NormalizeToArray(`[{"a": 1}, {"b": 2}]`)
		require.NoError(t, err)
		assert.Len(t, elements, 2)
	})

	t.Run("object wrapping items", func(t *testing.T) {
		elements, err := NormalizeToArray(`{"items": [{"a": 1}]}`)
		require.NoError(t, err)
		assert.Len(t, elements, 1)
	})

	t.Run("single object", func(t *testing.T) {
		elements, err := NormalizeToArray(`{"name": "Milk", "amount": 1.95}`)
		require.NoError(t, err)
		require.Len(t, elements, 1)
		assert.JSONEq(t, `{"name": "Milk", "amount": 1.95}`, string(elements[0]))
	})

	t.Run("not JSON", func(t *testing.T) {
		_, err := NormalizeToArray(`"just a string"`)
		assert.Error(t, err)
	})
}
