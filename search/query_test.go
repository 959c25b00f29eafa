package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseQuery(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected Query
	}{
		{
			name:  "Bare terms",
			input: "/find invoice draft",
			expected: Query{
				RawInput: "/find invoice draft",
				Terms:    "invoice draft",
				Limit:    defaultLimit,
			},
		},
		{
			name:  "Room filter",
			input: "/find invoice --room 42",
			expected: Query{
				RawInput: "/find invoice --room 42",
				Terms:    "invoice",
				RoomID:   42,
				Limit:    defaultLimit,
			},
		},
		{
			name:  "Room and limit",
			input: "/find hello world --room 12 --limit 5",
			expected: Query{
				RawInput: "/find hello world --room 12 --limit 5",
				Terms:    "hello world",
				RoomID:   12,
				Limit:    5,
			},
		},
		{
			name:  "Flag with a non-numeric value is skipped",
			input: "/find hello --room abc",
			expected: Query{
				RawInput: "/find hello --room abc",
				Terms:    "hello",
				Limit:    defaultLimit,
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: Query{
				Limit: defaultLimit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, ParseQuery(tt.input))
		})
	}
}
