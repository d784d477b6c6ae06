package utils

import (
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Fence with json tag",
			input: "```json\n{\"test\": true}\n```",
			want:  `{"test": true}`,
		},
		{
			name:  "Fence without tag",
			input: "```\n{\"test\": true}\n```",
			want:  `{"test": true}`,
		},
		{
			name:  "No fence",
			input: `{"test": true}`,
			want:  `{"test": true}`,
		},
		{
			name:  "Fence with surrounding whitespace",
			input: "  ```json\n{\"a\": 1}\n```  ",
			want:  `{"a": 1}`,
		},
		{
			name:  "Unterminated fence drops opening line",
			input: "```json\n{\"a\": 1}",
			want:  `{"a": 1}`,
		},
		{
			name:  "Plain text untouched",
			input: "just some text",
			want:  "just some text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripCodeFence(tt.input)
			if got != tt.want {
				t.Errorf("StripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Simple object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "Object with surrounding prose",
			input: `Here is the result: {"status": "ok", "count": 5} and that's it.`,
			want:  `{"status": "ok", "count": 5}`,
		},
		{
			name:  "Nested objects",
			input: `{"a": {"b": 2}}`,
			want:  `{"a": {"b": 2}}`,
		},
		{
			name:  "String containing braces",
			input: `{"text": "Hello {world}"}`,
			want:  `{"text": "Hello {world}"}`,
		},
		{
			name:  "No object",
			input: "not json at all",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSONObject(tt.input)
			if got != tt.want {
				t.Errorf("ExtractJSONObject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripLeadIn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Here is prefix",
			input: "Here is the enhanced text about the flat.",
			want:  "the enhanced text about the flat.",
		},
		{
			name:  "Enhanced description prefix",
			input: "Enhanced description: A lovely home.",
			want:  "A lovely home.",
		},
		{
			name:  "Case insensitive",
			input: "here's your text.",
			want:  "your text.",
		},
		{
			name:  "No prefix",
			input: "A lovely home awaits.",
			want:  "A lovely home awaits.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripLeadIn(tt.input)
			if got != tt.want {
				t.Errorf("StripLeadIn() = %q, want %q", got, tt.want)
			}
		})
	}
}
