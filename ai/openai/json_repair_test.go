package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid JSON unchanged",
			input: `{"overall_score": 4, "keywords": ["仕事"]}`,
			want:  `{"overall_score": 4, "keywords": ["仕事"]}`,
		},
		{
			name:  "missing opening quote after comma",
			input: `{"overall_score": 4, keywords": ["仕事"]}`,
			want:  `{"overall_score": 4, "keywords": ["仕事"]}`,
		},
		{
			name:  "missing opening quote after brace",
			input: `{overall_score": 4}`,
			want:  `{"overall_score": 4}`,
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "plain text untouched",
			input: "not json at all",
			want:  "not json at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}

func TestRepairJSON_ProducesParseableOutput(t *testing.T) {
	broken := `{overall_score": 4.5, dominant_emotions": ["喜び"], keywords": ["家族", "週末"]}`
	repaired := repairJSON(broken)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
	assert.Equal(t, 4.5, parsed["overall_score"])
}
