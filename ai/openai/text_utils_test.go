package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrubString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "ascii punctuation",
			input: "hello, world!",
			want:  "hello world",
		},
		{
			name:  "japanese punctuation",
			input: "「仕事」で失敗した。",
			want:  "仕事で失敗した",
		},
		{
			name:  "surrounding whitespace",
			input: "  仕事  ",
			want:  "仕事",
		},
		{
			name:  "only punctuation",
			input: "！？、。",
			want:  "",
		},
		{
			name:  "clean word unchanged",
			input: "家族",
			want:  "家族",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scrubString(tt.input))
		})
	}
}

func TestIsLetter(t *testing.T) {
	assert.True(t, isLetter('a'))
	assert.True(t, isLetter('Z'))
	assert.False(t, isLetter('1'))
	assert.False(t, isLetter('字'))
	assert.False(t, isLetter('"'))
}
