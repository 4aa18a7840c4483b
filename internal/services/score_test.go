package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name     string
		feedback string
		want     int
	}{
		{
			name:     "well-formed evaluation",
			feedback: "Score: 7/10\nFeedback: Solid answer with minor gaps.",
			want:     7,
		},
		{
			name:     "whitespace around the slash",
			feedback: "Score: 9 / 10\nFeedback: Excellent.",
			want:     9,
		},
		{
			name:     "perfect score",
			feedback: "Score: 10/10\nFeedback: Flawless.",
			want:     10,
		},
		{
			name:     "score embedded mid-sentence",
			feedback: "I would rate this 6/10 overall given the vague examples.",
			want:     6,
		},
		{
			name:     "first occurrence wins",
			feedback: "Score: 4/10. A stronger answer would have been 8/10.",
			want:     4,
		},
		{
			name:     "off-scale score is not clamped",
			feedback: "Score: 15/10, truly exceptional.",
			want:     15,
		},
		{
			name:     "no score pattern defaults",
			feedback: "Feedback: Decent attempt but lacking depth.",
			want:     5,
		},
		{
			name:     "wrong denominator defaults",
			feedback: "Score: 3/5",
			want:     5,
		},
		{
			name:     "empty text defaults",
			feedback: "",
			want:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractScore(tt.feedback))
		})
	}
}
