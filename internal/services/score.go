package services

import (
	"regexp"
	"strconv"
)

// defaultScore is the neutral fallback used when evaluator text carries no
// parseable score. A missing score must never block recording the answer.
const defaultScore = 5

var scorePattern = regexp.MustCompile(`(\d+)\s*/\s*10`)

// ExtractScore pulls the "Score: X/10" value out of free-form evaluator
// text. It never fails: an absent or unusable score degrades to the default.
// The score is not clamped; the evaluator is trusted to stay on scale.
func ExtractScore(feedback string) int {
	match := scorePattern.FindStringSubmatch(feedback)
	if match == nil {
		return defaultScore
	}

	score, err := strconv.Atoi(match[1])
	if err != nil {
		return defaultScore
	}
	return score
}
