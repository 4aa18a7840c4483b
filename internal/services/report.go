package services

import (
	"math"

	"mockmate/interview-api/internal/models"
)

type reportStats struct {
	avgAnswer float64
	avgEye    float64
	total     int
}

type reportRule struct {
	applies   func(reportStats) bool
	statement string
}

// The score bands deliberately overlap: an average of 8 earns both the
// "strong" and "decent" statements. Each rule fires independently.
var strengthRules = []reportRule{
	{
		applies:   func(s reportStats) bool { return s.avgAnswer >= 7 },
		statement: "Strong technical knowledge demonstrated across questions",
	},
	{
		applies:   func(s reportStats) bool { return s.avgAnswer >= 5 },
		statement: "Decent understanding of core concepts",
	},
	{
		applies:   func(s reportStats) bool { return s.avgEye >= 70 },
		statement: "Good eye contact and confident presence",
	},
	{
		applies:   func(s reportStats) bool { return s.avgEye >= 80 },
		statement: "Excellent non-verbal communication",
	},
}

var improvementRules = []reportRule{
	{
		applies:   func(s reportStats) bool { return s.avgAnswer < 7 },
		statement: "Deepen technical knowledge with hands-on practice projects",
	},
	{
		applies:   func(s reportStats) bool { return s.avgAnswer < 5 },
		statement: "Study fundamentals more thoroughly before the next round",
	},
	{
		applies:   func(s reportStats) bool { return s.avgEye < 70 },
		statement: "Practice maintaining eye contact - it signals confidence",
	},
	{
		applies:   func(s reportStats) bool { return s.total < 10 },
		statement: "Complete all questions for a full assessment next time",
	},
}

// BuildReport derives session-level statistics from a set of question
// results. Pure: the same results always produce the same report. The
// results set must be non-empty; callers treat an empty set as "no report
// available" before ever getting here.
func BuildReport(results []models.QuestionResult) models.InterviewReport {
	total := len(results)

	var answerSum, eyeSum float64
	for _, r := range results {
		answerSum += float64(r.AnswerScore)
		eyeSum += float64(r.EyeContactScore)
	}

	// Rules run against the unrounded means; rounding is presentation only.
	stats := reportStats{
		avgAnswer: answerSum / float64(total),
		avgEye:    eyeSum / float64(total),
		total:     total,
	}

	strengths := []string{}
	for _, rule := range strengthRules {
		if rule.applies(stats) {
			strengths = append(strengths, rule.statement)
		}
	}

	improvements := []string{}
	for _, rule := range improvementRules {
		if rule.applies(stats) {
			improvements = append(improvements, rule.statement)
		}
	}

	return models.InterviewReport{
		TotalQuestions: total,
		AvgAnswerScore: roundToOneDecimal(stats.avgAnswer),
		AvgEyeScore:    roundToOneDecimal(stats.avgEye),
		Strengths:      strengths,
		Improvements:   improvements,
	}
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
