package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for generating role-specific
// interview questions.
func (pb *PromptBuilder) BuildQuestionPrompt(role string) string {
	return fmt.Sprintf(`You are an expert technical interviewer. Generate exactly 10 concise, role-specific technical interview questions for the role: %s.

Return ONLY a valid JSON array of strings, no extra text.`, role)
}

// BuildEvaluationPrompt creates the prompt for scoring a candidate's answer.
func (pb *PromptBuilder) BuildEvaluationPrompt(question, answer string) string {
	return fmt.Sprintf(`You are a strict but fair technical interviewer. Evaluate the candidate's answer concisely.

Format your response exactly as:
Score: X/10
Feedback: [2-3 sentences of constructive feedback on technical accuracy, clarity, and completeness]

Question: %s
Answer: %s`, question, answer)
}
