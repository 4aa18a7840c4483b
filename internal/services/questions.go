package services

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const maxQuestions = 10

// ParseQuestionList coerces a raw model response into an ordered list of at
// most 10 question strings. Parse attempts, first success wins:
//
//  1. the whole payload is a JSON array
//  2. a JSON object with a "questions" array field
//  3. any other JSON object: its string values, in document key order
//  4. not valid JSON at all: recover the first bracket-delimited array
//     substring; array elements may be strings or objects with a
//     "question" field
//
// The list is truncated to 10 entries first and empty or non-string entries
// are dropped after, so fewer than 10 questions is a valid outcome. An empty
// list from a successful parse is returned as-is, not as an error.
func ParseQuestionList(raw string) ([]string, error) {
	entries, err := parseStructured(raw)
	if err != nil {
		entries, err = parseBracketed(raw)
		if err != nil {
			return nil, fmt.Errorf("could not parse questions from AI response")
		}
	}

	return normalizeEntries(entries), nil
}

// parseStructured handles payloads that are valid JSON end to end.
func parseStructured(raw string) ([]interface{}, error) {
	trimmed := strings.TrimSpace(raw)
	dec := json.NewDecoder(strings.NewReader(trimmed))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("top-level value is not an array or object")
	}

	switch delim {
	case '[':
		var entries []interface{}
		if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
			return nil, fmt.Errorf("invalid JSON array: %w", err)
		}
		return entries, nil
	case '{':
		return parseObject(dec)
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// parseObject walks an object's keys in document order. A "questions" array
// field wins; otherwise every string value becomes a question.
func parseObject(dec *json.Decoder) ([]interface{}, error) {
	var questionsField []interface{}
	var stringValues []interface{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON object: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid JSON object key")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid JSON object value: %w", err)
		}

		if key == "questions" && questionsField == nil {
			var arr []interface{}
			if err := json.Unmarshal(value, &arr); err == nil {
				questionsField = arr
				continue
			}
		}

		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			stringValues = append(stringValues, s)
		}
	}

	// Consume the closing brace and require a clean end of input; trailing
	// text means this was never a well-formed document.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON object")
	}

	if questionsField != nil {
		return questionsField, nil
	}
	return stringValues, nil
}

// parseBracketed recovers an array embedded in otherwise unparsable text,
// from the first '[' through the last ']'.
func parseBracketed(raw string) ([]interface{}, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no array found in response")
	}

	var arr []interface{}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &arr); err != nil {
		return nil, fmt.Errorf("embedded array is not valid JSON: %w", err)
	}

	entries := make([]interface{}, 0, len(arr))
	for _, item := range arr {
		if obj, ok := item.(map[string]interface{}); ok {
			entries = append(entries, obj["question"])
			continue
		}
		entries = append(entries, item)
	}
	return entries, nil
}

// normalizeEntries truncates to the question limit, then keeps non-empty
// strings only. Truncation happens first on purpose: entries past the limit
// never backfill slots freed by dropped ones.
func normalizeEntries(entries []interface{}) []string {
	if len(entries) > maxQuestions {
		entries = entries[:maxQuestions]
	}

	questions := make([]string, 0, len(entries))
	for _, entry := range entries {
		s, ok := entry.(string)
		if !ok || s == "" {
			continue
		}
		questions = append(questions, s)
	}
	return questions
}
