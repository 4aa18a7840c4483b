package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionList_DirectArray(t *testing.T) {
	questions, err := ParseQuestionList(`["What is a goroutine?", "Explain channels."]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"What is a goroutine?", "Explain channels."}, questions)
}

func TestParseQuestionList_TruncatesToTen(t *testing.T) {
	entries := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		entries = append(entries, fmt.Sprintf("%q", fmt.Sprintf("Q%d", i)))
	}
	raw := "[" + strings.Join(entries, ",") + "]"

	questions, err := ParseQuestionList(raw)
	require.NoError(t, err)
	require.Len(t, questions, 10)
	assert.Equal(t, "Q1", questions[0])
	assert.Equal(t, "Q10", questions[9])
}

func TestParseQuestionList_TruncatesBeforeFiltering(t *testing.T) {
	// The empty entry sits inside the first ten; Q11 and Q12 must not
	// backfill the slot it frees.
	raw := `["Q1","Q2","Q3","Q4","Q5","","Q7","Q8","Q9","Q10","Q11","Q12"]`

	questions, err := ParseQuestionList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q7", "Q8", "Q9", "Q10"}, questions)
}

func TestParseQuestionList_DropsEmptyAndNonString(t *testing.T) {
	questions, err := ParseQuestionList(`["keep", "", 42, null, "also keep"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep", "also keep"}, questions)
}

func TestParseQuestionList_QuestionsField(t *testing.T) {
	questions, err := ParseQuestionList(`{"questions": ["Q1", "Q2", "Q3"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, questions)
}

func TestParseQuestionList_QuestionsFieldWinsOverOtherStrings(t *testing.T) {
	raw := `{"intro": "Here you go", "questions": ["Q1", "Q2"], "outro": "Good luck"}`
	questions, err := ParseQuestionList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, questions)
}

func TestParseQuestionList_ObjectStringValuesInDocumentOrder(t *testing.T) {
	// Keys "2" and "10" would swap under a lexical sort; document order
	// must hold.
	raw := `{"1": "first", "2": "second", "10": "tenth"}`
	questions, err := ParseQuestionList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "tenth"}, questions)
}

func TestParseQuestionList_ObjectSkipsNonStringValues(t *testing.T) {
	raw := `{"count": 3, "q1": "real question", "meta": {"nested": true}, "q2": "another"}`
	questions, err := ParseQuestionList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"real question", "another"}, questions)
}

func TestParseQuestionList_EmptyObjectIsValid(t *testing.T) {
	questions, err := ParseQuestionList(`{}`)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestParseQuestionList_EmptyArrayIsValid(t *testing.T) {
	questions, err := ParseQuestionList(`[]`)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestParseQuestionList_MarkdownWrappedArray(t *testing.T) {
	raw := "Here are your questions:\n```json\n[\"Q1\", \"Q2\"]\n```\nGood luck!"
	questions, err := ParseQuestionList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, questions)
}

func TestParseQuestionList_BracketedObjectEntries(t *testing.T) {
	raw := `Sure! [{"question": "Q1"}, {"question": "Q2"}, {"note": "no question key"}] hope that helps`
	questions, err := ParseQuestionList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, questions)
}

func TestParseQuestionList_TrailingTextAfterArray(t *testing.T) {
	raw := `["Q1", "Q2"] and that concludes the list`
	questions, err := ParseQuestionList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, questions)
}

func TestParseQuestionList_NoArrayAnywhere(t *testing.T) {
	_, err := ParseQuestionList("Sorry, I cannot generate questions right now.")
	assert.Error(t, err)
}

func TestParseQuestionList_BracketsButInvalidJSON(t *testing.T) {
	_, err := ParseQuestionList("some text [not, valid, json] more text")
	assert.Error(t, err)
}
