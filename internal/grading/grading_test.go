package grading

import (
	"testing"

	"github.com/lshigami/courseboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(answer int) model.Question {
	return model.Question{
		Text:        "q",
		Options:     []string{"a", "b", "c", "d"},
		AnswerIndex: answer,
	}
}

func TestGrade_MixedAnswers(t *testing.T) {
	quiz := []model.Question{question(2), question(0)}

	got := Grade(quiz, AnswerSet{0: 2, 1: 1})

	assert.Equal(t, Outcome{Score: 1, Total: 2}, got)
}

func TestGrade_NoAnswersScoresZero(t *testing.T) {
	quiz := []model.Question{question(1), question(3), question(0)}

	got := Grade(quiz, AnswerSet{})

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 3, got.Total)
}

func TestGrade_EmptyQuiz(t *testing.T) {
	got := Grade(nil, AnswerSet{0: 1})

	assert.Equal(t, Outcome{}, got)
	assert.True(t, got.Empty())
}

func TestGrade_IgnoresOutOfRangeIndices(t *testing.T) {
	quiz := []model.Question{question(1)}

	got := Grade(quiz, AnswerSet{0: 1, 5: 1, -1: 1})

	assert.Equal(t, Outcome{Score: 1, Total: 1}, got)
}

func TestGrade_ScoreWithinBounds(t *testing.T) {
	quiz := []model.Question{question(0), question(1), question(2), question(3)}
	answerSets := []AnswerSet{
		{},
		{0: 0, 1: 1, 2: 2, 3: 3},
		{0: 3, 1: 2, 2: 1, 3: 0},
		{1: 1},
		{0: 0, 2: 9},
	}

	for _, answers := range answerSets {
		got := Grade(quiz, answers)
		require.Equal(t, len(quiz), got.Total)
		require.GreaterOrEqual(t, got.Score, 0)
		require.LessOrEqual(t, got.Score, got.Total)
	}
}

func TestComplete(t *testing.T) {
	quiz := []model.Question{question(0), question(1)}

	assert.False(t, Complete(quiz, AnswerSet{0: 1}))
	assert.False(t, Complete(quiz, AnswerSet{0: 1, 2: 1}))
	assert.True(t, Complete(quiz, AnswerSet{0: 1, 1: 3}))
	assert.True(t, Complete(nil, AnswerSet{}))
}
