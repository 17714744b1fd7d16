package quiz

import (
	"testing"

	"Backend-Brightlane-Leadkit/src/catalog"
	"Backend-Brightlane-Leadkit/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerAll(t *testing.T, s *State) {
	t.Helper()
	for i := range models.QuestionOrder {
		q, ok := catalog.QuestionAt(i)
		require.True(t, ok)
		require.NoError(t, s.Select(q.Options[0].Value))
	}
}

func TestSelectAdvancesThroughQuestions(t *testing.T) {
	s := NewState()
	answerAll(t, &s)
	assert.Equal(t, StepContactGate, s.Cursor)
	for _, id := range models.QuestionOrder {
		assert.NotEmpty(t, s.Answers[id])
	}
	assert.ErrorIs(t, s.Select("anything"), ErrNotAQuestion)
}

func TestSelectRejectsUnknownOption(t *testing.T) {
	s := NewState()
	assert.ErrorIs(t, s.Select("not-an-option"), ErrInvalidOption)
	assert.Equal(t, StepFirstQuestion, s.Cursor)
}

func TestBackAndNext(t *testing.T) {
	s := NewState()
	assert.ErrorIs(t, s.Back(), ErrNoPreviousStep)

	answerAll(t, &s)
	require.NoError(t, s.Back())
	assert.Equal(t, StepLastQuestion, s.Cursor)
	require.NoError(t, s.Back())
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	assert.Equal(t, StepContactGate, s.Cursor)

	fresh := NewState()
	assert.ErrorIs(t, fresh.Next(), ErrUnanswered)
}

func TestUnlock(t *testing.T) {
	s := NewState()
	assert.ErrorIs(t, s.Unlock("jo@x.co", ""), ErrNotAtGate)

	answerAll(t, &s)
	assert.ErrorIs(t, s.Unlock("", ""), ErrEmailRequired)
	require.NoError(t, s.Unlock("jo@x.co", "https://x.co"))
	assert.Equal(t, StepResults, s.Cursor)
	assert.ErrorIs(t, s.Back(), ErrNoPreviousStep)
}

func TestNormalizeKeepsCursorInvariant(t *testing.T) {
	cases := []struct {
		name string
		in   State
		want Step
	}{
		{"negative", State{Cursor: -3}, StepFirstQuestion},
		{"past end with email", State{Cursor: 42, Email: "jo@x.co"}, StepResults},
		{"past end without email", State{Cursor: 42}, StepContactGate},
		{"results without email", State{Cursor: StepResults}, StepContactGate},
		{"results with email", State{Cursor: StepResults, Email: "jo@x.co"}, StepResults},
		{"mid quiz", State{Cursor: 3}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.in
			s.Normalize()
			assert.Equal(t, tc.want, s.Cursor)
			assert.GreaterOrEqual(t, s.Cursor, StepFirstQuestion)
			assert.LessOrEqual(t, s.Cursor, StepResults)
			assert.Len(t, s.Answers, len(models.QuestionOrder))
		})
	}
}

func TestView(t *testing.T) {
	s := NewState()
	v := s.View()
	assert.Equal(t, ViewQuestion, v.Kind)
	require.NotNil(t, v.Question)
	assert.Equal(t, models.QuestionBusiness, v.Question.ID)
	assert.Equal(t, 1, v.Number())
	assert.False(t, v.CanGoBack)

	answerAll(t, &s)
	v = s.View()
	assert.Equal(t, ViewContactGate, v.Kind)
	assert.Nil(t, v.Question)
	assert.True(t, v.CanGoBack)

	require.NoError(t, s.Unlock("jo@x.co", ""))
	v = s.View()
	assert.Equal(t, ViewResults, v.Kind)
	assert.Equal(t, s.SelectedPlan(), v.PlanKey)
}

func TestReset(t *testing.T) {
	s := NewState()
	answerAll(t, &s)
	require.NoError(t, s.Unlock("jo@x.co", ""))
	s.Reset()
	assert.Equal(t, NewState(), s)
}
