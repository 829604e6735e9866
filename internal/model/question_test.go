package model

import (
	"errors"
	"testing"
)

func answers(flags ...bool) []Answer {
	out := make([]Answer, len(flags))
	for i, f := range flags {
		out[i] = Answer{Text: "choice", IsCorrect: f, OrderIndex: i}
	}
	return out
}

func TestNewQuestion(t *testing.T) {
	tests := []struct {
		name    string
		qtype   QuestionType
		answers []Answer
		wantErr error
	}{
		{"valid", MultipleChoice, answers(false, true, false), nil},
		{"true false", TrueFalse, answers(true, false), nil},
		{"one answer", MultipleChoice, answers(true), ErrTooFewAnswers},
		{"no correct", FillBlank, answers(false, false), ErrCorrectAnswerCount},
		{"two correct", MultipleChoice, answers(true, true, false), ErrCorrectAnswerCount},
		{"bad type", QuestionType("essay"), answers(true, false), ErrInvalidQuestionType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuestion(Question{Text: "Q", QuestionType: tt.qtype, Points: 1}, tt.answers)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && len(q.Answers) != len(tt.answers) {
				t.Fatalf("answers not attached: %d", len(q.Answers))
			}
		})
	}
}

func TestCorrectAnswerPicksFirstFlagged(t *testing.T) {
	q := Question{Answers: []Answer{
		{BaseModel: BaseModel{ID: 1}},
		{BaseModel: BaseModel{ID: 2}, IsCorrect: true},
		{BaseModel: BaseModel{ID: 3}, IsCorrect: true},
	}}
	if got := q.CorrectAnswer(); got == nil || got.ID != 2 {
		t.Fatalf("CorrectAnswer = %+v, want id 2", got)
	}

	q.Answers[1].IsCorrect = false
	q.Answers[2].IsCorrect = false
	if got := q.CorrectAnswer(); got != nil {
		t.Fatalf("CorrectAnswer = %+v, want nil", got)
	}
}

func TestQuizTotals(t *testing.T) {
	limit := 0
	quiz := Quiz{TimeLimit: &limit, Questions: []Question{{Points: 1}, {Points: 2}}}
	if quiz.TotalPoints() != 3 || quiz.QuestionCount() != 2 {
		t.Fatalf("totals = %d/%d", quiz.TotalPoints(), quiz.QuestionCount())
	}
	if quiz.HasTimeLimit() {
		t.Fatalf("zero limit means unlimited")
	}
	if !Intermediate.Valid() || DifficultyLevel("expert").Valid() {
		t.Fatalf("difficulty validation broken")
	}
}
