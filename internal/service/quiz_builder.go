package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"language_quiz_backend/internal/model"
	"language_quiz_backend/internal/repository"
	"language_quiz_backend/internal/util"
)

const (
	maxTitleLength = 100
	maxTextLength  = 500
)

var (
	difficultyChoices   = joinChoices(model.DifficultyLevels)
	questionTypeChoices = joinChoices(model.QuestionTypes)
)

func joinChoices[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func blank(s *string) bool {
	return s == nil || *s == ""
}

// validateQuizHeader checks the top-level authoring fields and returns a field map, empty when valid.
func validateQuizHeader(spec *QuizSpec) map[string]interface{} {
	errs := map[string]interface{}{}

	if blank(spec.Title) {
		errs["title"] = "title is required"
	} else if utf8.RuneCountInString(*spec.Title) > maxTitleLength {
		errs["title"] = fmt.Sprintf("title must be at most %d characters", maxTitleLength)
	}
	if spec.Questions == nil {
		errs["questions"] = "questions is required"
	}
	if spec.DifficultyLevel != nil && !model.DifficultyLevel(*spec.DifficultyLevel).Valid() {
		errs["difficulty_level"] = "Difficulty level must be one of: " + difficultyChoices
	}
	if spec.TimeLimit != nil && *spec.TimeLimit < 0 {
		errs["time_limit"] = "time_limit must be a non-negative number of minutes"
	}
	return errs
}

func validateQuestionSpec(spec *QuestionSpec) map[string]interface{} {
	errs := map[string]interface{}{}

	if blank(spec.Text) {
		errs["text"] = "Question text is required"
	} else if utf8.RuneCountInString(*spec.Text) > maxTextLength {
		errs["text"] = fmt.Sprintf("Question text must be at most %d characters", maxTextLength)
	}
	if len(spec.Answers) < model.MinAnswers {
		errs["answers"] = "Question must have at least 2 answer choices"
	}
	if spec.QuestionType != nil && !model.QuestionType(*spec.QuestionType).Valid() {
		errs["question_type"] = "Question type must be one of: " + questionTypeChoices
	}
	if spec.Points != nil && *spec.Points < 0 {
		errs["points"] = "Points must be a non-negative integer"
	}
	return errs
}

func validateAnswerSpec(spec *AnswerSpec) map[string]interface{} {
	errs := map[string]interface{}{}
	if blank(spec.Text) {
		errs["text"] = "Answer text is required"
	} else if utf8.RuneCountInString(*spec.Text) > maxTextLength {
		errs["text"] = fmt.Sprintf("Answer text must be at most %d characters", maxTextLength)
	}
	return errs
}

// buildQuestion turns the i-th question spec into a Question aggregate bound to quizID.
func buildQuestion(quizID uint, i int, spec *QuestionSpec) (model.Question, error) {
	if errs := validateQuestionSpec(spec); len(errs) > 0 {
		return model.Question{}, util.NewValidationError(map[string]interface{}{
			fmt.Sprintf("question_%d", i): errs,
		})
	}

	question := model.Question{
		Text:         *spec.Text,
		QuestionType: model.MultipleChoice,
		Explanation:  spec.Explanation,
		Points:       1,
		OrderIndex:   i,
		QuizID:       quizID,
	}
	if spec.QuestionType != nil {
		question.QuestionType = model.QuestionType(*spec.QuestionType)
	}
	if spec.Points != nil {
		question.Points = *spec.Points
	}

	answers := make([]model.Answer, 0, len(spec.Answers))
	for j := range spec.Answers {
		a := &spec.Answers[j]
		if errs := validateAnswerSpec(a); len(errs) > 0 {
			return model.Question{}, util.NewValidationError(map[string]interface{}{
				fmt.Sprintf("question_%d_answer_%d", i, j): errs,
			})
		}
		answers = append(answers, model.Answer{
			Text:        *a.Text,
			IsCorrect:   a.IsCorrect != nil && *a.IsCorrect,
			Explanation: a.Explanation,
			OrderIndex:  j,
		})
	}

	built, err := model.NewQuestion(question, answers)
	if errors.Is(err, model.ErrCorrectAnswerCount) {
		return model.Question{}, util.NewValidationMessage("Question %d must have exactly one correct answer", i+1)
	}
	if err != nil {
		return model.Question{}, util.NewValidationError(map[string]interface{}{
			fmt.Sprintf("question_%d", i): map[string]interface{}{"answers": err.Error()},
		})
	}
	return built, nil
}

// buildQuiz writes the quiz and its questions through tx, in input order,
// stopping at the first invalid question. The caller owns the transaction.
func buildQuiz(ctx context.Context, tx *repository.QuizRepository, spec *QuizSpec, createdBy string) (*model.Quiz, error) {
	quiz := &model.Quiz{
		Title:           *spec.Title,
		Description:     spec.Description,
		Category:        spec.Category,
		DifficultyLevel: model.Beginner,
		TimeLimit:       spec.TimeLimit,
		IsActive:        true,
		CreatedBy:       &createdBy,
	}
	if spec.DifficultyLevel != nil {
		quiz.DifficultyLevel = model.DifficultyLevel(*spec.DifficultyLevel)
	}

	if err := tx.CreateQuiz(ctx, quiz); err != nil {
		return nil, err
	}

	for i := range spec.Questions {
		question, err := buildQuestion(quiz.ID, i, &spec.Questions[i])
		if err != nil {
			return nil, err
		}
		if err := tx.CreateQuestion(ctx, &question); err != nil {
			return nil, err
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz, nil
}
