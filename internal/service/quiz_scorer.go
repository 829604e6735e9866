package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"language_quiz_backend/internal/model"
	"language_quiz_backend/internal/util"

	"github.com/shopspring/decimal"
)

type SubmittedAnswer struct {
	QuestionID int64
	AnswerID   int64
}

type QuizInfo struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Category        *string               `json:"category"`
	DifficultyLevel model.DifficultyLevel `json:"difficulty_level"`
}

type ScoreSummary struct {
	CorrectAnswers      int     `json:"correct_answers"`
	TotalQuestions      int     `json:"total_questions"`
	PercentageCorrect   float64 `json:"percentage_correct"`
	PointsEarned        int     `json:"points_earned"`
	TotalPointsPossible int     `json:"total_points_possible"`
	PointsPercentage    float64 `json:"points_percentage"`
	Grade               string  `json:"grade"`
}

type AnswerRef struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type CorrectAnswerRef struct {
	ID          uint    `json:"id"`
	Text        string  `json:"text"`
	Explanation *string `json:"explanation"`
}

type QuestionResult struct {
	QuestionID          uint               `json:"question_id"`
	QuestionText        string             `json:"question_text"`
	QuestionType        model.QuestionType `json:"question_type"`
	PointsPossible      int                `json:"points_possible"`
	PointsEarned        int                `json:"points_earned"`
	IsCorrect           bool               `json:"is_correct"`
	SubmittedAnswer     *AnswerRef         `json:"submitted_answer"`
	CorrectAnswer       *CorrectAnswerRef  `json:"correct_answer"`
	QuestionExplanation *string            `json:"question_explanation"`
}

type Feedback struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

type SubmissionResult struct {
	QuizInfo            QuizInfo         `json:"quiz_info"`
	ScoreSummary        ScoreSummary     `json:"score_summary"`
	QuestionResults     []QuestionResult `json:"question_results"`
	PerformanceFeedback Feedback         `json:"performance_feedback"`
	SubmittedAt         string           `json:"submitted_at"`
}

// DecodeSubmittedAnswers reads the submission answer list. Entries that are
// not objects or lack either id are skipped; an id that is present but not
// an integer fails the whole submission.
func DecodeSubmittedAnswers(entries []json.RawMessage) ([]SubmittedAnswer, error) {
	answers := make([]SubmittedAnswer, 0, len(entries))
	for i, entry := range entries {
		var fields map[string]json.RawMessage
		if !isJSONObject(entry) || json.Unmarshal(entry, &fields) != nil {
			continue
		}
		rawQuestion, hasQuestion := fields["question_id"]
		rawAnswer, hasAnswer := fields["answer_id"]
		if !hasQuestion || !hasAnswer {
			continue
		}

		questionID, err := util.ParseID(rawQuestion)
		if err != nil {
			return nil, util.NewMalformedRequest("Answer %d has a non-integer question_id", i)
		}
		answerID, err := util.ParseID(rawAnswer)
		if err != nil {
			return nil, util.NewMalformedRequest("Answer %d has a non-integer answer_id", i)
		}
		answers = append(answers, SubmittedAnswer{QuestionID: questionID, AnswerID: answerID})
	}
	return answers, nil
}

func isJSONObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

// ScoreSubmission grades answers against quiz, walking questions in stored order.
func ScoreSubmission(quiz *model.Quiz, answers []SubmittedAnswer, submittedAt time.Time) *SubmissionResult {
	lookup := make(map[int64]int64, len(answers))
	for _, a := range answers {
		lookup[a.QuestionID] = a.AnswerID
	}

	summary := ScoreSummary{TotalQuestions: len(quiz.Questions)}
	results := make([]QuestionResult, 0, len(quiz.Questions))

	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		summary.TotalPointsPossible += question.Points

		submittedID, submitted := lookup[int64(question.ID)]
		correct := question.CorrectAnswer()
		isCorrect := submitted && correct != nil && submittedID == int64(correct.ID)

		result := QuestionResult{
			QuestionID:          question.ID,
			QuestionText:        question.Text,
			QuestionType:        question.QuestionType,
			PointsPossible:      question.Points,
			IsCorrect:           isCorrect,
			QuestionExplanation: question.Explanation,
		}
		if isCorrect {
			summary.CorrectAnswers++
			summary.PointsEarned += question.Points
			result.PointsEarned = question.Points
		}
		if submitted && submittedID > 0 {
			if a := question.AnswerByID(uint(submittedID)); a != nil {
				result.SubmittedAnswer = &AnswerRef{ID: a.ID, Text: a.Text}
			}
		}
		if correct != nil {
			result.CorrectAnswer = &CorrectAnswerRef{ID: correct.ID, Text: correct.Text, Explanation: correct.Explanation}
		}
		results = append(results, result)
	}

	percentage := ratio(summary.CorrectAnswers, summary.TotalQuestions)
	summary.PercentageCorrect = roundPercentage(percentage)
	summary.PointsPercentage = roundPercentage(ratio(summary.PointsEarned, summary.TotalPointsPossible))
	summary.Grade = CalculateGrade(percentage.InexactFloat64())

	return &SubmissionResult{
		QuizInfo: QuizInfo{
			ID:              quiz.ID,
			Title:           quiz.Title,
			Category:        quiz.Category,
			DifficultyLevel: quiz.DifficultyLevel,
		},
		ScoreSummary:        summary,
		QuestionResults:     results,
		PerformanceFeedback: PerformanceFeedback(percentage.InexactFloat64(), quiz.DifficultyLevel),
		SubmittedAt:         util.FormatTimestamp(submittedAt),
	}
}

var hundred = decimal.NewFromInt(100)

// ratio returns part/whole as a percentage, zero when whole is zero.
func ratio(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole)))
}

func roundPercentage(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// roundMinutes rounds a duration in minutes to two places, half away from zero.
func roundMinutes(minutes float64) float64 {
	return decimal.NewFromFloat(minutes).Round(2).InexactFloat64()
}

// CalculateGrade maps a percentage to a letter; lower bounds are inclusive.
func CalculateGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

func PerformanceFeedback(percentage float64, difficulty model.DifficultyLevel) Feedback {
	switch {
	case percentage >= 90:
		return Feedback{
			Message: "Excellent work! You've mastered this material.",
			Suggestions: []string{
				fmt.Sprintf("Consider trying a more challenging %s quiz", difficulty),
				"You're ready to move on to advanced topics",
			},
		}
	case percentage >= 80:
		return Feedback{
			Message: "Great job! You have a solid understanding of the material.",
			Suggestions: []string{
				"Review the questions you missed for even better results",
				"You're doing well - keep practicing!",
			},
		}
	case percentage >= 70:
		return Feedback{
			Message: "Good work! You're getting the hang of it.",
			Suggestions: []string{
				"Focus on reviewing the areas where you made mistakes",
				"Try some practice exercises to strengthen weak areas",
			},
		}
	case percentage >= 60:
		return Feedback{
			Message: "You're making progress, but there's room for improvement.",
			Suggestions: []string{
				"Review the material and try again",
				"Consider studying the explanations for incorrect answers",
				"Practice with similar quizzes to build confidence",
			},
		}
	default:
		return Feedback{
			Message: "This is a challenging topic - don't give up!",
			Suggestions: []string{
				"Review the study material carefully",
				"Start with easier quizzes to build your foundation",
				"Consider getting help from a teacher or study group",
				"Take your time and try again when you feel ready",
			},
		}
	}
}
