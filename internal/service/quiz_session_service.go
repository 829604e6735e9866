package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"language_quiz_backend/internal/util"
	"language_quiz_backend/pkg/logger"
	"language_quiz_backend/pkg/monitoring"
	"language_quiz_backend/pkg/tracing"

	"go.uber.org/zap"
)

const statsNote = "Statistics tracking would require a submissions table for full implementation"

type SessionInfo struct {
	StartedAt        string  `json:"started_at"`
	StudentID        *string `json:"student_id"`
	TimeLimitMinutes *int    `json:"time_limit_minutes"`
	Deadline         *string `json:"deadline,omitempty"`
}

type SessionStart struct {
	Quiz        *StudentQuizView `json:"quiz"`
	SessionInfo SessionInfo      `json:"session_info"`
}

type QuizStats struct {
	QuizID         uint   `json:"quiz_id"`
	QuizTitle      string `json:"quiz_title"`
	TotalQuestions int    `json:"total_questions"`
	TotalPoints    int    `json:"total_points"`
	Note           string `json:"note"`
}

type AnswerFormatResult struct {
	Valid       bool `json:"valid"`
	AnswerCount int  `json:"answer_count"`
}

type TimeCheckResult struct {
	Unlimited        bool    `json:"-"`
	TimeLimitMinutes int     `json:"time_limit_minutes"`
	ElapsedMinutes   float64 `json:"elapsed_minutes"`
	RemainingMinutes float64 `json:"remaining_minutes"`
	IsExpired        bool    `json:"is_expired"`
}

// QuizSessionService serves the student side. Sessions are not stored; the
// start time travels with the client.
type QuizSessionService struct {
	Quizzes *QuizService
	Now     func() time.Time
}

func NewQuizSessionService(quizzes *QuizService) *QuizSessionService {
	return &QuizSessionService{
		Quizzes: quizzes,
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *QuizSessionService) StartSession(ctx context.Context, id uint, studentID *string) (start *SessionStart, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizSessionService.StartSession", id)
	defer func() { tracing.EndSpan(span, err) }()

	view, err := s.Quizzes.StudentView(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	info := SessionInfo{
		StartedAt:        util.FormatTimestamp(now),
		StudentID:        studentID,
		TimeLimitMinutes: view.TimeLimit,
	}
	if view.TimeLimit != nil && *view.TimeLimit > 0 {
		deadline := util.FormatTimestamp(now.Add(time.Duration(*view.TimeLimit) * time.Minute))
		info.Deadline = &deadline
	}

	return &SessionStart{Quiz: view, SessionInfo: info}, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// startedAt returns the submission start time if raw is a parseable string.
func startedAt(raw json.RawMessage) (time.Time, bool) {
	if isNull(raw) {
		return time.Time{}, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, false
	}
	t, err := util.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func elapsedMinutes(from, to time.Time) float64 {
	return to.Sub(from).Minutes()
}

func (s *QuizSessionService) SubmitQuiz(ctx context.Context, id uint, req *SubmitQuizRequest, studentID string) (result *SubmissionResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizSessionService.SubmitQuiz", id)
	defer func() { tracing.EndSpan(span, err) }()

	quiz, err := s.Quizzes.Repo.FindQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quiz.IsActive {
		return nil, util.ErrQuizUnavailable
	}

	if isNull(req.Answers) {
		monitoring.ValidationRejections.WithLabelValues("submit_quiz").Inc()
		return nil, util.NewValidationMessage("Submission must include answers")
	}

	now := s.Now()
	if quiz.HasTimeLimit() {
		if start, ok := startedAt(req.StartedAt); ok && elapsedMinutes(start, now) > float64(*quiz.TimeLimit) {
			monitoring.ValidationRejections.WithLabelValues("submit_quiz").Inc()
			return nil, util.ErrTimeLimitExceeded
		}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(req.Answers, &entries); err != nil {
		return nil, util.NewMalformedRequest("'answers' must be a list")
	}
	answers, err := DecodeSubmittedAnswers(entries)
	if err != nil {
		return nil, err
	}

	result = ScoreSubmission(quiz, answers, now)
	monitoring.ObserveSubmission(result.ScoreSummary.Grade, result.ScoreSummary.PercentageCorrect)
	logger.Log.Info("Quiz submitted",
		zap.Uint("quiz_id", id),
		zap.String("student_id", studentID),
		zap.Int("correct", result.ScoreSummary.CorrectAnswers),
		zap.Int("total", result.ScoreSummary.TotalQuestions),
		zap.String("grade", result.ScoreSummary.Grade))

	return result, nil
}

func (s *QuizSessionService) Preview(ctx context.Context, id uint) (*StudentQuizView, error) {
	return s.Quizzes.StudentView(ctx, id)
}

// Stats reports what can be derived without a submissions history.
func (s *QuizSessionService) Stats(ctx context.Context, id uint) (stats *QuizStats, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizSessionService.Stats", id)
	defer func() { tracing.EndSpan(span, err) }()

	quiz, err := s.Quizzes.Repo.FindQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &QuizStats{
		QuizID:         quiz.ID,
		QuizTitle:      quiz.Title,
		TotalQuestions: quiz.QuestionCount(),
		TotalPoints:    quiz.TotalPoints(),
		Note:           statsNote,
	}, nil
}

// ValidateAnswerFormat checks the structure of an answer list without scoring it.
func (s *QuizSessionService) ValidateAnswerFormat(raw json.RawMessage) (*AnswerFormatResult, error) {
	if isNull(raw) {
		return nil, util.NewValidationMessage("Missing 'answers' field")
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, util.NewMalformedRequest("'answers' must be a list")
	}

	formatErrors := make([]string, 0)
	for i, entry := range entries {
		var fields map[string]json.RawMessage
		if !isJSONObject(entry) || json.Unmarshal(entry, &fields) != nil {
			formatErrors = append(formatErrors, fmt.Sprintf("Answer %d must be an object", i))
			continue
		}

		rawQuestion, hasQuestion := fields["question_id"]
		rawAnswer, hasAnswer := fields["answer_id"]
		if !hasQuestion {
			formatErrors = append(formatErrors, fmt.Sprintf("Answer %d missing 'question_id'", i))
		}
		if !hasAnswer {
			formatErrors = append(formatErrors, fmt.Sprintf("Answer %d missing 'answer_id'", i))
		}

		badID := false
		if hasQuestion {
			if _, err := util.ParseID(rawQuestion); err != nil {
				badID = true
			}
		}
		if hasAnswer {
			if _, err := util.ParseID(rawAnswer); err != nil {
				badID = true
			}
		}
		if badID {
			formatErrors = append(formatErrors, fmt.Sprintf("Answer %d IDs must be integers", i))
		}
	}

	if len(formatErrors) > 0 {
		monitoring.ValidationRejections.WithLabelValues("validate_answers").Inc()
		return nil, util.NewValidationError(map[string]interface{}{"format_errors": formatErrors})
	}
	return &AnswerFormatResult{Valid: true, AnswerCount: len(entries)}, nil
}

func (s *QuizSessionService) TimeCheck(ctx context.Context, id uint, raw json.RawMessage) (result *TimeCheckResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizSessionService.TimeCheck", id)
	defer func() { tracing.EndSpan(span, err) }()

	quiz, err := s.Quizzes.Repo.FindQuizHeader(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quiz.HasTimeLimit() {
		return &TimeCheckResult{Unlimited: true}, nil
	}

	start, ok := startedAt(raw)
	if !ok {
		return nil, util.NewValidationMessage("Invalid 'started_at' format")
	}

	limit := *quiz.TimeLimit
	elapsed := elapsedMinutes(start, s.Now())
	remaining := math.Max(0, float64(limit)-elapsed)

	return &TimeCheckResult{
		TimeLimitMinutes: limit,
		ElapsedMinutes:   roundMinutes(elapsed),
		RemainingMinutes: roundMinutes(remaining),
		IsExpired:        remaining <= 0,
	}, nil
}
