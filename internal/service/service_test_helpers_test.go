package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"language_quiz_backend/internal/config"
	"language_quiz_backend/internal/repository"
	"language_quiz_backend/pkg/database"

	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:          "sqlite",
			Path:            filepath.Join(t.TempDir(), "quiz.db"),
			ConnMaxLifetime: time.Hour,
		},
		Pagination: config.PaginationConfig{DefaultPerPage: 10, MaxPerPage: 100},
		Quiz:       config.QuizConfig{Categories: config.DefaultCategories},
	}
}

func setupServices(t *testing.T, cache repository.QuizCache) (*QuizService, *QuizSessionService, *gorm.DB) {
	t.Helper()
	cfg := testConfig(t)
	db, err := database.InitDB(cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	quizzes := NewQuizService(repository.NewQuizRepository(db), cache, cfg)
	sessions := NewQuizSessionService(quizzes)
	sessions.Now = func() time.Time { return fixedNow }
	return quizzes, sessions, db
}

func str(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func answerSpecs(correct int, n int) []AnswerSpec {
	out := make([]AnswerSpec, n)
	for i := range out {
		out[i] = AnswerSpec{Text: str("choice"), IsCorrect: boolPtr(i == correct)}
	}
	return out
}

// validSpec has two questions worth 1 and 2 points; answer 0 is correct in both.
func validSpec() *QuizSpec {
	return &QuizSpec{
		Title:           str("Spanish basics"),
		Category:        str("Spanish"),
		DifficultyLevel: str("intermediate"),
		Questions: []QuestionSpec{
			{
				Text:        str("Hola means?"),
				Explanation: str("Common greeting"),
				Answers: []AnswerSpec{
					{Text: str("Hello"), IsCorrect: boolPtr(true), Explanation: str("Yes")},
					{Text: str("Goodbye")},
				},
			},
			{
				Text:         str("Gato is a cat"),
				QuestionType: str("true_false"),
				Points:       intPtr(2),
				Answers: []AnswerSpec{
					{Text: str("True"), IsCorrect: boolPtr(true)},
					{Text: str("False"), IsCorrect: boolPtr(false)},
				},
			},
		},
	}
}

func createQuiz(t *testing.T, s *QuizService, spec *QuizSpec) *QuizDetail {
	t.Helper()
	detail, err := s.CreateQuiz(context.Background(), spec, "educator-1")
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	return detail
}

type memoryCache struct {
	entries     map[uint][]byte
	gets        int
	hits        int
	invalidated []uint
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[uint][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, id uint) ([]byte, bool) {
	c.gets++
	p, ok := c.entries[id]
	if ok {
		c.hits++
	}
	return p, ok
}

func (c *memoryCache) Set(_ context.Context, id uint, payload []byte) { c.entries[id] = payload }

func (c *memoryCache) Invalidate(_ context.Context, id uint) {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
}

func (c *memoryCache) Ping(context.Context) error { return nil }
