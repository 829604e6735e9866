package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"language_quiz_backend/internal/service"
	"language_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func decodeQuizSpec(t *testing.T, body string) error {
	t.Helper()
	RegisterValidation()

	var decodeErr error
	router := gin.New()
	router.POST("/quizzes", func(c *gin.Context) {
		var spec service.QuizSpec
		decodeErr = bindObject(c, &spec)
		c.Status(http.StatusNoContent)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(body)))
	return decodeErr
}

func TestDecodeBodyTypeErrorsUseJSONKinds(t *testing.T) {
	tests := []struct {
		body  string
		field string
		want  string
	}{
		{`{"title": 5}`, "title", "title must be of type string"},
		{`{"title": "t", "time_limit": "ten"}`, "time_limit", "time_limit must be of type number"},
		{`{"title": "t", "questions": {"text": "q"}}`, "questions", "questions must be of type list"},
		{`{"title": "t", "questions": [{"text": "q", "answers": "none"}]}`, "questions.answers", "questions.answers must be of type list"},
		{`{"title": "t", "questions": [{"text": "q", "answers": [{"is_correct": "yes"}]}]}`, "questions.answers.is_correct", "questions.answers.is_correct must be of type boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			err := decodeQuizSpec(t, tt.body)
			var verr *util.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if got := verr.Fields[tt.field]; got != tt.want {
				t.Fatalf("fields = %v, want %s: %q", verr.Fields, tt.field, tt.want)
			}
		})
	}
}

func TestDecodeBodyRejectsNonObjects(t *testing.T) {
	for _, body := range []string{`{}`, `[]`, `"quiz"`, `{"title":`} {
		err := decodeQuizSpec(t, body)
		var merr *util.MalformedRequestError
		if !errors.As(err, &merr) {
			t.Fatalf("body %s: err = %v, want MalformedRequestError", body, err)
		}
	}
}

func TestJSONKind(t *testing.T) {
	var s *string
	tests := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeOf(s), "string"},
		{reflect.TypeOf(3), "number"},
		{reflect.TypeOf(1.5), "number"},
		{reflect.TypeOf(true), "boolean"},
		{reflect.TypeOf([]service.AnswerSpec{}), "list"},
		{reflect.TypeOf(service.AnswerSpec{}), "object"},
		{reflect.TypeOf(map[string]int{}), "object"},
		{nil, "value"},
	}
	for _, tt := range tests {
		if got := jsonKind(tt.typ); got != tt.want {
			t.Errorf("jsonKind(%v) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
