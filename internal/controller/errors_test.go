package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"language_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func serveError(t *testing.T, err error) (int, errorBody) {
	t.Helper()
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) { respondError(c, err) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var body errorBody
	if jsonErr := json.Unmarshal(w.Body.Bytes(), &body); jsonErr != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), jsonErr)
	}
	return w.Code, body
}

func TestRespondErrorDatabaseErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError string
	}{
		{
			name:      "driver error is hidden",
			err:       &util.DatabaseError{Op: "create question", Err: errors.New("FOREIGN KEY constraint failed"), Sensitive: true},
			wantError: "null",
		},
		{
			name:      "plain error is shown",
			err:       &util.DatabaseError{Op: "list quizzes", Err: errors.New("connection reset"), Sensitive: false},
			wantError: `"connection reset"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serveError(t, tt.err)
			if code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", code)
			}
			if body.Success || body.Message != "A database error occurred" {
				t.Fatalf("body = %+v", body)
			}
			if string(body.Error) != tt.wantError {
				t.Fatalf("error = %s, want %s", body.Error, tt.wantError)
			}
		})
	}
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not found", util.ErrQuizNotFound, http.StatusNotFound, "Quiz not found"},
		{"unavailable", util.ErrQuizUnavailable, http.StatusForbidden, util.ErrQuizUnavailable.Error()},
		{"time limit", util.ErrTimeLimitExceeded, http.StatusUnprocessableEntity, util.ErrTimeLimitExceeded.Error()},
		{"malformed", util.NewMalformedRequest("'answers' must be a list"), http.StatusBadRequest, "'answers' must be a list"},
		{"validation", util.NewValidationMessage("Submission must include answers"), http.StatusUnprocessableEntity, "Submission must include answers"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serveError(t, tt.err)
			if code != tt.code || body.Message != tt.message || body.Success {
				t.Fatalf("got %d %q, want %d %q", code, body.Message, tt.code, tt.message)
			}
		})
	}
}
